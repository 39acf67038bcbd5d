package domain

type ContentCategory struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Slug string `db:"slug" json:"slug"`
}

type ContentTag struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Slug string `db:"slug" json:"slug"`
}

type ContentItem struct {
	ID         string   `db:"id" json:"id"`
	CategoryID string   `db:"category_id" json:"categoryId"`
	Title      string   `db:"title" json:"title"`
	Slug       string   `db:"slug" json:"slug"`
	Body       string   `db:"body" json:"body"`
	Published  bool     `db:"published" json:"published"`
	Tags       []string `db:"-" json:"tags,omitempty"`
	CreatedAt  string   `db:"created_at" json:"createdAt"`
	UpdatedAt  string   `db:"updated_at" json:"updatedAt,omitempty"`
}
