package domain

type Review struct {
	ID        string `db:"id" json:"id"`
	AuthorID  string `db:"author_id" json:"authorId"`
	SellerID  string `db:"seller_id" json:"sellerId"`
	ProductID string `db:"product_id" json:"productId,omitempty"`
	Rating    int    `db:"rating" json:"rating"`
	Title     string `db:"title" json:"title"`
	Body      string `db:"body" json:"body"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`
}

type ReviewSummary struct {
	AverageRating float64 `db:"average_rating" json:"averageRating"`
	TotalCount    int     `db:"total_count" json:"totalCount"`
}
