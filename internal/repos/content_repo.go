package repos

import (
	"tradeyard/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ContentRepo struct{ db *sqlx.DB }

func NewContentRepo(db *sqlx.DB) *ContentRepo { return &ContentRepo{db: db} }

const contentCols = `
	SELECT id, category_id, title, slug, body, published, created_at,
	       COALESCE(updated_at,'') AS updated_at
	FROM content_items`

// ---------- items ----------

func (r *ContentRepo) CreateItem(it *domain.ContentItem, tagIDs []string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO content_items(id,category_id,title,slug,body,published)
		VALUES(?,?,?,?,?,?)`,
		it.ID, it.CategoryID, it.Title, it.Slug, it.Body, it.Published); err != nil {
		return err
	}
	for _, tid := range tagIDs {
		if _, err := tx.Exec(`INSERT INTO content_item_tags(item_id,tag_id) VALUES(?,?)`, it.ID, tid); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *ContentRepo) UpdateItem(it *domain.ContentItem, tagIDs []string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		UPDATE content_items
		SET category_id=?, title=?, slug=?, body=?, published=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?`,
		it.CategoryID, it.Title, it.Slug, it.Body, it.Published, it.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM content_item_tags WHERE item_id=?`, it.ID); err != nil {
		return err
	}
	for _, tid := range tagIDs {
		if _, err := tx.Exec(`INSERT INTO content_item_tags(item_id,tag_id) VALUES(?,?)`, it.ID, tid); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *ContentRepo) DeleteItem(id string) error {
	_, err := r.db.Exec(`DELETE FROM content_items WHERE id=?`, id)
	return err
}

func (r *ContentRepo) ItemByID(id string) (domain.ContentItem, error) {
	var it domain.ContentItem
	if err := r.db.Get(&it, contentCols+` WHERE id = ?`, id); err != nil {
		return domain.ContentItem{}, err
	}
	it.Tags, _ = r.itemTags(it.ID)
	return it, nil
}

func (r *ContentRepo) ItemBySlug(slug string) (domain.ContentItem, error) {
	var it domain.ContentItem
	if err := r.db.Get(&it, contentCols+` WHERE slug = ? AND published = 1`, slug); err != nil {
		return domain.ContentItem{}, err
	}
	it.Tags, _ = r.itemTags(it.ID)
	return it, nil
}

func (r *ContentRepo) itemTags(itemID string) ([]string, error) {
	var tags []string
	err := r.db.Select(&tags, `
		SELECT t.slug FROM content_item_tags it
		JOIN content_tags t ON t.id = it.tag_id
		WHERE it.item_id = ? ORDER BY t.slug`, itemID)
	return tags, err
}

// ListPublished filters by content category and/or tag slug.
func (r *ContentRepo) ListPublished(categoryID, tagSlug string, limit, offset int) ([]domain.ContentItem, int, error) {
	where := `ci.published = 1`
	args := []any{}
	if categoryID != "" {
		where += ` AND ci.category_id = ?`
		args = append(args, categoryID)
	}
	if tagSlug != "" {
		where += ` AND EXISTS (
			SELECT 1 FROM content_item_tags it
			JOIN content_tags t ON t.id = it.tag_id
			WHERE it.item_id = ci.id AND t.slug = ?)`
		args = append(args, tagSlug)
	}

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(*) FROM content_items ci WHERE `+where, args...); err != nil {
		return nil, 0, err
	}
	var out []domain.ContentItem
	args = append(args, limit, offset)
	err := r.db.Select(&out, `
		SELECT ci.id, ci.category_id, ci.title, ci.slug, ci.body, ci.published,
		       ci.created_at, COALESCE(ci.updated_at,'') AS updated_at
		FROM content_items ci
		WHERE `+where+`
		ORDER BY datetime(ci.created_at) DESC
		LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, 0, err
	}
	for i := range out {
		out[i].Tags, _ = r.itemTags(out[i].ID)
	}
	return out, total, nil
}

// ---------- categories & tags ----------

func (r *ContentRepo) ListCategories() ([]domain.ContentCategory, error) {
	var out []domain.ContentCategory
	err := r.db.Select(&out, `SELECT id,name,slug FROM content_categories ORDER BY name`)
	return out, err
}

func (r *ContentRepo) CreateCategory(c *domain.ContentCategory) error {
	_, err := r.db.Exec(`INSERT INTO content_categories(id,name,slug) VALUES(?,?,?)`, c.ID, c.Name, c.Slug)
	return err
}

func (r *ContentRepo) UpdateCategory(c *domain.ContentCategory) error {
	_, err := r.db.Exec(`UPDATE content_categories SET name=?, slug=? WHERE id=?`, c.Name, c.Slug, c.ID)
	return err
}

func (r *ContentRepo) DeleteCategory(id string) error {
	_, err := r.db.Exec(`DELETE FROM content_categories WHERE id=?`, id)
	return err
}

func (r *ContentRepo) ListTags() ([]domain.ContentTag, error) {
	var out []domain.ContentTag
	err := r.db.Select(&out, `SELECT id,name,slug FROM content_tags ORDER BY name`)
	return out, err
}

func (r *ContentRepo) CreateTag(t *domain.ContentTag) error {
	_, err := r.db.Exec(`INSERT INTO content_tags(id,name,slug) VALUES(?,?,?)`, t.ID, t.Name, t.Slug)
	return err
}

func (r *ContentRepo) DeleteTag(id string) error {
	_, err := r.db.Exec(`DELETE FROM content_tags WHERE id=?`, id)
	return err
}
