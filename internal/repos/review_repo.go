package repos

import (
	"tradeyard/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ReviewRepo struct{ db *sqlx.DB }

func NewReviewRepo(db *sqlx.DB) *ReviewRepo { return &ReviewRepo{db: db} }

const reviewCols = `
	SELECT id, author_id, seller_id, product_id, rating, title, body,
	       created_at, COALESCE(updated_at,'') AS updated_at
	FROM reviews`

func (r *ReviewRepo) Create(rv *domain.Review) error {
	_, err := r.db.Exec(`
		INSERT INTO reviews(id,author_id,seller_id,product_id,rating,title,body)
		VALUES(?,?,?,?,?,?,?)`,
		rv.ID, rv.AuthorID, rv.SellerID, rv.ProductID, rv.Rating, rv.Title, rv.Body)
	return err
}

func (r *ReviewRepo) Get(id string) (domain.Review, error) {
	var rv domain.Review
	err := r.db.Get(&rv, reviewCols+` WHERE id = ?`, id)
	return rv, err
}

func (r *ReviewRepo) ListBySeller(sellerID string, limit, offset int) ([]domain.Review, int, error) {
	var total int
	if err := r.db.Get(&total, `SELECT COUNT(*) FROM reviews WHERE seller_id=?`, sellerID); err != nil {
		return nil, 0, err
	}
	var out []domain.Review
	err := r.db.Select(&out, reviewCols+` WHERE seller_id=? ORDER BY datetime(created_at) DESC LIMIT ? OFFSET ?`,
		sellerID, limit, offset)
	return out, total, err
}

func (r *ReviewRepo) Summary(sellerID string) (domain.ReviewSummary, error) {
	var s domain.ReviewSummary
	err := r.db.Get(&s, `
		SELECT COALESCE(AVG(rating),0) AS average_rating, COUNT(*) AS total_count
		FROM reviews WHERE seller_id=?`, sellerID)
	return s, err
}

func (r *ReviewRepo) Update(rv *domain.Review) error {
	_, err := r.db.Exec(`
		UPDATE reviews SET rating=?, title=?, body=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
		rv.Rating, rv.Title, rv.Body, rv.ID)
	return err
}

func (r *ReviewRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM reviews WHERE id=?`, id)
	return err
}
