package repos

import (
	"tradeyard/internal/domain"

	"github.com/jmoiron/sqlx"
)

// SavedProductRepo backs the buyer shortlist.
type SavedProductRepo struct{ db *sqlx.DB }

func NewSavedProductRepo(db *sqlx.DB) *SavedProductRepo { return &SavedProductRepo{db: db} }

func (r *SavedProductRepo) List(buyerID string) ([]domain.SavedProduct, error) {
	var out []domain.SavedProduct
	err := r.db.Select(&out, `
		SELECT sp.product_id, p.name, p.price, p.active, sp.created_at AS saved_at
		FROM saved_products sp
		JOIN products p ON p.id = sp.product_id
		WHERE sp.buyer_id = ?
		ORDER BY sp.created_at DESC`, buyerID)
	return out, err
}

func (r *SavedProductRepo) Save(buyerID, productID string) error {
	_, err := r.db.Exec(`
		INSERT INTO saved_products(buyer_id,product_id) VALUES(?,?)
		ON CONFLICT(buyer_id,product_id) DO NOTHING`, buyerID, productID)
	return err
}

func (r *SavedProductRepo) Unsave(buyerID, productID string) error {
	_, err := r.db.Exec(`DELETE FROM saved_products WHERE buyer_id=? AND product_id=?`, buyerID, productID)
	return err
}
