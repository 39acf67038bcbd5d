package repos

import (
	"tradeyard/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// Items joins cart rows with the live product so callers see current price,
// seller and name alongside the price captured at add time.
func (r *CartRepo) Items(buyerID string) ([]domain.CartItem, error) {
	var out []domain.CartItem
	err := r.db.Select(&out, `
		SELECT ci.product_id, p.name, p.seller_id, ci.qty, p.price, ci.price_at_add,
		       (ci.qty * p.price) AS subtotal
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.buyer_id = ?
		ORDER BY p.name`, buyerID)
	return out, err
}

func (r *CartRepo) Upsert(buyerID, productID string, qty int, priceAtAdd float64) error {
	_, err := r.db.Exec(`
		INSERT INTO cart_items(buyer_id,product_id,qty,price_at_add,updated_at)
		VALUES(?,?,?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(buyer_id,product_id)
		DO UPDATE SET qty = qty + excluded.qty, updated_at=CURRENT_TIMESTAMP`,
		buyerID, productID, qty, priceAtAdd)
	return err
}

func (r *CartRepo) SetQty(buyerID, productID string, qty int) (bool, error) {
	res, err := r.db.Exec(`UPDATE cart_items SET qty=?, updated_at=CURRENT_TIMESTAMP WHERE buyer_id=? AND product_id=?`,
		qty, buyerID, productID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *CartRepo) Remove(buyerID, productID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE buyer_id=? AND product_id=?`, buyerID, productID)
	return err
}

func (r *CartRepo) Clear(buyerID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE buyer_id=?`, buyerID)
	return err
}
