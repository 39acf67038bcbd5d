package repos

import "github.com/jmoiron/sqlx"

// PaymentRepo owns the admin payment reporting queries. The join lives here
// rather than in handlers so the HTTP layer only orchestrates.
type PaymentRepo struct{ db *sqlx.DB }

func NewPaymentRepo(db *sqlx.DB) *PaymentRepo { return &PaymentRepo{db: db} }

type PaymentRow struct {
	OrderID     string  `db:"order_id" json:"orderId"`
	BuyerName   string  `db:"buyer_name" json:"buyerName"`
	SellerName  string  `db:"seller_name" json:"sellerName"`
	Amount      float64 `db:"amount" json:"amount"`
	Method      string  `db:"method" json:"method"`
	Description string  `db:"description" json:"description"`
	OrderStatus string  `db:"order_status" json:"orderStatus"`
	CreatedAt   string  `db:"created_at" json:"createdAt"`
}

func (r *PaymentRepo) Report(limit, offset int) ([]PaymentRow, int, error) {
	var total int
	if err := r.db.Get(&total, `SELECT COUNT(*) FROM payments`); err != nil {
		return nil, 0, err
	}
	var out []PaymentRow
	err := r.db.Select(&out, `
		SELECT pay.order_id, o.buyer_name, o.seller_name,
		       pay.amount, pay.method, pay.description, o.status AS order_status, pay.created_at
		FROM payments pay
		JOIN orders o ON o.id = pay.order_id
		ORDER BY datetime(pay.created_at) DESC
		LIMIT ? OFFSET ?`, limit, offset)
	return out, total, err
}

// BackfillDescriptions fills in empty payment descriptions in one bulk save
// and reports how many rows changed.
func (r *PaymentRepo) BackfillDescriptions() (int, error) {
	res, err := r.db.Exec(`
		UPDATE payments
		SET description = 'Payment for order ' || order_id
		WHERE description = ''`)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
