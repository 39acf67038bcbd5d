package repos

import (
	"tradeyard/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

const orderCols = `
	SELECT id, group_id, buyer_id, seller_id, buyer_name, seller_name, total,
	       status, shipping_address, tracking_number, created_at
	FROM orders`

func (r *OrderRepo) Create(o *domain.Order) error {
	_, err := r.db.Exec(`
		INSERT INTO orders(id,group_id,buyer_id,seller_id,buyer_name,seller_name,total,status,shipping_address)
		VALUES(?,?,?,?,?,?,?,?,?)`,
		o.ID, o.GroupID, o.BuyerID, o.SellerID, o.BuyerName, o.SellerName, o.Total, o.Status, o.ShippingAddress)
	return err
}

func (r *OrderRepo) InsertItem(orderID, productID, name string, qty int, unitPrice float64) error {
	_, err := r.db.Exec(`
		INSERT INTO order_items(order_id,product_id,name,qty,unit_price) VALUES(?,?,?,?,?)`,
		orderID, productID, name, qty, unitPrice)
	return err
}

func (r *OrderRepo) Get(orderID string) (domain.Order, []domain.OrderItem, error) {
	var o domain.Order
	if err := r.db.Get(&o, orderCols+` WHERE id = ?`, orderID); err != nil {
		return domain.Order{}, nil, err
	}
	var items []domain.OrderItem
	if err := r.db.Select(&items, `
		SELECT order_id, product_id, name, qty, unit_price,
		       (qty * unit_price) AS subtotal
		FROM order_items
		WHERE order_id = ?
		ORDER BY name`, orderID); err != nil {
		return domain.Order{}, nil, err
	}
	return o, items, nil
}

func (r *OrderRepo) ListByBuyer(buyerID string, limit, offset int) ([]domain.Order, int, error) {
	return r.list(`buyer_id = ?`, []any{buyerID}, limit, offset)
}

func (r *OrderRepo) ListBySeller(sellerID string, limit, offset int) ([]domain.Order, int, error) {
	return r.list(`seller_id = ?`, []any{sellerID}, limit, offset)
}

func (r *OrderRepo) ListAll(limit, offset int) ([]domain.Order, int, error) {
	return r.list(`1=1`, nil, limit, offset)
}

func (r *OrderRepo) list(where string, args []any, limit, offset int) ([]domain.Order, int, error) {
	var total int
	if err := r.db.Get(&total, `SELECT COUNT(*) FROM orders WHERE `+where, args...); err != nil {
		return nil, 0, err
	}
	var out []domain.Order
	args = append(args, limit, offset)
	err := r.db.Select(&out, orderCols+` WHERE `+where+` ORDER BY datetime(created_at) DESC LIMIT ? OFFSET ?`, args...)
	return out, total, err
}

func (r *OrderRepo) UpdateStatus(id, status, trackingNumber string) error {
	_, err := r.db.Exec(`
		UPDATE orders
		SET status=?, tracking_number=CASE WHEN ?='' THEN tracking_number ELSE ? END
		WHERE id=?`, status, trackingNumber, trackingNumber, id)
	return err
}

func (r *OrderRepo) CreatePayment(orderID string, amount float64) error {
	_, err := r.db.Exec(`INSERT INTO payments(order_id,amount) VALUES(?,?)`, orderID, amount)
	return err
}
