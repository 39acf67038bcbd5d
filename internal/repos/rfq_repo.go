package repos

import (
	"tradeyard/internal/domain"

	"github.com/jmoiron/sqlx"
)

type RFQRepo struct{ db *sqlx.DB }

func NewRFQRepo(db *sqlx.DB) *RFQRepo { return &RFQRepo{db: db} }

const rfqCols = `
	SELECT r.id, r.buyer_id, r.category_id, r.title, r.description, r.quantity,
	       r.unit, r.delivery_deadline, r.status, r.created_at,
	       (SELECT COUNT(*) FROM quotes q WHERE q.rfq_id = r.id) AS quote_count
	FROM rfqs r`

func (r *RFQRepo) Create(q *domain.RFQ) error {
	_, err := r.db.Exec(`
		INSERT INTO rfqs(id,buyer_id,category_id,title,description,quantity,unit,delivery_deadline,status)
		VALUES(?,?,?,?,?,?,?,?,'OPEN')`,
		q.ID, q.BuyerID, q.CategoryID, q.Title, q.Description, q.Quantity, q.Unit, q.DeliveryDeadline)
	return err
}

func (r *RFQRepo) Get(id string) (domain.RFQ, error) {
	var q domain.RFQ
	err := r.db.Get(&q, rfqCols+` WHERE r.id = ?`, id)
	return q, err
}

// ListOpen is the public board: only OPEN requests appear.
func (r *RFQRepo) ListOpen(categoryID string, limit, offset int) ([]domain.RFQ, int, error) {
	where := `r.status = 'OPEN'`
	args := []any{}
	if categoryID != "" {
		where += ` AND r.category_id = ?`
		args = append(args, categoryID)
	}

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(*) FROM rfqs r WHERE `+where, args...); err != nil {
		return nil, 0, err
	}
	var out []domain.RFQ
	args = append(args, limit, offset)
	err := r.db.Select(&out, rfqCols+` WHERE `+where+` ORDER BY datetime(r.created_at) DESC LIMIT ? OFFSET ?`, args...)
	return out, total, err
}

func (r *RFQRepo) ListByBuyer(buyerID string, limit, offset int) ([]domain.RFQ, int, error) {
	var total int
	if err := r.db.Get(&total, `SELECT COUNT(*) FROM rfqs WHERE buyer_id=?`, buyerID); err != nil {
		return nil, 0, err
	}
	var out []domain.RFQ
	err := r.db.Select(&out, rfqCols+` WHERE r.buyer_id=? ORDER BY datetime(r.created_at) DESC LIMIT ? OFFSET ?`,
		buyerID, limit, offset)
	return out, total, err
}

func (r *RFQRepo) UpdateStatus(id, status string) error {
	_, err := r.db.Exec(`UPDATE rfqs SET status=? WHERE id=?`, status, id)
	return err
}

func (r *RFQRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM rfqs WHERE id=?`, id)
	return err
}

func (r *RFQRepo) CountQuotes(rfqID string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM quotes WHERE rfq_id=?`, rfqID)
	return n, err
}
