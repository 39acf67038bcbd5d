package repos

import (
	"tradeyard/internal/domain"

	"github.com/jmoiron/sqlx"
)

type QuoteRepo struct{ db *sqlx.DB }

func NewQuoteRepo(db *sqlx.DB) *QuoteRepo { return &QuoteRepo{db: db} }

const quoteCols = `
	SELECT id, rfq_id, seller_id, price, currency, delivery_days, valid_until,
	       notes, status, created_at
	FROM quotes`

func (r *QuoteRepo) Create(q *domain.Quote) error {
	_, err := r.db.Exec(`
		INSERT INTO quotes(id,rfq_id,seller_id,price,currency,delivery_days,valid_until,notes,status)
		VALUES(?,?,?,?,?,?,?,?,'PENDING')`,
		q.ID, q.RFQID, q.SellerID, q.Price, q.Currency, q.DeliveryDays, q.ValidUntil, q.Notes)
	return err
}

func (r *QuoteRepo) Get(id string) (domain.Quote, error) {
	var q domain.Quote
	err := r.db.Get(&q, quoteCols+` WHERE id = ?`, id)
	return q, err
}

func (r *QuoteRepo) ExistsForSeller(rfqID, sellerID string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM quotes WHERE rfq_id=? AND seller_id=?`, rfqID, sellerID); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *QuoteRepo) ListBySeller(sellerID string, limit, offset int) ([]domain.Quote, int, error) {
	var total int
	if err := r.db.Get(&total, `SELECT COUNT(*) FROM quotes WHERE seller_id=?`, sellerID); err != nil {
		return nil, 0, err
	}
	var out []domain.Quote
	err := r.db.Select(&out, quoteCols+` WHERE seller_id=? ORDER BY datetime(created_at) DESC LIMIT ? OFFSET ?`,
		sellerID, limit, offset)
	return out, total, err
}

func (r *QuoteRepo) ListByRFQ(rfqID string) ([]domain.Quote, error) {
	var out []domain.Quote
	err := r.db.Select(&out, quoteCols+` WHERE rfq_id=? ORDER BY price ASC`, rfqID)
	return out, err
}

func (r *QuoteRepo) Update(q *domain.Quote) error {
	_, err := r.db.Exec(`
		UPDATE quotes
		SET price=?, currency=?, delivery_days=?, valid_until=?, notes=?
		WHERE id=?`,
		q.Price, q.Currency, q.DeliveryDays, q.ValidUntil, q.Notes, q.ID)
	return err
}

func (r *QuoteRepo) UpdateStatus(id, status string) error {
	_, err := r.db.Exec(`UPDATE quotes SET status=? WHERE id=?`, status, id)
	return err
}

// Accept marks the winner, rejects pending siblings and closes the request
// in one transaction.
func (r *QuoteRepo) Accept(quoteID, rfqID string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE quotes SET status='ACCEPTED' WHERE id=?`, quoteID); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE quotes SET status='REJECTED' WHERE rfq_id=? AND id<>? AND status='PENDING'`, rfqID, quoteID); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE rfqs SET status='CLOSED' WHERE id=?`, rfqID); err != nil {
		return err
	}
	return tx.Commit()
}
