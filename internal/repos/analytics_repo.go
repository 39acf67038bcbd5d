package repos

import "github.com/jmoiron/sqlx"

type AnalyticsRepo struct{ db *sqlx.DB }

func NewAnalyticsRepo(db *sqlx.DB) *AnalyticsRepo { return &AnalyticsRepo{db: db} }

type Totals struct {
	Buyers   int `db:"buyers" json:"buyers"`
	Sellers  int `db:"sellers" json:"sellers"`
	Admins   int `db:"admins" json:"admins"`
	Products int `db:"products" json:"products"`
	RFQs     int `db:"rfqs" json:"rfqs"`
	Quotes   int `db:"quotes" json:"quotes"`
	Orders   int `db:"orders" json:"orders"`
}

type RevenueByStatus struct {
	Status  string  `db:"status" json:"status"`
	Orders  int     `db:"orders" json:"orders"`
	Revenue float64 `db:"revenue" json:"revenue"`
}

func (r *AnalyticsRepo) Totals() (Totals, error) {
	var t Totals
	err := r.db.Get(&t, `
		SELECT
		  (SELECT COUNT(*) FROM users WHERE role='BUYER')  AS buyers,
		  (SELECT COUNT(*) FROM users WHERE role='SELLER') AS sellers,
		  (SELECT COUNT(*) FROM users WHERE role='ADMIN')  AS admins,
		  (SELECT COUNT(*) FROM products WHERE active=1)   AS products,
		  (SELECT COUNT(*) FROM rfqs)                      AS rfqs,
		  (SELECT COUNT(*) FROM quotes)                    AS quotes,
		  (SELECT COUNT(*) FROM orders)                    AS orders`)
	return t, err
}

func (r *AnalyticsRepo) RevenueByStatus() ([]RevenueByStatus, error) {
	var out []RevenueByStatus
	err := r.db.Select(&out, `
		SELECT status, COUNT(*) AS orders, COALESCE(SUM(total),0) AS revenue
		FROM orders GROUP BY status ORDER BY status`)
	return out, err
}
