package repos

import (
	"tradeyard/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CertificationRepo struct{ db *sqlx.DB }

func NewCertificationRepo(db *sqlx.DB) *CertificationRepo { return &CertificationRepo{db: db} }

const certCols = `
	SELECT id, seller_id, name, issuer, document_url, status, created_at
	FROM certifications`

func (r *CertificationRepo) Create(c *domain.Certification) error {
	_, err := r.db.Exec(`
		INSERT INTO certifications(id,seller_id,name,issuer,document_url,status)
		VALUES(?,?,?,?,?,'PENDING')`,
		c.ID, c.SellerID, c.Name, c.Issuer, c.DocumentURL)
	return err
}

func (r *CertificationRepo) Get(id string) (domain.Certification, error) {
	var c domain.Certification
	err := r.db.Get(&c, certCols+` WHERE id = ?`, id)
	return c, err
}

func (r *CertificationRepo) ListBySeller(sellerID string) ([]domain.Certification, error) {
	var out []domain.Certification
	err := r.db.Select(&out, certCols+` WHERE seller_id=? ORDER BY datetime(created_at) DESC`, sellerID)
	return out, err
}

// ListApproved is the public view on a seller page.
func (r *CertificationRepo) ListApproved(sellerID string) ([]domain.Certification, error) {
	var out []domain.Certification
	err := r.db.Select(&out, certCols+` WHERE seller_id=? AND status='APPROVED' ORDER BY name`, sellerID)
	return out, err
}

func (r *CertificationRepo) UpdateStatus(id, status string) error {
	_, err := r.db.Exec(`UPDATE certifications SET status=? WHERE id=?`, status, id)
	return err
}
