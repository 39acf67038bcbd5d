package repos

import (
	"database/sql"

	"tradeyard/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProfileRepo struct{ db *sqlx.DB }

func NewProfileRepo(db *sqlx.DB) *ProfileRepo { return &ProfileRepo{db: db} }

// ---------- buyer ----------

func (r *ProfileRepo) BuyerByUserID(userID string) (*domain.BuyerProfile, error) {
	var p domain.BuyerProfile
	err := r.db.Get(&p, `
		SELECT id,user_id,company_name,contact_name,phone,country,verified,created_at,COALESCE(updated_at,'') AS updated_at
		FROM buyer_profiles WHERE user_id=?`, userID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepo) CreateBuyer(p *domain.BuyerProfile) error {
	_, err := r.db.Exec(`
		INSERT INTO buyer_profiles(id,user_id,company_name,contact_name,phone,country)
		VALUES(?,?,?,?,?,?)`,
		p.ID, p.UserID, p.CompanyName, p.ContactName, p.Phone, p.Country)
	return err
}

func (r *ProfileRepo) UpdateBuyer(p *domain.BuyerProfile) error {
	_, err := r.db.Exec(`
		UPDATE buyer_profiles
		SET company_name=?, contact_name=?, phone=?, country=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?`,
		p.CompanyName, p.ContactName, p.Phone, p.Country, p.ID)
	return err
}

// ---------- seller ----------

func (r *ProfileRepo) SellerByUserID(userID string) (*domain.SellerProfile, error) {
	var p domain.SellerProfile
	err := r.db.Get(&p, sellerCols+` WHERE user_id=?`, userID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepo) SellerByID(id string) (*domain.SellerProfile, error) {
	var p domain.SellerProfile
	err := r.db.Get(&p, sellerCols+` WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const sellerCols = `
	SELECT id,user_id,company_name,description,website,phone,country,verified,premium,created_at,COALESCE(updated_at,'') AS updated_at
	FROM seller_profiles`

func (r *ProfileRepo) CreateSeller(p *domain.SellerProfile) error {
	_, err := r.db.Exec(`
		INSERT INTO seller_profiles(id,user_id,company_name,description,website,phone,country)
		VALUES(?,?,?,?,?,?,?)`,
		p.ID, p.UserID, p.CompanyName, p.Description, p.Website, p.Phone, p.Country)
	return err
}

func (r *ProfileRepo) UpdateSeller(p *domain.SellerProfile) error {
	_, err := r.db.Exec(`
		UPDATE seller_profiles
		SET company_name=?, description=?, website=?, phone=?, country=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?`,
		p.CompanyName, p.Description, p.Website, p.Phone, p.Country, p.ID)
	return err
}

// ListVerifiedSellers returns the public seller directory.
func (r *ProfileRepo) ListVerifiedSellers(q string, limit, offset int) ([]domain.SellerProfile, int, error) {
	where := `verified = 1`
	args := []any{}
	if q != "" {
		where += ` AND LOWER(company_name) LIKE ?`
		args = append(args, "%"+q+"%")
	}

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(*) FROM seller_profiles WHERE `+where, args...); err != nil {
		return nil, 0, err
	}

	var out []domain.SellerProfile
	args = append(args, limit, offset)
	err := r.db.Select(&out, sellerCols+` WHERE `+where+` ORDER BY premium DESC, company_name LIMIT ? OFFSET ?`, args...)
	return out, total, err
}

func (r *ProfileRepo) SetSellerVerified(sellerID string, verified bool) error {
	res, err := r.db.Exec(`UPDATE seller_profiles SET verified=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`, verified, sellerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
