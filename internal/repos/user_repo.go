package repos

import (
	"tradeyard/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,role,created_at FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,role,created_at FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u *domain.User) error {
	_, err := r.DB.Exec(`INSERT INTO users(id,email,name,password_hash,role) VALUES(?,?,?,?,?)`,
		u.ID, u.Email, u.Name, u.Hash, u.Role)
	return err
}

func (r *UserRepo) UpdatePassword(userID, hash string) error {
	_, err := r.DB.Exec(`UPDATE users SET password_hash=? WHERE id=?`, hash, userID)
	return err
}

// ---------- password resets ----------

func (r *UserRepo) CreateReset(token, userID, expiresAt string) error {
	_, err := r.DB.Exec(`INSERT INTO password_resets(token,user_id,expires_at) VALUES(?,?,?)`, token, userID, expiresAt)
	return err
}

func (r *UserRepo) Reset(token string) (*domain.PasswordReset, error) {
	var p domain.PasswordReset
	err := r.DB.Get(&p, `SELECT token,user_id,expires_at,used FROM password_resets WHERE token=?`, token)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepo) MarkResetUsed(token string) error {
	_, err := r.DB.Exec(`UPDATE password_resets SET used=1 WHERE token=?`, token)
	return err
}

// ---------- admin ----------

func (r *UserRepo) List(role string, limit, offset int) ([]domain.User, int, error) {
	where := `1=1`
	args := []any{}
	if role != "" {
		where = `role = ?`
		args = append(args, role)
	}

	var total int
	if err := r.DB.Get(&total, `SELECT COUNT(*) FROM users WHERE `+where, args...); err != nil {
		return nil, 0, err
	}

	var out []domain.User
	args = append(args, limit, offset)
	err := r.DB.Select(&out, `
		SELECT id,email,name,password_hash,role,created_at FROM users
		WHERE `+where+`
		ORDER BY created_at DESC, email
		LIMIT ? OFFSET ?`, args...)
	return out, total, err
}

// DeleteCascade cancels the user's open orders and removes their profiles,
// cart and saved rows before deleting the user. Order rows are retained for
// audit.
func (r *UserRepo) DeleteCascade(userID string) error {
	tx, err := r.DB.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var buyerIDs []string
	if err := tx.Select(&buyerIDs, `SELECT id FROM buyer_profiles WHERE user_id=?`, userID); err != nil {
		return err
	}
	if len(buyerIDs) > 0 {
		query, args, err := sqlx.In(`UPDATE orders SET status='CANCELED' WHERE buyer_id IN (?) AND status='PENDING'`, buyerIDs)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(query, args...); err != nil {
			return err
		}
		query, args, err = sqlx.In(`DELETE FROM cart_items WHERE buyer_id IN (?)`, buyerIDs)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(query, args...); err != nil {
			return err
		}
		query, args, err = sqlx.In(`DELETE FROM saved_products WHERE buyer_id IN (?)`, buyerIDs)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(query, args...); err != nil {
			return err
		}
	}

	var sellerIDs []string
	if err := tx.Select(&sellerIDs, `SELECT id FROM seller_profiles WHERE user_id=?`, userID); err != nil {
		return err
	}
	if len(sellerIDs) > 0 {
		query, args, err := sqlx.In(`UPDATE orders SET status='CANCELED' WHERE seller_id IN (?) AND status='PENDING'`, sellerIDs)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(query, args...); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`DELETE FROM users WHERE id=?`, userID); err != nil {
		return err
	}

	return tx.Commit()
}
