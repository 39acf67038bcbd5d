package domain

const (
	RoleBuyer  = "BUYER"
	RoleSeller = "SELLER"
	RoleAdmin  = "ADMIN"
)

type User struct {
	ID        string `db:"id" json:"id"`
	Email     string `db:"email" json:"email"`
	Name      string `db:"name" json:"name"`
	Hash      string `db:"password_hash" json:"-"`
	Role      string `db:"role" json:"role"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}

type PasswordReset struct {
	Token     string `db:"token"`
	UserID    string `db:"user_id"`
	ExpiresAt string `db:"expires_at"`
	Used      bool   `db:"used"`
}
