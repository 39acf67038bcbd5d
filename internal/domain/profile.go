package domain

type BuyerProfile struct {
	ID          string `db:"id" json:"id"`
	UserID      string `db:"user_id" json:"userId"`
	CompanyName string `db:"company_name" json:"companyName"`
	ContactName string `db:"contact_name" json:"contactName"`
	Phone       string `db:"phone" json:"phone"`
	Country     string `db:"country" json:"country"`
	Verified    bool   `db:"verified" json:"verified"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
	UpdatedAt   string `db:"updated_at" json:"updatedAt,omitempty"`
}

type SellerProfile struct {
	ID          string `db:"id" json:"id"`
	UserID      string `db:"user_id" json:"userId"`
	CompanyName string `db:"company_name" json:"companyName"`
	Description string `db:"description" json:"description"`
	Website     string `db:"website" json:"website"`
	Phone       string `db:"phone" json:"phone"`
	Country     string `db:"country" json:"country"`
	Verified    bool   `db:"verified" json:"verified"`
	Premium     bool   `db:"premium" json:"premium"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
	UpdatedAt   string `db:"updated_at" json:"updatedAt,omitempty"`
}

type Certification struct {
	ID          string `db:"id" json:"id"`
	SellerID    string `db:"seller_id" json:"sellerId"`
	Name        string `db:"name" json:"name"`
	Issuer      string `db:"issuer" json:"issuer"`
	DocumentURL string `db:"document_url" json:"documentUrl"`
	Status      string `db:"status" json:"status"` // PENDING | APPROVED | REJECTED
	CreatedAt   string `db:"created_at" json:"createdAt"`
}
