package repos

import (
	"tradeyard/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  SELECT
    id, seller_id, category_id, name, description, price, currency, stock,
    min_order_qty, active, created_at, COALESCE(updated_at,'') AS updated_at
  FROM products`

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, productCols+` WHERE id = ?`, id)
	return p, err
}

func (r *ProductRepo) Create(p *domain.Product) error {
	_, err := r.db.Exec(`
		INSERT INTO products(id,seller_id,category_id,name,description,price,currency,stock,min_order_qty,active)
		VALUES(?,?,?,?,?,?,?,?,?,1)`,
		p.ID, p.SellerID, p.CategoryID, p.Name, p.Description, p.Price, p.Currency, p.Stock, p.MinOrderQty)
	return err
}

func (r *ProductRepo) Update(p *domain.Product) error {
	_, err := r.db.Exec(`
		UPDATE products
		SET category_id=?, name=?, description=?, price=?, currency=?, stock=?, min_order_qty=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?`,
		p.CategoryID, p.Name, p.Description, p.Price, p.Currency, p.Stock, p.MinOrderQty, p.ID)
	return err
}

// SoftDelete flags the listing inactive; order history keeps referencing it.
func (r *ProductRepo) SoftDelete(id string) error {
	_, err := r.db.Exec(`UPDATE products SET active=0, updated_at=CURRENT_TIMESTAMP WHERE id=?`, id)
	return err
}

type ProductFilter struct {
	Q          string
	CategoryID string
	SellerID   string
	MinPrice   float64
	MaxPrice   float64
}

// Search lists active products matching the filter, newest first.
func (r *ProductRepo) Search(f ProductFilter, limit, offset int) ([]domain.Product, int, error) {
	where := `active = 1`
	args := []any{}
	if f.Q != "" {
		where += ` AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)`
		args = append(args, "%"+f.Q+"%", "%"+f.Q+"%")
	}
	if f.CategoryID != "" {
		where += ` AND category_id = ?`
		args = append(args, f.CategoryID)
	}
	if f.SellerID != "" {
		where += ` AND seller_id = ?`
		args = append(args, f.SellerID)
	}
	if f.MinPrice > 0 {
		where += ` AND price >= ?`
		args = append(args, f.MinPrice)
	}
	if f.MaxPrice > 0 {
		where += ` AND price <= ?`
		args = append(args, f.MaxPrice)
	}

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(*) FROM products WHERE `+where, args...); err != nil {
		return nil, 0, err
	}

	var out []domain.Product
	args = append(args, limit, offset)
	err := r.db.Select(&out, productCols+` WHERE `+where+` ORDER BY created_at DESC LIMIT ? OFFSET ?`, args...)
	return out, total, err
}

// ListBySeller includes inactive rows so sellers can manage their catalog.
func (r *ProductRepo) ListBySeller(sellerID string, limit, offset int) ([]domain.Product, int, error) {
	var total int
	if err := r.db.Get(&total, `SELECT COUNT(*) FROM products WHERE seller_id=?`, sellerID); err != nil {
		return nil, 0, err
	}
	var out []domain.Product
	err := r.db.Select(&out, productCols+` WHERE seller_id=? ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		sellerID, limit, offset)
	return out, total, err
}

func (r *ProductRepo) DecrementStock(id string, qty int) error {
	_, err := r.db.Exec(`UPDATE products SET stock = stock - ? WHERE id=? AND stock >= ?`, qty, id, qty)
	return err
}

func (r *ProductRepo) ListCategories() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `SELECT id,name FROM categories ORDER BY name`)
	return out, err
}
