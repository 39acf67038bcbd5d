package domain

type Category struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Product struct {
	ID          string  `db:"id" json:"id"`
	SellerID    string  `db:"seller_id" json:"sellerId"`
	CategoryID  string  `db:"category_id" json:"categoryId"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	Currency    string  `db:"currency" json:"currency"`
	Stock       int     `db:"stock" json:"stock"`
	MinOrderQty int     `db:"min_order_qty" json:"minOrderQty"`
	Active      bool    `db:"active" json:"active"`
	CreatedAt   string  `db:"created_at" json:"createdAt"`
	UpdatedAt   string  `db:"updated_at" json:"updatedAt,omitempty"`
}

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty,omitempty"`
}

type CartItem struct {
	ProductID  string  `db:"product_id" json:"productId"`
	Name       string  `db:"name" json:"name"`
	SellerID   string  `db:"seller_id" json:"sellerId"`
	Qty        int     `db:"qty" json:"quantity"`
	Price      float64 `db:"price" json:"price"`
	PriceAtAdd float64 `db:"price_at_add" json:"priceAtAdd"`
	Subtotal   float64 `db:"subtotal" json:"subtotal"`
}

type CartView struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

type SavedProduct struct {
	ProductID string  `db:"product_id" json:"productId"`
	Name      string  `db:"name" json:"name"`
	Price     float64 `db:"price" json:"price"`
	Active    bool    `db:"active" json:"active"`
	SavedAt   string  `db:"saved_at" json:"savedAt"`
}
