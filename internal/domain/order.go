package domain

const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderShipped   = "SHIPPED"
	OrderDelivered = "DELIVERED"
	OrderCanceled  = "CANCELED"
)

type Order struct {
	ID              string  `db:"id" json:"id"`
	GroupID         string  `db:"group_id" json:"groupId"`
	BuyerID         string  `db:"buyer_id" json:"buyerId"`
	SellerID        string  `db:"seller_id" json:"sellerId"`
	BuyerName       string  `db:"buyer_name" json:"buyerName"`
	SellerName      string  `db:"seller_name" json:"sellerName"`
	Total           float64 `db:"total" json:"total"`
	Status          string  `db:"status" json:"status"`
	ShippingAddress string  `db:"shipping_address" json:"shippingAddress"`
	TrackingNumber  string  `db:"tracking_number" json:"trackingNumber,omitempty"`
	CreatedAt       string  `db:"created_at" json:"createdAt"`
}

type OrderItem struct {
	OrderID   string  `db:"order_id" json:"-"`
	ProductID string  `db:"product_id" json:"productId"`
	Name      string  `db:"name" json:"name"`
	Qty       int     `db:"qty" json:"quantity"`
	UnitPrice float64 `db:"unit_price" json:"unitPrice"`
	Subtotal  float64 `db:"subtotal" json:"subtotal"`
}

// StatusTransitionAllowed reports whether a seller-driven move is legal.
// Cancellation is buyer-driven and handled separately.
func StatusTransitionAllowed(from, to string) bool {
	switch from {
	case OrderPending:
		return to == OrderConfirmed
	case OrderConfirmed:
		return to == OrderShipped
	case OrderShipped:
		return to == OrderDelivered
	}
	return false
}
