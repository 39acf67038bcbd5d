package domain

const (
	RFQOpen   = "OPEN"
	RFQClosed = "CLOSED"
)

const (
	QuotePending   = "PENDING"
	QuoteAccepted  = "ACCEPTED"
	QuoteRejected  = "REJECTED"
	QuoteWithdrawn = "WITHDRAWN"
)

type RFQ struct {
	ID               string `db:"id" json:"id"`
	BuyerID          string `db:"buyer_id" json:"buyerId"`
	CategoryID       string `db:"category_id" json:"categoryId"`
	Title            string `db:"title" json:"title"`
	Description      string `db:"description" json:"description"`
	Quantity         int    `db:"quantity" json:"quantity"`
	Unit             string `db:"unit" json:"unit"`
	DeliveryDeadline string `db:"delivery_deadline" json:"deliveryDeadline"`
	Status           string `db:"status" json:"status"`
	QuoteCount       int    `db:"quote_count" json:"quoteCount"`
	CreatedAt        string `db:"created_at" json:"createdAt"`
}

type Quote struct {
	ID           string  `db:"id" json:"id"`
	RFQID        string  `db:"rfq_id" json:"rfqId"`
	SellerID     string  `db:"seller_id" json:"sellerId"`
	Price        float64 `db:"price" json:"price"`
	Currency     string  `db:"currency" json:"currency"`
	DeliveryDays int     `db:"delivery_days" json:"deliveryDays"`
	ValidUntil   string  `db:"valid_until" json:"validUntil"`
	Notes        string  `db:"notes" json:"notes"`
	Status       string  `db:"status" json:"status"`
	CreatedAt    string  `db:"created_at" json:"createdAt"`
}
