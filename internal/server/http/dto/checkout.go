package dto

// CartItem is one cart line of a checkout request.
type CartItem struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// Address describes a shipping destination.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// CheckoutRequest describes the express checkout payload.
type CheckoutRequest struct {
	UserID          string     `json:"user_id" binding:"required"`
	Items           []CartItem `json:"items" binding:"required"`
	ShippingAddress Address    `json:"shipping_address"`
}
