package dto

// ApplyDiscountRequest carries a discount code for an order.
type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

// BulkDiscountRequest describes a tiered-pricing quote request.
type BulkDiscountRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	UserID    string `json:"user_id" binding:"required"`
}
