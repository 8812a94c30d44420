package dto

// ReturnItem is one item of a return request.
type ReturnItem struct {
	ProductID         string  `json:"product_id"`
	UnitPrice         float64 `json:"unit_price"`
	Quantity          int     `json:"quantity"`
	Category          string  `json:"category"`
	DaysSincePurchase int     `json:"days_since_purchase"`
	ReservationID     string  `json:"reservation_id"`
}

// ReturnRequest describes a product return payload.
type ReturnRequest struct {
	OrderID string       `json:"order_id" binding:"required"`
	UserID  string       `json:"user_id" binding:"required"`
	Items   []ReturnItem `json:"items"`
	Reason  string       `json:"reason"`
}

// EligibilityRequest asks which items of an order can be returned.
type EligibilityRequest struct {
	OrderID string       `json:"order_id" binding:"required"`
	Items   []ReturnItem `json:"items"`
}
