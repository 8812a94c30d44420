package model

// DiscountType distinguishes how a discount code reduces an order.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFlat       DiscountType = "flat"
)

// DiscountCode is one entry of the injected promotional code table.
type DiscountCode struct {
	Type     DiscountType `json:"type"`
	Value    float64      `json:"value"`
	MinOrder float64      `json:"min_order"`
}
