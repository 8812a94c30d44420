package model

// Reservation is an ephemeral hold on stock scoped to one order
// attempt. It is released or confirmed exactly once.
type Reservation struct {
	ID        string
	ProductID string
	Quantity  int
}
