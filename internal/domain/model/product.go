package model

// Product describes a catalog item available for purchase.
type Product struct {
	ID            string
	Name          string
	Price         float64
	Category      string
	StockQuantity int
}

// IsInStock reports whether any stock remains.
func (p *Product) IsInStock() bool {
	return p.StockQuantity > 0
}

// UpdateStock adjusts the stock counter by delta, flooring at zero.
func (p *Product) UpdateStock(delta int) {
	p.StockQuantity += delta
	if p.StockQuantity < 0 {
		p.StockQuantity = 0
	}
}
