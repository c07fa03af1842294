package models

// Product represents a product entity in the inventory.
//
// An ID of 0 means the product has not been saved yet; the repository
// assigns the next free identifier on first save. A SupplierID of 0 means
// no supplier is assigned.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Sold        int     `json:"sold"`
	SupplierID  int     `json:"supplier_id,omitempty"`
}

// Sell records a sale of qty units. It reports false and leaves the product
// unchanged when qty exceeds the quantity on hand.
func (p *Product) Sell(qty int) bool {
	if qty > p.Quantity {
		return false
	}
	p.Quantity -= qty
	p.Sold += qty
	return true
}

// Restock adds qty units to the quantity on hand.
func (p *Product) Restock(qty int) {
	p.Quantity += qty
}

// Value returns the inventory value of this product (price times quantity).
func (p *Product) Value() float64 {
	return p.Price * float64(p.Quantity)
}
