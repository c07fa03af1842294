package models

import "testing"

func TestProductSell(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		sold         int
		sell         int
		wantOK       bool
		wantQuantity int
		wantSold     int
	}{
		{"whole stock", 5, 0, 5, true, 0, 5},
		{"partial", 10, 2, 3, true, 7, 5},
		{"more than stock", 4, 0, 5, false, 4, 0},
		{"zero units", 4, 1, 0, true, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Quantity: tt.quantity, Sold: tt.sold}

			ok := p.Sell(tt.sell)

			if ok != tt.wantOK {
				t.Errorf("Sell(%d) = %v, want %v", tt.sell, ok, tt.wantOK)
			}
			if p.Quantity != tt.wantQuantity {
				t.Errorf("quantity = %d, want %d", p.Quantity, tt.wantQuantity)
			}
			if p.Sold != tt.wantSold {
				t.Errorf("sold = %d, want %d", p.Sold, tt.wantSold)
			}
		})
	}
}

func TestProductRestock(t *testing.T) {
	p := Product{Quantity: 3}
	p.Restock(7)
	if p.Quantity != 10 {
		t.Errorf("quantity = %d, want 10", p.Quantity)
	}
}

func TestProductValue(t *testing.T) {
	p := Product{Price: 2.5, Quantity: 4}
	if got := p.Value(); got != 10.0 {
		t.Errorf("Value() = %v, want 10.0", got)
	}
}
