// Package report renders human-readable inventory documents from a product
// snapshot.
package report

import (
	"fmt"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
)

// Summary aggregates the totals shown at the bottom of every report.
type Summary struct {
	TotalProducts int
	TotalQuantity int
	TotalSold     int
	TotalValue    float64
	MinPrice      float64
	MaxPrice      float64
}

// Summarize computes report totals over a product snapshot.
func Summarize(products []models.Product) Summary {
	s := Summary{}
	for i, p := range products {
		s.TotalProducts++
		s.TotalQuantity += p.Quantity
		s.TotalSold += p.Sold
		s.TotalValue += p.Value()
		if i == 0 || p.Price < s.MinPrice {
			s.MinPrice = p.Price
		}
		if p.Price > s.MaxPrice {
			s.MaxPrice = p.Price
		}
	}
	return s
}

// FormatCurrency renders an amount the way the reports display money.
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
