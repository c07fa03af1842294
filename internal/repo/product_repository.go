package repo

import "github.com/rogerio-castellano/inventory-manager/internal/models"

// ProductRepository defines the interface for product data operations.
//
// Mutations persist the whole collection as a side effect. Failures of
// these implicit saves are logged and swallowed: the in-memory state stays
// correct, callers are not interrupted. Update and Delete on an unknown
// identifier are silent no-ops. Only explicit Backup/Restore surface I/O
// errors.
type ProductRepository interface {
	All() []models.Product
	ByID(id int) (models.Product, error)
	Add(p *models.Product)
	Update(p models.Product)
	Delete(id int)

	Sell(id, qty int) (models.Product, error)
	Restock(id, qty int) (models.Product, error)

	Search(term string) []models.Product
	ByCategory(category string) []models.Product
	Categories() []string
	LowStock(threshold int) []models.Product
	TopSelling() (models.Product, error)
	TotalValue() float64
	SalesByCategory() map[string]float64
	BySupplier() map[int][]models.Product

	Backup(path string) error
	Restore(path string) error
}
