package repo

import "github.com/rogerio-castellano/inventory-manager/internal/models"

// SupplierRepository defines the interface for supplier data operations.
// Save is an upsert: a zero identifier inserts with a new id, a nonzero one
// replaces the matching record or is a silent no-op when absent.
type SupplierRepository interface {
	All() []models.Supplier
	ByID(id int) (models.Supplier, error)
	Save(s *models.Supplier)
	Delete(id int)
}
