package repo

import (
	"errors"
	"io/fs"
	"slices"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/store"
)

// FileSupplierRepository is a file-backed implementation of
// SupplierRepository with the same persistence pattern as the product
// repository: whole-collection rewrite on every mutation, no locking.
type FileSupplierRepository struct {
	suppliers []models.Supplier
	nextID    int
	path      string
	log       *zap.Logger
}

// NewFileSupplierRepository loads the snapshot at path, or starts empty
// when the file is missing or unreadable.
func NewFileSupplierRepository(path string, log *zap.Logger) *FileSupplierRepository {
	r := &FileSupplierRepository{
		suppliers: []models.Supplier{},
		nextID:    1,
		path:      path,
		log:       log,
	}

	suppliers, err := store.Load[models.Supplier](path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("supplier store unreadable, starting empty",
				zap.String("path", path), zap.Error(err))
		}
		return r
	}

	r.suppliers = suppliers
	for _, s := range suppliers {
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	return r
}

func (r *FileSupplierRepository) save() {
	if err := store.Save(r.path, r.suppliers); err != nil {
		r.log.Error("saving supplier store failed", zap.String("path", r.path), zap.Error(err))
	}
}

// All returns a snapshot copy of all suppliers.
func (r *FileSupplierRepository) All() []models.Supplier {
	return slices.Clone(r.suppliers)
}

// ByID retrieves a supplier by its identifier.
func (r *FileSupplierRepository) ByID(id int) (models.Supplier, error) {
	for _, s := range r.suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Supplier{}, ErrSupplierNotFound
}

// Save upserts the supplier and persists. A zero identifier triggers
// insert-with-new-id; a nonzero one replaces the matching record, or does
// nothing when no record matches.
func (r *FileSupplierRepository) Save(s *models.Supplier) {
	if s.ID == 0 {
		s.ID = r.nextID
		r.nextID++
		r.suppliers = append(r.suppliers, *s)
	} else {
		for i := range r.suppliers {
			if r.suppliers[i].ID == s.ID {
				r.suppliers[i] = *s
				break
			}
		}
	}
	r.save()
}

// Delete removes all records with the given identifier and persists.
func (r *FileSupplierRepository) Delete(id int) {
	r.suppliers = slices.DeleteFunc(r.suppliers, func(s models.Supplier) bool {
		return s.ID == id
	})
	r.save()
}
