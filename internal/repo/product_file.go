package repo

import (
	"errors"
	"io/fs"
	"slices"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/store"
)

// UncategorizedLabel is the category key used in aggregates for products
// without a category.
const UncategorizedLabel = "Uncategorized"

// FileProductRepository is a file-backed implementation of ProductRepository.
// It owns the authoritative in-memory product list and rewrites the snapshot
// file after every mutation. It is not safe for concurrent use.
type FileProductRepository struct {
	products []models.Product
	nextID   int
	path     string
	log      *zap.Logger
}

// NewFileProductRepository loads the snapshot at path, or starts empty when
// the file is missing or unreadable. A corrupt store is logged and discarded
// rather than aborting startup.
func NewFileProductRepository(path string, log *zap.Logger) *FileProductRepository {
	r := &FileProductRepository{
		products: []models.Product{},
		nextID:   1,
		path:     path,
		log:      log,
	}

	products, err := store.Load[models.Product](path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("product store unreadable, starting empty",
				zap.String("path", path), zap.Error(err))
		}
		return r
	}

	r.products = products
	r.nextID = nextFreeID(products)
	return r
}

func nextFreeID(products []models.Product) int {
	next := 1
	for _, p := range products {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

// save rewrites the snapshot file. Failures are logged and swallowed; the
// in-memory collection remains the source of truth until the next load.
func (r *FileProductRepository) save() {
	if err := store.Save(r.path, r.products); err != nil {
		r.log.Error("saving product store failed", zap.String("path", r.path), zap.Error(err))
	}
}

// All returns a snapshot copy of all products.
func (r *FileProductRepository) All() []models.Product {
	return slices.Clone(r.products)
}

// ByID retrieves a product by its identifier.
func (r *FileProductRepository) ByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Add appends a product and persists. A zero identifier is replaced with the
// next free one; a nonzero identifier is kept verbatim, collisions included.
func (r *FileProductRepository) Add(p *models.Product) {
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	r.products = append(r.products, *p)
	r.save()
}

// Update replaces the stored record with a matching identifier and persists.
// An unknown identifier is a silent no-op.
func (r *FileProductRepository) Update(p models.Product) {
	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = p
			r.save()
			return
		}
	}
}

// Delete removes all records with the given identifier and persists.
// Removing zero records is not an error.
func (r *FileProductRepository) Delete(id int) {
	r.products = slices.DeleteFunc(r.products, func(p models.Product) bool {
		return p.ID == id
	})
	r.save()
}

// Sell reduces the quantity on hand by qty and increases the sold counter
// by the same amount. A sale exceeding the quantity on hand is rejected.
func (r *FileProductRepository) Sell(id, qty int) (models.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			if !r.products[i].Sell(qty) {
				return models.Product{}, ErrInsufficientStock
			}
			r.save()
			return r.products[i], nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Restock adds qty units to the product's quantity on hand.
func (r *FileProductRepository) Restock(id, qty int) (models.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			r.products[i].Restock(qty)
			r.save()
			return r.products[i], nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Search returns products whose name, description, or category contains the
// term, case-insensitively. An empty term returns the full list.
func (r *FileProductRepository) Search(term string) []models.Product {
	if term == "" {
		return r.All()
	}
	term = strings.ToLower(term)

	var matched []models.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			matched = append(matched, p)
		}
	}
	return matched
}

// ByCategory returns products whose category equals the given one,
// case-insensitively. An empty category returns the full list.
func (r *FileProductRepository) ByCategory(category string) []models.Product {
	if category == "" {
		return r.All()
	}

	var matched []models.Product
	for _, p := range r.products {
		if strings.EqualFold(p.Category, category) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Categories returns the sorted distinct non-empty category values.
func (r *FileProductRepository) Categories() []string {
	seen := map[string]struct{}{}
	var categories []string
	for _, p := range r.products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}

// LowStock returns products with quantity on hand at or below threshold.
func (r *FileProductRepository) LowStock(threshold int) []models.Product {
	var low []models.Product
	for _, p := range r.products {
		if p.Quantity <= threshold {
			low = append(low, p)
		}
	}
	return low
}

// TopSelling returns the product with the highest sold counter. Ties keep
// the first-encountered product. An empty repository reports not found.
func (r *FileProductRepository) TopSelling() (models.Product, error) {
	if len(r.products) == 0 {
		return models.Product{}, ErrProductNotFound
	}

	top := r.products[0]
	for _, p := range r.products[1:] {
		if p.Sold > top.Sold {
			top = p
		}
	}
	return top, nil
}

// TotalValue sums price times quantity on hand over all products.
func (r *FileProductRepository) TotalValue() float64 {
	var total float64
	for _, p := range r.products {
		total += p.Value()
	}
	return total
}

// SalesByCategory maps each category to the sum of price times units sold.
// Products without a category are grouped under UncategorizedLabel.
func (r *FileProductRepository) SalesByCategory() map[string]float64 {
	sales := map[string]float64{}
	for _, p := range r.products {
		category := p.Category
		if category == "" {
			category = UncategorizedLabel
		}
		sales[category] += p.Price * float64(p.Sold)
	}
	return sales
}

// BySupplier groups products by supplier identifier, excluding products
// with no supplier assigned.
func (r *FileProductRepository) BySupplier() map[int][]models.Product {
	grouped := map[int][]models.Product{}
	for _, p := range r.products {
		if p.SupplierID == 0 {
			continue
		}
		grouped[p.SupplierID] = append(grouped[p.SupplierID], p)
	}
	return grouped
}

// Backup writes the full collection to an external path in the primary
// store format.
func (r *FileProductRepository) Backup(path string) error {
	return store.Save(path, r.products)
}

// Restore replaces the collection with the one at path, recomputes the next
// identifier, and persists to the primary store.
func (r *FileProductRepository) Restore(path string) error {
	products, err := store.Load[models.Product](path)
	if err != nil {
		return err
	}

	r.products = products
	r.nextID = nextFreeID(products)
	r.save()
	return nil
}
