// Package csvutil serializes products to and from CSV files with standard
// RFC 4180 quoting.
package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
)

var header = []string{"ID", "Name", "Description", "Price", "Quantity", "Sold"}

// ProductAdder is the insert capability csvutil needs from the product
// repository.
type ProductAdder interface {
	Add(p *models.Product)
}

// Export writes one header line plus one line per product.
func Export(w io.Writer, products []models.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range products {
		record := []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.Description,
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.Sold),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportFile writes the products to a CSV file at path.
func ExportFile(path string, products []models.Product) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Export(f, products); err != nil {
		return err
	}
	return f.Close()
}

// Import reads products from r, skipping the header line, and inserts each
// into the repository. Identifiers are taken literally from the file, so
// they can collide with existing ones. The first malformed numeric field
// aborts the import with a row-numbered error; rows inserted before the
// failure stay inserted.
func Import(r io.Reader, products ProductAdder) ([]models.Product, error) {
	cr := csv.NewReader(r)
	if _, err := cr.Read(); err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	var imported []models.Product
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", row, err)
		}

		p, err := parseRecord(record)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", row, err)
		}

		products.Add(&p)
		imported = append(imported, p)
	}
	return imported, nil
}

// ImportFile reads products from the CSV file at path.
func ImportFile(path string, products ProductAdder) ([]models.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Import(f, products)
}

func parseRecord(record []string) (models.Product, error) {
	if len(record) < len(header) {
		return models.Product{}, fmt.Errorf("expected %d fields, got %d", len(header), len(record))
	}

	id, err := strconv.Atoi(record[0])
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid id %q", record[0])
	}
	price, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid price %q", record[3])
	}
	quantity, err := strconv.Atoi(record[4])
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid quantity %q", record[4])
	}
	sold, err := strconv.Atoi(record[5])
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid sold count %q", record[5])
	}

	return models.Product{
		ID:          id,
		Name:        record[1],
		Description: record[2],
		Price:       price,
		Quantity:    quantity,
		Sold:        sold,
	}, nil
}
