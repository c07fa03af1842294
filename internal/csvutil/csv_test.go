package csvutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
)

type recordingAdder struct {
	added []models.Product
}

func (a *recordingAdder) Add(p *models.Product) {
	a.added = append(a.added, *p)
}

func TestExportImportRoundTrip(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "widget-200", Description: "small widget", Price: 10, Quantity: 3, Sold: 7},
		{ID: 2, Name: "comma, inc", Description: "says \"hi\"", Price: 2.5, Quantity: 4, Sold: 0},
		{ID: 3, Name: "multi\nline", Description: "", Price: 0.99, Quantity: 0, Sold: 12},
	}

	var buf bytes.Buffer
	if err := Export(&buf, products); err != nil {
		t.Fatalf("Export: %v", err)
	}

	adder := &recordingAdder{}
	imported, err := Import(&buf, adder)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if len(imported) != len(products) {
		t.Fatalf("imported %d products, want %d", len(imported), len(products))
	}
	for i, want := range products {
		if imported[i] != want {
			t.Errorf("product %d = %+v, want %+v", i, imported[i], want)
		}
	}
	if len(adder.added) != len(products) {
		t.Errorf("repository received %d products, want %d", len(adder.added), len(products))
	}
}

func TestExportQuoting(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "a,b", Description: `say "what"`, Price: 1, Quantity: 1},
	}

	var buf bytes.Buffer
	if err := Export(&buf, products); err != nil {
		t.Fatalf("Export: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"a,b"`) {
		t.Errorf("comma field not quoted: %q", out)
	}
	if !strings.Contains(out, `"say ""what"""`) {
		t.Errorf("quote field not doubled: %q", out)
	}
}

func TestImportSkipsHeader(t *testing.T) {
	input := "ID,Name,Description,Price,Quantity,Sold\n5,Thing,desc,9.99,2,1\n"

	adder := &recordingAdder{}
	imported, err := Import(strings.NewReader(input), adder)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if len(imported) != 1 {
		t.Fatalf("imported %d products, want 1", len(imported))
	}
	if imported[0].ID != 5 {
		t.Errorf("identifier = %d, want the literal 5 from the file", imported[0].ID)
	}
	if imported[0].Price != 9.99 {
		t.Errorf("price = %v, want 9.99", imported[0].Price)
	}
}

func TestImportMalformedNumericAborts(t *testing.T) {
	input := "ID,Name,Description,Price,Quantity,Sold\n" +
		"1,Good,first,1.5,2,0\n" +
		"2,Bad,second,not-a-price,1,0\n" +
		"3,Never,third,3.0,1,0\n"

	adder := &recordingAdder{}
	imported, err := Import(strings.NewReader(input), adder)
	if err == nil {
		t.Fatal("expected error for malformed price")
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("error %q does not name the failing row", err)
	}

	// Rows processed before the failure stay inserted.
	if len(imported) != 1 || len(adder.added) != 1 {
		t.Fatalf("imported %d / added %d, want 1 / 1", len(imported), len(adder.added))
	}
	if adder.added[0].Name != "Good" {
		t.Errorf("kept product = %q, want %q", adder.added[0].Name, "Good")
	}
}

func TestImportShortRowsAbort(t *testing.T) {
	// A short header makes encoding/csv accept equally short data rows, so
	// the field count has to be checked before parsing.
	input := "ID,Name,Description\n1,Thing,desc\n"

	adder := &recordingAdder{}
	imported, err := Import(strings.NewReader(input), adder)
	if err == nil {
		t.Fatal("expected error for row with missing fields")
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Errorf("error %q does not name the failing row", err)
	}
	if !strings.Contains(err.Error(), "fields") {
		t.Errorf("error %q does not describe the missing fields", err)
	}
	if len(imported) != 0 || len(adder.added) != 0 {
		t.Errorf("imported %d / added %d, want 0 / 0", len(imported), len(adder.added))
	}
}

func TestImportEmptyFile(t *testing.T) {
	if _, err := Import(strings.NewReader(""), &recordingAdder{}); err == nil {
		t.Fatal("expected error for missing header")
	}
}
