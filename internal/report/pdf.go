package report

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
)

// WritePDF renders an inventory report to a PDF file at path.
func WritePDF(path string, products []models.Product) error {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Inventory Report", props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, "Generated on: "+time.Now().Format("2006-01-02 15:04:05"), props.Text{
			Size:  10,
			Align: align.Center,
		}),
	)

	m.AddRow(8,
		text.NewCol(1, "ID", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Name", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(4, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "Price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(1, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Value", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, p := range products {
		m.AddRow(7,
			text.NewCol(1, fmt.Sprintf("%d", p.ID), props.Text{Size: 9}),
			text.NewCol(3, p.Name, props.Text{Size: 9}),
			text.NewCol(4, p.Description, props.Text{Size: 9}),
			text.NewCol(1, FormatCurrency(p.Price), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(1, fmt.Sprintf("%d", p.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, FormatCurrency(p.Value()), props.Text{Size: 9, Align: align.Right}),
		)
	}

	s := Summarize(products)
	m.AddRow(10,
		text.NewCol(12, fmt.Sprintf("Total Products: %d", s.TotalProducts), props.Text{Size: 10, Top: 3}),
	)
	m.AddRow(7,
		text.NewCol(12, fmt.Sprintf("Total Quantity: %d", s.TotalQuantity), props.Text{Size: 10}),
	)
	m.AddRow(7,
		text.NewCol(12, "Total Inventory Value: "+FormatCurrency(s.TotalValue), props.Text{Size: 10, Style: fontstyle.Bold}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF report: %w", err)
	}
	if err := doc.Save(path); err != nil {
		return fmt.Errorf("saving PDF report: %w", err)
	}
	return nil
}
