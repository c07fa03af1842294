package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/rogerio-castellano/inventory-manager/internal/auth"
	"github.com/rogerio-castellano/inventory-manager/internal/config"
	"github.com/rogerio-castellano/inventory-manager/internal/csvutil"
	"github.com/rogerio-castellano/inventory-manager/internal/logger"
	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/report"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: inventory [flags] <command> [args]

Commands:
  list                          list all products
  search <term>                 case-insensitive search
  add                           add a product (see add -h)
  sell <id> <qty>               record a sale
  restock <id> <qty>            add stock
  low-stock <threshold>         products at or below threshold
  categories                    distinct categories
  value                         total inventory value
  top-selling                   best selling product
  report <pdf|xlsx> <path>      write an inventory report
  export-csv <path>             export products to CSV
  import-csv <path>             import products from CSV
  backup <path>                 back up the product store
  restore <path>                restore the product store
  suppliers                     list suppliers
  save-supplier                 upsert a supplier (see save-supplier -h)
  delete-supplier <id>          delete a supplier

Flags:`)
	flag.PrintDefaults()
}

func main() {
	username := flag.String("u", auth.DefaultAdminUsername, "username")
	password := flag.String("p", auth.DefaultAdminPassword, "password")
	flag.Usage = usage
	flag.Parse()

	cfg := config.Load()
	log := logger.NewWithDefaults()
	defer log.Sync()

	products := repo.NewFileProductRepository(cfg.ProductsPath(), log)
	suppliers := repo.NewFileSupplierRepository(cfg.SuppliersPath(), log)
	creds := auth.NewCredentialStore(auth.Options{
		StorePath:     cfg.UsersPath(),
		SessionSecret: cfg.Auth.SessionSecret,
		SessionTTL:    cfg.SessionTTL(),
		LoginRate:     rate.Limit(float64(cfg.Auth.LoginPerMin) / 60.0),
		LoginBurst:    cfg.Auth.LoginBurst,
	}, log)

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	session, err := creds.Login(*username, *password)
	if err != nil {
		fatalf("login failed: %v", err)
	}
	defer creds.Logout(session.Token)
	log.Info("logged in", zap.String("user", session.User.Username), zap.String("role", session.User.Role))

	if err := run(args, products, suppliers); err != nil {
		fatalf("%v", err)
	}
}

func run(args []string, products repo.ProductRepository, suppliers repo.SupplierRepository) error {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "list":
		printProducts(products.All())
	case "search":
		if len(rest) < 1 {
			return fmt.Errorf("search: missing term")
		}
		printProducts(products.Search(rest[0]))
	case "add":
		return addProduct(rest, products)
	case "sell":
		id, qty, err := idAndQty("sell", rest)
		if err != nil {
			return err
		}
		p, err := products.Sell(id, qty)
		if err != nil {
			return err
		}
		fmt.Printf("sold %d x %s (on hand: %d, sold: %d)\n", qty, p.Name, p.Quantity, p.Sold)
	case "restock":
		id, qty, err := idAndQty("restock", rest)
		if err != nil {
			return err
		}
		p, err := products.Restock(id, qty)
		if err != nil {
			return err
		}
		fmt.Printf("restocked %d x %s (on hand: %d)\n", qty, p.Name, p.Quantity)
	case "low-stock":
		if len(rest) < 1 {
			return fmt.Errorf("low-stock: missing threshold")
		}
		var threshold int
		if _, err := fmt.Sscanf(rest[0], "%d", &threshold); err != nil {
			return fmt.Errorf("low-stock: invalid threshold %q", rest[0])
		}
		printProducts(products.LowStock(threshold))
	case "categories":
		for _, c := range products.Categories() {
			fmt.Println(c)
		}
	case "value":
		fmt.Println(report.FormatCurrency(products.TotalValue()))
	case "top-selling":
		p, err := products.TopSelling()
		if err != nil {
			return err
		}
		fmt.Printf("%d\t%s\t(sold: %d)\n", p.ID, p.Name, p.Sold)
	case "report":
		if len(rest) < 2 {
			return fmt.Errorf("report: expected <pdf|xlsx> <path>")
		}
		switch rest[0] {
		case "pdf":
			return report.WritePDF(rest[1], products.All())
		case "xlsx":
			return report.WriteExcel(rest[1], products.All())
		default:
			return fmt.Errorf("report: unknown format %q", rest[0])
		}
	case "export-csv":
		if len(rest) < 1 {
			return fmt.Errorf("export-csv: missing path")
		}
		return csvutil.ExportFile(rest[0], products.All())
	case "import-csv":
		if len(rest) < 1 {
			return fmt.Errorf("import-csv: missing path")
		}
		imported, err := csvutil.ImportFile(rest[0], products)
		if err != nil {
			return fmt.Errorf("import aborted after %d rows: %w", len(imported), err)
		}
		fmt.Printf("imported %d products\n", len(imported))
	case "backup":
		if len(rest) < 1 {
			return fmt.Errorf("backup: missing path")
		}
		return products.Backup(rest[0])
	case "restore":
		if len(rest) < 1 {
			return fmt.Errorf("restore: missing path")
		}
		return products.Restore(rest[0])
	case "suppliers":
		for _, s := range suppliers.All() {
			fmt.Printf("%d\t%s\t%s\t%s\n", s.ID, s.Name, s.ContactPerson, s.Email)
		}
	case "save-supplier":
		return saveSupplier(rest, suppliers)
	case "delete-supplier":
		if len(rest) < 1 {
			return fmt.Errorf("delete-supplier: missing id")
		}
		var id int
		if _, err := fmt.Sscanf(rest[0], "%d", &id); err != nil {
			return fmt.Errorf("delete-supplier: invalid id %q", rest[0])
		}
		suppliers.Delete(id)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func addProduct(args []string, products repo.ProductRepository) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	name := fs.String("name", "", "product name (required)")
	description := fs.String("description", "", "product description")
	category := fs.String("category", "", "product category")
	price := fs.Float64("price", 0, "unit price")
	quantity := fs.Int("quantity", 0, "quantity on hand")
	supplierID := fs.Int("supplier", 0, "supplier id (0 = unassigned)")
	fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("add: -name is required")
	}
	if *price < 0 || *quantity < 0 {
		return fmt.Errorf("add: price and quantity must not be negative")
	}

	p := models.Product{
		Name:        *name,
		Description: *description,
		Category:    *category,
		Price:       *price,
		Quantity:    *quantity,
		SupplierID:  *supplierID,
	}
	products.Add(&p)
	fmt.Printf("added product %d: %s\n", p.ID, p.Name)
	return nil
}

func saveSupplier(args []string, suppliers repo.SupplierRepository) error {
	fs := flag.NewFlagSet("save-supplier", flag.ExitOnError)
	id := fs.Int("id", 0, "supplier id (0 inserts a new supplier)")
	name := fs.String("name", "", "supplier name (required)")
	contact := fs.String("contact", "", "contact person")
	email := fs.String("email", "", "email address")
	phone := fs.String("phone", "", "phone number")
	address := fs.String("address", "", "postal address")
	fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("save-supplier: -name is required")
	}

	s := models.Supplier{
		ID:            *id,
		Name:          *name,
		ContactPerson: *contact,
		Email:         *email,
		Phone:         *phone,
		Address:       *address,
	}
	suppliers.Save(&s)
	fmt.Printf("saved supplier %d: %s\n", s.ID, s.Name)
	return nil
}

func idAndQty(cmd string, args []string) (int, int, error) {
	if len(args) < 2 {
		return 0, 0, fmt.Errorf("%s: expected <id> <qty>", cmd)
	}
	var id, qty int
	if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
		return 0, 0, fmt.Errorf("%s: invalid id %q", cmd, args[0])
	}
	if _, err := fmt.Sscanf(args[1], "%d", &qty); err != nil {
		return 0, 0, fmt.Errorf("%s: invalid quantity %q", cmd, args[1])
	}
	if qty <= 0 {
		return 0, 0, fmt.Errorf("%s: quantity must be positive, got %d", cmd, qty)
	}
	return id, qty, nil
}

func printProducts(products []models.Product) {
	fmt.Println("ID\tName\tCategory\tPrice\tQty\tSold")
	for _, p := range products {
		category := p.Category
		if category == "" {
			category = repo.UncategorizedLabel
		}
		fmt.Printf("%d\t%s\t%s\t%s\t%d\t%d\n",
			p.ID, p.Name, category, report.FormatCurrency(p.Price), p.Quantity, p.Sold)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
