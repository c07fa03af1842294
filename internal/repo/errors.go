package repo

import "errors"

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrSupplierNotFound is returned when a supplier is not found in the repository.
var ErrSupplierNotFound = errors.New("supplier not found")

// ErrInsufficientStock is returned when a sale would drive the quantity on
// hand below zero.
var ErrInsufficientStock = errors.New("insufficient stock for sale")
