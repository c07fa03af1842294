package models

// Supplier represents a supplier entity. An ID of 0 means the supplier has
// not been saved yet.
type Supplier struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}
