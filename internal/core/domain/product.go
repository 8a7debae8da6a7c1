package domain

import "time"

// Product is a catalog entry. Ref is the business key chosen by the admin who
// creates the product and is unique across the catalog.
type Product struct {
	ID        string    `json:"id"`
	Ref       string    `json:"ref"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
