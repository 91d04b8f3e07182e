package domain

import "time"

// Product represents a sellable item scraped from an external page or entered
// by hand. ImageUrl doubles as the product's canonical external identity for
// duplicate suppression.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	Currency       string            `json:"currency"`
	ImageUrl       string            `json:"imageUrl"`
	Category       string            `json:"category"`
	Brand          string            `json:"brand"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	CreatedAt      time.Time         `json:"created_at"`
}
