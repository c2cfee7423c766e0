package structs

import "time"

// Product is the single sellable item of the storefront. Names are bilingual
// (Arabic default, French secondary); the store-assigned ID is opaque.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NameFr    string    `json:"nameFr"`
	Price     float64   `json:"price"`
	MainImage string    `json:"mainImage"`
	InStock   bool      `json:"inStock"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateProductRequest accepts price as a JSON number or numeric string,
// matching what the dashboard submits.
type CreateProductRequest struct {
	Name      string     `json:"name" validate:"required,notblank"`
	NameFr    string     `json:"nameFr" validate:"required,notblank"`
	Price     JSONNumber `json:"price"`
	MainImage string     `json:"mainImage"`
	InStock   *bool      `json:"inStock"`
}

type UpdateProductRequest struct {
	Name      *string     `json:"name"`
	NameFr    *string     `json:"nameFr"`
	Price     *JSONNumber `json:"price"`
	MainImage *string     `json:"mainImage"`
	InStock   *bool       `json:"inStock"`
}
