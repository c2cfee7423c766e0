package structs

import "time"

// Variant belongs to exactly one product by reference. Deleting the product
// sweeps its variants; orders keep a denormalized copy of the variant name
// and image, so deleting a variant never touches past orders.
type Variant struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	NameFr    string    `json:"nameFr"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateVariantRequest struct {
	ProductID string `json:"productId" validate:"required,notblank"`
	Name      string `json:"name" validate:"required,notblank"`
	NameFr    string `json:"nameFr" validate:"required,notblank"`
	ImageURL  string `json:"imageUrl" validate:"required,notblank"`
}

type UpdateVariantRequest struct {
	Name     *string `json:"name"`
	NameFr   *string `json:"nameFr"`
	ImageURL *string `json:"imageUrl"`
}
