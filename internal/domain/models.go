// Package domain defines the example "item" resource exposed by the starter
// template. Replace these types with your own domain models when building on
// top of the template.
package domain

import "time"

// Item is the complete item resource as returned by the API and rendered in
// HTML partials.
//
// Fields:
//   - ID: auto-incrementing identifier assigned by the repository.
//   - Name: display name (1–100 chars).
//   - Description: optional free text (max 500 chars).
//   - Price: strictly positive price.
//   - CreatedAt / UpdatedAt: timestamps managed by the service layer.
type Item struct {
	ID          int       `json:"id" example:"1"`
	Name        string    `json:"name" example:"Example Item"`
	Description string    `json:"description,omitempty" example:"This is an example item"`
	Price       float64   `json:"price" example:"19.99"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateItemRequest is the JSON payload for creating an item. Validation
// beyond structural binding (length and range checks) happens in the service
// layer so that HTMX form submissions share the same rules.
type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required" example:"Example Item"`
	Description string  `json:"description" example:"This is an example item"`
	Price       float64 `json:"price" binding:"required" example:"19.99"`
}

// UpdateItemRequest is the JSON payload for updating an item. All fields are
// optional; only set fields are applied.
type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty" example:"Renamed Item"`
	Description *string  `json:"description,omitempty" example:"Updated description"`
	Price       *float64 `json:"price,omitempty" example:"24.99"`
}
