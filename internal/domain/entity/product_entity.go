package entity

import "time"

// Product is a catalog item. ImageURL is nil when no image was uploaded;
// otherwise it is the path under which the image is servable.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
