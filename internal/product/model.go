package product

import "time"

type Product struct {
	ID          string
	StoreID     string
	Name        string
	Description string
	MRP         float64
	Price       float64
	MainImage   string
	Images      []string
	InStock     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Image fields carry blob URLs returned by the upload endpoint; the
// binary never passes through this package.
type CreateInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	MRP         float64  `json:"mrp"`
	Price       float64  `json:"price"`
	MainImage   string   `json:"main_image"`
	Images      []string `json:"images"`
}

type UpdateInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	MRP         float64  `json:"mrp"`
	Price       float64  `json:"price"`
	MainImage   string   `json:"main_image"`
	Images      []string `json:"images"`
}
