package model

// Product represents an item in the storefront catalogue.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
	Sizes         []int    `json:"sizes"`
	Category      string   `json:"category"`
	Stock         int      `json:"stock"`
	Featured      bool     `json:"featured,omitempty"`
}

// HasSize reports whether the product is offered in the given size.
func (p Product) HasSize(size int) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// ProductRequest is the admin payload for creating or replacing a product.
type ProductRequest struct {
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
	Sizes         []int    `json:"sizes"`
	Category      string   `json:"category"`
	Stock         *int     `json:"stock,omitempty"`
	Featured      bool     `json:"featured"`
}

// DescriptionRequest asks the stylist to write a product description.
type DescriptionRequest struct {
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Keywords string `json:"keywords"`
}

// DescriptionResponse carries a generated product description.
type DescriptionResponse struct {
	Description string `json:"description"`
}
