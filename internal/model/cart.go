package model

// CartItem is a product snapshot held in a cart together with the chosen size.
// CartID is a composite of product id, size and creation time; entries are
// merged by (ID, SelectedSize), never by CartID.
type CartItem struct {
	Product
	CartID       string `json:"cartId"`
	SelectedSize int    `json:"selectedSize"`
	Quantity     int    `json:"quantity"`
}

// AddToCartRequest represents the payload for adding a product to the cart.
type AddToCartRequest struct {
	ProductID string `json:"productId"`
	Size      int    `json:"size"`
}

// UpdateQuantityRequest represents the payload for changing an entry's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart as returned to clients.
type CartResponse struct {
	Items []CartItem `json:"items"`
	Count int        `json:"count"`
	Total float64    `json:"total"`
}
