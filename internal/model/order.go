package model

import "time"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// Address is a free-form shipping address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Order represents a customer order as shown in the order history.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	Items           []CartItem  `json:"items"`
	Total           float64     `json:"total"`
	Status          OrderStatus `json:"status"`
	Date            string      `json:"date"`
	ShippingAddress *Address    `json:"shippingAddress,omitempty"`
}

// OrderRecord is the flat row kept by the remote order store.
type OrderRecord struct {
	ID              int64     `json:"id" db:"id"`
	FirstName       string    `json:"firstName" db:"first_name"`
	LastName        string    `json:"lastName" db:"last_name"`
	Email           string    `json:"email" db:"email"`
	Address         string    `json:"address" db:"address"`
	City            string    `json:"city" db:"city"`
	ZipCode         string    `json:"zipCode" db:"zip_code"`
	SelectedProduct string    `json:"selectedProduct" db:"selected_product"`
	TotalAmount     float64   `json:"totalAmount" db:"total_amount"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// CheckoutRequest represents the payload for placing an order.
type CheckoutRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Address   Address `json:"address"`
}

// CheckoutDefaults holds the name fields prefilled from the current user.
type CheckoutDefaults struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Items     int     `json:"items"`
	Total     float64 `json:"total"`
}
