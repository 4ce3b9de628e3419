package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidSize     = "INVALID_SIZE"
	ErrCodeInvalidPrice    = "INVALID_PRICE"
	ErrCodeInvalidSort     = "INVALID_SORT"
	ErrCodeCartEmpty       = "CART_EMPTY"
	ErrCodeInvalidCreds    = "INVALID_CREDENTIALS"
	ErrCodeEmailTaken      = "EMAIL_TAKEN"
	ErrCodeOrderSubmission = "ORDER_SUBMISSION_FAILED"
	ErrCodeUnauthorised    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidSize        = NewDomainError(ErrCodeInvalidSize, "Size is not available for this product")
	ErrInvalidPrice       = NewDomainError(ErrCodeInvalidPrice, "Price must be greater than zero")
	ErrInvalidSort        = NewDomainError(ErrCodeInvalidSort, "Sort must be one of none, asc or desc")
	ErrCartEmpty          = NewDomainError(ErrCodeCartEmpty, "Cart is empty")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCreds, "Invalid email or password")
	ErrEmailTaken         = NewDomainError(ErrCodeEmailTaken, "An account with this email already exists")
	ErrOrderSubmission    = NewDomainError(ErrCodeOrderSubmission, "There was an issue processing your order")
	ErrUnauthorised       = NewDomainError(ErrCodeUnauthorised, "Login required")
	ErrForbidden          = NewDomainError(ErrCodeForbidden, "Admin access required")
)

// MissingFieldError reports a required request field that was left empty.
func MissingFieldError(field string) *DomainError {
	return NewDomainError(ErrCodeMissingField, field+" is required")
}
