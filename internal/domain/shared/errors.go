package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
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
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrAlreadyClosed = NewDomainError("ALREADY_CLOSED", "Invoice is already closed")
	ErrAlreadyLinked = NewDomainError("ALREADY_LINKED", "Customer is already linked to this invoice")
	ErrNotLinked     = NewDomainError("NOT_LINKED", "Customer is not linked to this invoice")
)
