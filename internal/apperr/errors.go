// Package apperr defines the error taxonomy shared by repositories, the
// payment gateway adapter and the HTTP handlers.
package apperr

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// New creates a new domain error
func New(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors. Handlers map ErrNotFound to 404; everything else
// collapses to a generic 500 with the cause logged server-side.
var (
	ErrNotFound    = New("NOT_FOUND", "recurso no encontrado")
	ErrValidation  = New("VALIDATION", "entrada inválida")
	ErrPersistence = New("PERSISTENCE", "error de almacenamiento")
	ErrGateway     = New("GATEWAY", "error del proveedor de pagos")
)
