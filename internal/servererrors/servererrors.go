package servererrors

import "errors"

// Messages double as the client-facing contract, so they stay in the
// storefront's language.
var (
	ErrInvalidRequestBody  = errors.New("Cuerpo de solicitud JSON inválido.")
	ErrMethodNotAllowed    = errors.New("Método no permitido.")
	ErrVendorNotFound      = errors.New("Vendedor no encontrado.")
	ErrVendorAlreadyExists = errors.New("Ya existe un vendedor registrado con ese documento.")
	ErrVendorMissing       = errors.New("El vendedor especificado no existe.")
	ErrInvalidVendorParam  = errors.New("El parámetro vendedor_id es obligatorio y debe ser numérico.")
	ErrInvalidSession      = errors.New("Sesión inválida.")
	ErrInternalDB          = errors.New("Error interno de base de datos.")
)

// ServerError is an error that carries the HTTP status it should be surfaced
// with, plus any extra payload fields documented for that status (e.g. the
// conflicting vendor record on a 409). The wrapped cause, if any, is for
// server-side logs only and never reaches the response body.
type ServerError struct {
	StatusCode int
	message    string
	Extra      map[string]any
	cause      error
}

func New(statusCode int, message string, extra map[string]any) *ServerError {
	return &ServerError{
		StatusCode: statusCode,
		message:    message,
		Extra:      extra,
	}
}

// Wrap attaches an internal cause to a ServerError so the error middleware
// can log it without leaking it to the client.
func Wrap(statusCode int, message string, cause error) *ServerError {
	return &ServerError{
		StatusCode: statusCode,
		message:    message,
		cause:      cause,
	}
}

func (e *ServerError) Error() string {
	return e.message
}

func (e *ServerError) Unwrap() error {
	return e.cause
}
