package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El handler HTTP los traduce a código HTTP + categoría de mensaje para la UI.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidQuantity    = errors.New("la cantidad debe ser un entero mayor que cero")
	ErrMissingEndpoint    = errors.New("el movimiento requiere al menos ubicación origen o destino")
	ErrUnknownProduct     = errors.New("producto no encontrado")
	ErrUnknownLocation    = errors.New("ubicación no encontrada")
	ErrDuplicateName      = errors.New("el nombre ya está registrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrHasDependents      = errors.New("no se puede eliminar: tiene movimientos asociados")
	ErrUsernameTaken      = errors.New("el nombre de usuario ya existe")
	ErrInvalidCredentials = errors.New("usuario o contraseña inválidos")
	ErrInvalidInput       = errors.New("entrada inválida")
)
