package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Las fallas de infraestructura NO usan estos valores: se envuelven con %w y se propagan tal cual.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
