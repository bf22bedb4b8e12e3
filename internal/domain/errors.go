package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Distinguen "no existe" (ErrNotFound) de fallos de validación
// (ErrInvalidInput, ErrInsufficientStock) y de fallos del medio de
// almacenamiento (ErrStorage); los handlers los traducen a códigos HTTP.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStorage           = errors.New("fallo del almacenamiento local")
)
