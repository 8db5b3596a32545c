package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrEntityInUse  = errors.New("entidad referenciada por registros de inventario")
	ErrTransient    = errors.New("fallo transitorio de almacenamiento")
)
