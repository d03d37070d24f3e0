// Package storage define el contrato de error compartido por los adaptadores
// de persistencia (memory, postgres).
package storage

import "errors"

// ErrNotFound lo devuelven los repositorios cuando el registro no existe.
// Los servicios lo traducen a su propio ErrNotFound; cualquier otro error
// es una falla del almacén.
var ErrNotFound = errors.New("not found")
