// Package repository implements CRUD over the three entities. Every write is
// a single statement; update and delete are conditional on the id and infer
// not-found from the affected row count, so no separate existence read races
// a concurrent delete.
package repository

import (
	"fmt"
	"time"

	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/apperr"

	"gorm.io/gorm"
)

// Sentinel reference errors, distinguishable by the handlers for
// entity-specific 404 messages.
var (
	ErrClienteNotFound   = fmt.Errorf("cliente: %w", apperr.ErrNotFound)
	ErrPropiedadNotFound = fmt.Errorf("propiedad: %w", apperr.ErrNotFound)
)

// Shared repository instances, wired once at startup.
var (
	Clientes    *ClienteRepository
	Propiedades *PropiedadRepository
	Pagos       *PagoRepository
)

// Init wires the repositories to the database handle. queryTimeout bounds
// every statement, including time spent waiting on the connection pool.
func Init(db *gorm.DB, queryTimeout time.Duration) {
	Clientes = &ClienteRepository{db: db, timeout: queryTimeout}
	Propiedades = &PropiedadRepository{db: db, timeout: queryTimeout}
	Pagos = &PagoRepository{db: db, timeout: queryTimeout}
}

func persistence(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, apperr.ErrPersistence, err)
}
