package repository

import (
	"context"
	"time"

	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/model"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/prometheus"

	"gorm.io/gorm"
)

// ClienteRepository persists clients
type ClienteRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// List returns all clients ordered by id ascending
func (r *ClienteRepository) List(ctx context.Context) ([]model.Cliente, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	defer prometheus.TrackDBOperation("cliente_list")(time.Now())

	clientes := make([]model.Cliente, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&clientes).Error; err != nil {
		return nil, persistence("listando clientes", err)
	}
	return clientes, nil
}

// Create inserts a new client and returns it with the store-assigned id
func (r *ClienteRepository) Create(ctx context.Context, cliente *model.Cliente) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	defer prometheus.TrackDBOperation("cliente_create")(time.Now())

	if err := r.db.WithContext(ctx).Create(cliente).Error; err != nil {
		return persistence("creando cliente", err)
	}
	return nil
}

// Update replaces every field of the client in a single conditional UPDATE.
// Not-found is inferred from the affected row count.
func (r *ClienteRepository) Update(ctx context.Context, id uint, cliente *model.Cliente) (*model.Cliente, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	defer prometheus.TrackDBOperation("cliente_update")(time.Now())

	result := r.db.WithContext(ctx).Model(&model.Cliente{}).Where("id = ?", id).
		Select("name", "email", "phone", "properties", "status").
		Updates(cliente)
	if result.Error != nil {
		return nil, persistence("actualizando cliente", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrClienteNotFound
	}

	var updated model.Cliente
	if err := r.db.WithContext(ctx).First(&updated, id).Error; err != nil {
		return nil, persistence("releyendo cliente", err)
	}
	return &updated, nil
}

// Delete removes the client. No cascade: payments keep their label snapshot.
func (r *ClienteRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	defer prometheus.TrackDBOperation("cliente_delete")(time.Now())

	result := r.db.WithContext(ctx).Delete(&model.Cliente{}, id)
	if result.Error != nil {
		return persistence("eliminando cliente", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrClienteNotFound
	}
	return nil
}
