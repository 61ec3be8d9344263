package repository

import (
	"context"
	"time"

	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/model"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/prometheus"

	"gorm.io/gorm"
)

// PagoRepository persists payment obligations. Payments are created and
// listed only; status transitions belong to a future operator endpoint.
type PagoRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// List returns all payments ordered by id ascending
func (r *PagoRepository) List(ctx context.Context) ([]model.Pago, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	defer prometheus.TrackDBOperation("pago_list")(time.Now())

	pagos := make([]model.Pago, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&pagos).Error; err != nil {
		return nil, persistence("listando pagos", err)
	}
	return pagos, nil
}

// Create inserts a new payment after verifying that the referenced client
// name and property address exist. The labels are stored as snapshots, not
// foreign keys, so this check is the only integrity the store provides.
func (r *PagoRepository) Create(ctx context.Context, pago *model.Pago) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	defer prometheus.TrackDBOperation("pago_create")(time.Now())

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("name = ?", pago.ClientRef).Count(&count).Error; err != nil {
		return persistence("verificando cliente", err)
	}
	if count == 0 {
		return ErrClienteNotFound
	}

	if err := r.db.WithContext(ctx).Model(&model.Propiedad{}).
		Where("address = ?", pago.PropertyRef).Count(&count).Error; err != nil {
		return persistence("verificando propiedad", err)
	}
	if count == 0 {
		return ErrPropiedadNotFound
	}

	if pago.Status == "" {
		pago.Status = model.PagoPendiente
	}

	if err := r.db.WithContext(ctx).Create(pago).Error; err != nil {
		return persistence("creando pago", err)
	}
	return nil
}
