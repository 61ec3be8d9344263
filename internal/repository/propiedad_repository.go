package repository

import (
	"context"
	"time"

	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/model"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/prometheus"

	"gorm.io/gorm"
)

// PropiedadRepository persists properties
type PropiedadRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// List returns all properties ordered by id ascending
func (r *PropiedadRepository) List(ctx context.Context) ([]model.Propiedad, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	defer prometheus.TrackDBOperation("propiedad_list")(time.Now())

	propiedades := make([]model.Propiedad, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&propiedades).Error; err != nil {
		return nil, persistence("listando propiedades", err)
	}
	return propiedades, nil
}

// Create inserts a new property and returns it with the store-assigned id
func (r *PropiedadRepository) Create(ctx context.Context, propiedad *model.Propiedad) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	defer prometheus.TrackDBOperation("propiedad_create")(time.Now())

	if err := r.db.WithContext(ctx).Create(propiedad).Error; err != nil {
		return persistence("creando propiedad", err)
	}
	return nil
}

// Update replaces every field of the property in a single conditional UPDATE
func (r *PropiedadRepository) Update(ctx context.Context, id uint, propiedad *model.Propiedad) (*model.Propiedad, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	defer prometheus.TrackDBOperation("propiedad_update")(time.Now())

	result := r.db.WithContext(ctx).Model(&model.Propiedad{}).Where("id = ?", id).
		Select("address", "price", "available", "photo_url").
		Updates(propiedad)
	if result.Error != nil {
		return nil, persistence("actualizando propiedad", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrPropiedadNotFound
	}

	var updated model.Propiedad
	if err := r.db.WithContext(ctx).First(&updated, id).Error; err != nil {
		return nil, persistence("releyendo propiedad", err)
	}
	return &updated, nil
}

// Delete removes the property. No cascade: payments keep their label snapshot.
func (r *PropiedadRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	defer prometheus.TrackDBOperation("propiedad_delete")(time.Now())

	result := r.db.WithContext(ctx).Delete(&model.Propiedad{}, id)
	if result.Error != nil {
		return persistence("eliminando propiedad", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPropiedadNotFound
	}
	return nil
}
