package repository_test

import (
	"context"
	"testing"

	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/apperr"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/model"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropiedadCreateAndList(t *testing.T) {
	newTestDB(t)
	ctx := context.Background()

	propiedad := model.Propiedad{Address: "Av. Siempre Viva 123", Price: 150000, Available: true}
	require.NoError(t, repository.Propiedades.Create(ctx, &propiedad))
	require.NotZero(t, propiedad.ID)

	propiedades, err := repository.Propiedades.List(ctx)
	require.NoError(t, err)
	require.Len(t, propiedades, 1)
	assert.Equal(t, "Av. Siempre Viva 123", propiedades[0].Address)
	assert.Equal(t, 150000.0, propiedades[0].Price)
	assert.True(t, propiedades[0].Available)
	assert.Nil(t, propiedades[0].PhotoURL)
}

func TestPropiedadUpdateReplacesAllFields(t *testing.T) {
	newTestDB(t)
	ctx := context.Background()

	photo := "https://example.com/frente.jpg"
	propiedad := model.Propiedad{Address: "Calle Falsa 742", Price: 98000, Available: true, PhotoURL: &photo}
	require.NoError(t, repository.Propiedades.Create(ctx, &propiedad))

	// Renting the property: availability flips, photo is cleared
	updated, err := repository.Propiedades.Update(ctx, propiedad.ID, &model.Propiedad{
		Address:   "Calle Falsa 742",
		Price:     105000,
		Available: false,
	})
	require.NoError(t, err)
	assert.Equal(t, 105000.0, updated.Price)
	assert.False(t, updated.Available)
	assert.Nil(t, updated.PhotoURL)
}

func TestPropiedadUpdateNotFound(t *testing.T) {
	newTestDB(t)

	_, err := repository.Propiedades.Update(context.Background(), 999, &model.Propiedad{Address: "Ninguna"})
	require.ErrorIs(t, err, repository.ErrPropiedadNotFound)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPropiedadDeleteNotFound(t *testing.T) {
	newTestDB(t)

	err := repository.Propiedades.Delete(context.Background(), 999)
	require.ErrorIs(t, err, repository.ErrPropiedadNotFound)
}
