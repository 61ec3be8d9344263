package handler_test

import (
	"net/http"
	"testing"

	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClienteAndList(t *testing.T) {
	e := newTestEnv(t)

	c, rec := jsonRequest(e, http.MethodPost, "/clientes",
		`{"name": "Juan Pérez", "email": "juan@example.com", "phone": "1144556677", "properties": ["Av. Siempre Viva 123"], "status": "activo"}`)
	require.NoError(t, handler.CreateCliente(c))
	require.Equal(t, http.StatusOK, rec.Code)

	created := decodeBody(t, rec)
	assert.NotZero(t, created["id"])
	assert.Equal(t, "Juan Pérez", created["name"])
	assert.Equal(t, []interface{}{"Av. Siempre Viva 123"}, created["properties"])

	c, rec = jsonRequest(e, http.MethodGet, "/clientes", "")
	require.NoError(t, handler.ListClientes(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeList(t, rec), 1)
}

func TestUpdateClienteNotFoundLeavesStoreUnchanged(t *testing.T) {
	e := newTestEnv(t)

	c, rec := jsonRequest(e, http.MethodPut, "/clientes/999",
		`{"name": "Nadie", "email": "nadie@example.com", "phone": "", "properties": [], "status": "activo"}`)
	c.SetPath("/clientes/:id")
	c.SetParamNames("id")
	c.SetParamValues("999")

	require.NoError(t, handler.UpdateCliente(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cliente no encontrado", decodeBody(t, rec)["error"])

	c, rec = jsonRequest(e, http.MethodGet, "/clientes", "")
	require.NoError(t, handler.ListClientes(c))
	assert.Empty(t, decodeList(t, rec))
}

func TestDeleteClienteNotFound(t *testing.T) {
	e := newTestEnv(t)

	c, rec := jsonRequest(e, http.MethodDelete, "/clientes/999", "")
	c.SetPath("/clientes/:id")
	c.SetParamNames("id")
	c.SetParamValues("999")

	require.NoError(t, handler.DeleteCliente(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cliente no encontrado", decodeBody(t, rec)["error"])
}

func TestUpdateClienteFullReplace(t *testing.T) {
	e := newTestEnv(t)

	c, rec := jsonRequest(e, http.MethodPost, "/clientes",
		`{"name": "Ana Gómez", "email": "ana@example.com", "phone": "1155667788", "properties": [], "status": "activo"}`)
	require.NoError(t, handler.CreateCliente(c))
	id := decodeBody(t, rec)["id"]

	c, rec = jsonRequest(e, http.MethodPut, "/clientes/1",
		`{"name": "Ana G. Gómez", "email": "agg@example.com", "phone": "", "properties": ["Calle Falsa 742"], "status": "moroso"}`)
	c.SetPath("/clientes/:id")
	c.SetParamNames("id")
	c.SetParamValues(jsonNumberString(id))

	require.NoError(t, handler.UpdateCliente(c))
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeBody(t, rec)
	assert.Equal(t, "Ana G. Gómez", updated["name"])
	assert.Equal(t, "agg@example.com", updated["email"])
	assert.Equal(t, "", updated["phone"])
	assert.Equal(t, []interface{}{"Calle Falsa 742"}, updated["properties"])
	assert.Equal(t, "moroso", updated["status"])
}
