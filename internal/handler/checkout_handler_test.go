package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/gateway"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/handler"

	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPreferences struct {
	resp *preference.Response
	err  error
}

func (s *stubPreferences) Create(ctx context.Context, request preference.Request) (*preference.Response, error) {
	return s.resp, s.err
}

func initCheckout(stub *stubPreferences) {
	handler.InitCheckoutHandler(gateway.NewCheckoutClient(stub, "ARS", time.Second))
}

func TestCreateCheckoutReturnsSandboxURL(t *testing.T) {
	e := newTestEnv(t)
	initCheckout(&stubPreferences{resp: &preference.Response{SandboxInitPoint: "https://sandbox.mp.example/checkout/1"}})

	c, rec := jsonRequest(e, http.MethodPost, "/checkout",
		`{"amount": 50000, "client_label": "Jane Doe"}`)
	require.NoError(t, handler.CreateCheckout(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://sandbox.mp.example/checkout/1", decodeBody(t, rec)["checkout_url"])
}

func TestCreateCheckoutStringAmount(t *testing.T) {
	e := newTestEnv(t)
	initCheckout(&stubPreferences{resp: &preference.Response{InitPoint: "https://mp.example/checkout/2"}})

	c, rec := jsonRequest(e, http.MethodPost, "/checkout",
		`{"amount": "50000", "client_label": "Jane Doe", "payment_record_id": 7}`)
	require.NoError(t, handler.CreateCheckout(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://mp.example/checkout/2", decodeBody(t, rec)["checkout_url"])
}

func TestCreateCheckoutNonNumericAmountIs500(t *testing.T) {
	e := newTestEnv(t)
	initCheckout(&stubPreferences{resp: &preference.Response{InitPoint: "https://mp.example/checkout/3"}})

	c, rec := jsonRequest(e, http.MethodPost, "/checkout",
		`{"amount": "cincuenta mil", "client_label": "Jane Doe"}`)
	require.NoError(t, handler.CreateCheckout(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error creando checkout", decodeBody(t, rec)["error"])
}

func TestCreateCheckoutGatewayFailureIs500(t *testing.T) {
	e := newTestEnv(t)
	initCheckout(&stubPreferences{err: errors.New("provider unreachable")})

	c, rec := jsonRequest(e, http.MethodPost, "/checkout",
		`{"amount": 50000, "client_label": "Jane Doe"}`)
	require.NoError(t, handler.CreateCheckout(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error creando checkout", decodeBody(t, rec)["error"])
}
