// Package gateway brokers checkout creation against MercadoPago, translating
// between payment records and the provider's preference object.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/apperr"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/pkg/config"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/pkg/logger"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/prometheus"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

// landingPageURL is the last resort when the provider answers without any
// checkout URL. Reaching it signals provider response drift and is logged
// and counted.
const landingPageURL = "https://www.mercadopago.com.ar"

// fallbackItemID is used when the caller supplies no payment record id
const fallbackItemID = "1"

// PreferenceCreator is the slice of the MercadoPago preference client the
// adapter needs. preference.Client satisfies it.
type PreferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// CheckoutRequest carries the caller-supplied checkout fields. Amount and
// PaymentRecordID come straight from the JSON payload and may be numbers or
// strings; the adapter coerces them.
type CheckoutRequest struct {
	Title           string
	Amount          interface{}
	ClientLabel     string
	PaymentRecordID interface{}
}

// CheckoutClient creates checkout references through MercadoPago
type CheckoutClient struct {
	prefs    PreferenceCreator
	currency string
	timeout  time.Duration
}

// NewCheckoutClient builds an adapter over the given preference creator
func NewCheckoutClient(prefs PreferenceCreator, currency string, timeout time.Duration) *CheckoutClient {
	return &CheckoutClient{prefs: prefs, currency: currency, timeout: timeout}
}

// NewFromConfig builds the adapter with the real MercadoPago client
func NewFromConfig(cfg *config.Config) (*CheckoutClient, error) {
	mpCfg, err := mpconfig.New(cfg.MercadoPago.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("configurando mercadopago: %w", err)
	}
	return NewCheckoutClient(preference.NewClient(mpCfg), cfg.MercadoPago.Currency, cfg.MercadoPago.Timeout), nil
}

// CreateCheckout builds a single line-item preference and returns a checkout
// URL. The provider's init_point is preferred, then its sandbox variant,
// then the landing page constant, so the caller always gets a usable URL.
func (c *CheckoutClient) CreateCheckout(ctx context.Context, req CheckoutRequest) (string, error) {
	amount, err := coerceAmount(req.Amount)
	if err != nil {
		return "", err
	}

	if c.prefs == nil {
		return "", fmt.Errorf("mercadopago no configurado: %w", apperr.ErrGateway)
	}

	itemID := coerceLabel(req.PaymentRecordID)
	if itemID == "" {
		itemID = fallbackItemID
	}

	title := req.Title
	if title == "" {
		title = "Pago de " + req.ClientLabel
	}

	prefReq := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         itemID,
				Title:      title,
				Quantity:   1,
				UnitPrice:  amount,
				CurrencyID: c.currency,
			},
		},
		Payer:    &preference.PayerRequest{Name: req.ClientLabel},
		Metadata: map[string]any{"id_pago": itemID},
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.prefs.Create(ctx, prefReq)
	if err != nil {
		prometheus.RecordCheckout("error")
		return "", fmt.Errorf("creando preferencia: %w: %v", apperr.ErrGateway, err)
	}

	url := resp.InitPoint
	if url == "" {
		url = resp.SandboxInitPoint
	}
	if url == "" {
		url = landingPageURL
		prometheus.RecordCheckoutFallback()
		logger.GetLogger().Warn("Respuesta de MercadoPago sin init_point, usando URL de respaldo",
			zap.String("preference_id", resp.ID))
	}

	prometheus.RecordCheckout("ok")
	return url, nil
}

// coerceAmount accepts the numeric shapes a JSON payload can carry
func coerceAmount(v interface{}) (float64, error) {
	var (
		amount float64
		err    error
	)

	switch n := v.(type) {
	case float64:
		amount = n
	case float32:
		amount = float64(n)
	case int:
		amount = float64(n)
	case int64:
		amount = float64(n)
	case json.Number:
		amount, err = n.Float64()
	case string:
		amount, err = strconv.ParseFloat(n, 64)
	default:
		err = fmt.Errorf("tipo %T", v)
	}

	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("monto no numérico (%v): %w", v, apperr.ErrValidation)
	}
	return amount, nil
}

// coerceLabel renders a JSON number or string id as text
func coerceLabel(v interface{}) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return fmt.Sprint(id)
	}
}
