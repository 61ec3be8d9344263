package handler

import (
	"net/http"

	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/gateway"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var checkoutClient *gateway.CheckoutClient

// InitCheckoutHandler wires the payment gateway adapter
func InitCheckoutHandler(client *gateway.CheckoutClient) {
	checkoutClient = client
}

// CheckoutRequest defines the structure for checkout creation requests.
// Amount and PaymentRecordID are left untyped so the adapter can coerce
// either JSON numbers or strings, as the UI sends both.
type CheckoutRequest struct {
	Title           string      `json:"title"`
	Amount          interface{} `json:"amount"`
	ClientLabel     string      `json:"client_label"`
	PaymentRecordID interface{} `json:"payment_record_id"`
}

// CreateCheckout handles minting a payable checkout reference. Gateway and
// validation failures both collapse to a generic 500; the detail stays in
// the server log.
func CreateCheckout(c echo.Context) error {
	log := logger.FromContext(c)

	if checkoutClient == nil {
		log.Error("MercadoPago no configurado")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error creando checkout"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Error parseando checkout", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error creando checkout"})
	}

	url, err := checkoutClient.CreateCheckout(c.Request().Context(), gateway.CheckoutRequest{
		Title:           req.Title,
		Amount:          req.Amount,
		ClientLabel:     req.ClientLabel,
		PaymentRecordID: req.PaymentRecordID,
	})
	if err != nil {
		log.Error("Error creando checkout",
			zap.String("client_label", req.ClientLabel),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error creando checkout"})
	}

	log.Info("Checkout creado", zap.String("client_label", req.ClientLabel))
	return c.JSON(http.StatusOK, echo.Map{"checkout_url": url})
}
