package handler

import (
	"errors"
	"net/http"

	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/model"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/repository"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/pkg/logger"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PagoRequest defines the structure for payment creation requests. The
// client and property references are display labels, snapshotted on insert.
type PagoRequest struct {
	ClientRef   string  `json:"client_ref"`
	PropertyRef string  `json:"property_ref"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	DueDate     string  `json:"due_date"`
	PaidDate    *string `json:"paid_date"`
}

// ListPagos handles retrieving all payments
func ListPagos(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("pago", "list")

	pagos, err := repository.Pagos.List(c.Request().Context())
	if err != nil {
		log.Error("Error obteniendo pagos", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener pagos"})
	}

	return c.JSON(http.StatusOK, pagos)
}

// CreatePago handles creating a new payment obligation
func CreatePago(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("pago", "create")

	var req PagoRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Error parseando pago", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error creando pago"})
	}

	pago := model.Pago{
		ClientRef:   req.ClientRef,
		PropertyRef: req.PropertyRef,
		Amount:      req.Amount,
		Status:      req.Status,
		DueDate:     req.DueDate,
		PaidDate:    req.PaidDate,
	}

	if err := repository.Pagos.Create(c.Request().Context(), &pago); err != nil {
		switch {
		case errors.Is(err, repository.ErrClienteNotFound):
			log.Warn("Cliente referenciado no existe", zap.String("client_ref", req.ClientRef))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Cliente no encontrado"})
		case errors.Is(err, repository.ErrPropiedadNotFound):
			log.Warn("Propiedad referenciada no existe", zap.String("property_ref", req.PropertyRef))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Propiedad no encontrada"})
		}
		log.Error("Error creando pago", zap.String("client_ref", req.ClientRef), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error creando pago"})
	}

	log.Info("Pago creado",
		zap.Uint("id", pago.ID),
		zap.String("client_ref", pago.ClientRef),
		zap.Float64("amount", pago.Amount),
		zap.String("status", pago.Status))
	return c.JSON(http.StatusOK, pago)
}
