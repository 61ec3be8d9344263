package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/model"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/repository"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/pkg/logger"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PropiedadRequest defines the structure for property creation/update
// requests. Price is stored verbatim, no currency validation occurs.
type PropiedadRequest struct {
	Address   string  `json:"address"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
	PhotoURL  *string `json:"photo_url"`
}

// ListPropiedades handles retrieving all properties
func ListPropiedades(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("propiedad", "list")

	propiedades, err := repository.Propiedades.List(c.Request().Context())
	if err != nil {
		log.Error("Error obteniendo propiedades", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener propiedades"})
	}

	return c.JSON(http.StatusOK, propiedades)
}

// CreatePropiedad handles creating a new property
func CreatePropiedad(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("propiedad", "create")

	var req PropiedadRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Error parseando propiedad", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error creando propiedad"})
	}

	propiedad := model.Propiedad{
		Address:   req.Address,
		Price:     req.Price,
		Available: req.Available,
		PhotoURL:  req.PhotoURL,
	}

	if err := repository.Propiedades.Create(c.Request().Context(), &propiedad); err != nil {
		log.Error("Error creando propiedad", zap.String("address", req.Address), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error creando propiedad"})
	}

	log.Info("Propiedad creada", zap.Uint("id", propiedad.ID), zap.String("address", propiedad.Address))
	return c.JSON(http.StatusOK, propiedad)
}

// UpdatePropiedad handles replacing every field of an existing property
func UpdatePropiedad(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("propiedad", "update")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("ID de propiedad inválido", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Propiedad no encontrada"})
	}

	var req PropiedadRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Error parseando propiedad", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error actualizando propiedad"})
	}

	propiedad := model.Propiedad{
		Address:   req.Address,
		Price:     req.Price,
		Available: req.Available,
		PhotoURL:  req.PhotoURL,
	}

	updated, err := repository.Propiedades.Update(c.Request().Context(), uint(id), &propiedad)
	if err != nil {
		if errors.Is(err, repository.ErrPropiedadNotFound) {
			log.Warn("Propiedad no encontrada", zap.Uint64("id", id))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Propiedad no encontrada"})
		}
		log.Error("Error actualizando propiedad", zap.Uint64("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error actualizando propiedad"})
	}

	log.Info("Propiedad actualizada", zap.Uint("id", updated.ID))
	return c.JSON(http.StatusOK, updated)
}

// DeletePropiedad handles removing a property
func DeletePropiedad(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("propiedad", "delete")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("ID de propiedad inválido", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Propiedad no encontrada"})
	}

	if err := repository.Propiedades.Delete(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, repository.ErrPropiedadNotFound) {
			log.Warn("Propiedad no encontrada", zap.Uint64("id", id))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Propiedad no encontrada"})
		}
		log.Error("Error eliminando propiedad", zap.Uint64("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error eliminando propiedad"})
	}

	log.Info("Propiedad eliminada", zap.Uint64("id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Propiedad eliminada correctamente"})
}
