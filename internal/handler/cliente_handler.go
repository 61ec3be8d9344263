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

// ClienteRequest defines the structure for client creation/update requests.
// Fields are passed through to the store without validation.
type ClienteRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Properties []string `json:"properties"`
	Status     string   `json:"status"`
}

// ListClientes handles retrieving all clients
func ListClientes(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("cliente", "list")

	clientes, err := repository.Clientes.List(c.Request().Context())
	if err != nil {
		log.Error("Error obteniendo clientes", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener clientes"})
	}

	return c.JSON(http.StatusOK, clientes)
}

// CreateCliente handles creating a new client
func CreateCliente(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("cliente", "create")

	var req ClienteRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Error parseando cliente", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error creando cliente"})
	}

	cliente := model.Cliente{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Properties: req.Properties,
		Status:     req.Status,
	}

	if err := repository.Clientes.Create(c.Request().Context(), &cliente); err != nil {
		log.Error("Error creando cliente", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error creando cliente"})
	}

	log.Info("Cliente creado", zap.Uint("id", cliente.ID), zap.String("name", cliente.Name))
	return c.JSON(http.StatusOK, cliente)
}

// UpdateCliente handles replacing every field of an existing client
func UpdateCliente(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("cliente", "update")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("ID de cliente inválido", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Cliente no encontrado"})
	}

	var req ClienteRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Error parseando cliente", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error actualizando cliente"})
	}

	cliente := model.Cliente{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Properties: req.Properties,
		Status:     req.Status,
	}

	updated, err := repository.Clientes.Update(c.Request().Context(), uint(id), &cliente)
	if err != nil {
		if errors.Is(err, repository.ErrClienteNotFound) {
			log.Warn("Cliente no encontrado", zap.Uint64("id", id))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Cliente no encontrado"})
		}
		log.Error("Error actualizando cliente", zap.Uint64("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error actualizando cliente"})
	}

	log.Info("Cliente actualizado", zap.Uint("id", updated.ID))
	return c.JSON(http.StatusOK, updated)
}

// DeleteCliente handles removing a client
func DeleteCliente(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("cliente", "delete")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("ID de cliente inválido", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Cliente no encontrado"})
	}

	if err := repository.Clientes.Delete(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, repository.ErrClienteNotFound) {
			log.Warn("Cliente no encontrado", zap.Uint64("id", id))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Cliente no encontrado"})
		}
		log.Error("Error eliminando cliente", zap.Uint64("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error eliminando cliente"})
	}

	log.Info("Cliente eliminado", zap.Uint64("id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Cliente eliminado correctamente"})
}
