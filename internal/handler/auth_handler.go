package handler

import (
	"net/http"

	"github.com/JoaquinSangiorgio/proyectoInmoweb/pkg/config"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/pkg/jwtutil"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/pkg/logger"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var authConfig config.AuthConfig

// InitAuthHandler wires the operator credential
func InitAuthHandler(cfg *config.Config) {
	authConfig = cfg.Auth
}

// Login authenticates the back-office operator against the configured
// credential and issues a session token
func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordLoginAttempt()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Error parseando login", zap.Error(err))
		prometheus.RecordLoginError()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "solicitud inválida"})
	}

	if req.Email != authConfig.AdminEmail {
		log.Warn("Login con email desconocido", zap.String("email", req.Email))
		prometheus.RecordLoginError()
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "credenciales inválidas"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(authConfig.AdminPasswordHash), []byte(req.Password)); err != nil {
		log.Warn("Login con contraseña incorrecta", zap.String("email", req.Email))
		prometheus.RecordLoginError()
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "credenciales inválidas"})
	}

	token, err := jwtutil.GenerateToken(req.Email)
	if err != nil {
		log.Error("Error generando token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error de token"})
	}

	log.Info("Operador autenticado", zap.String("email", req.Email))
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
