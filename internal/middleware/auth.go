package middleware

import (
	"net/http"
	"strings"

	"github.com/JoaquinSangiorgio/proyectoInmoweb/pkg/jwtutil"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware validates the JWT token from the Authorization header
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Falta el encabezado Authorization")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token de autorización faltante"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Formato de Authorization inválido")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "se espera un token Bearer"})
		}

		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Warn("Token JWT inválido", zap.Error(err))
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token inválido o expirado"})
		}

		c.Set("operator_email", claims.Email)

		return next(c)
	}
}
