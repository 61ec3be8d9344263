package main

import (
	"net/http"

	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/gateway"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/handler"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/middleware"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/repository"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/pkg/config"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/pkg/database"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/pkg/jwtutil"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/pkg/logger"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting inmoweb service...", zap.String("environment", cfg.Server.Env))

	// Initialize database (includes migrations)
	if err := database.InitDB(cfg); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established and migrations completed")

	// Wire repositories to the shared pool
	repository.Init(database.GetDB(), cfg.Database.QueryTimeout)

	// Initialize JWT utility and the operator credential
	jwtutil.Init(cfg)
	handler.InitAuthHandler(cfg)

	// Initialize the payment gateway adapter
	checkout, err := gateway.NewFromConfig(cfg)
	if err != nil {
		log.Warn("MercadoPago not configured, checkout disabled", zap.Error(err))
	}
	handler.InitCheckoutHandler(checkout)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(middleware.MetricsMiddleware)

	// Public routes - no authentication required
	e.GET("/", handler.Liveness)
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/login", handler.Login)

	// Entity and checkout routes. The original UI talks to them without a
	// session, so JWT protection is opt-in via AUTH_REQUIRED.
	api := e.Group("")
	if cfg.Auth.Required {
		api.Use(middleware.AuthMiddleware)
	}

	api.GET("/clientes", handler.ListClientes)
	api.POST("/clientes", handler.CreateCliente)
	api.PUT("/clientes/:id", handler.UpdateCliente)
	api.DELETE("/clientes/:id", handler.DeleteCliente)

	api.GET("/propiedades", handler.ListPropiedades)
	api.POST("/propiedades", handler.CreatePropiedad)
	api.PUT("/propiedades/:id", handler.UpdatePropiedad)
	api.DELETE("/propiedades/:id", handler.DeletePropiedad)

	api.GET("/pagos", handler.ListPagos)
	api.POST("/pagos", handler.CreatePago)

	api.POST("/checkout", handler.CreateCheckout)

	// Start server
	log.Info("Starting server", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
