package server

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/arashek/ade/internal/config"
	"github.com/arashek/ade/internal/container"
	"github.com/arashek/ade/internal/security"
	"github.com/arashek/ade/internal/template"
)

// Server exposes the container manager, template loader and compliance
// validator as a JSON API for dashboard consumers
type Server struct {
	echo      *echo.Echo
	manager   container.ManagerInterface
	loader    *template.Loader
	validator *security.Validator
	port      int
}

// New creates the HTTP server and registers all routes
func New(cfg *config.Config, manager container.ManagerInterface, loader *template.Loader, validator *security.Validator) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(requestLogger())
	e.Use(middleware.Recover())

	s := &Server{
		echo:      e,
		manager:   manager,
		loader:    loader,
		validator: validator,
		port:      cfg.Server.Port,
	}
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	e := s.echo

	e.GET("/healthz", s.healthz)

	api := e.Group("/api")

	api.GET("/templates", s.listTemplates)
	api.GET("/templates/:projectType", s.getTemplate)
	api.PUT("/templates", s.saveTemplate)
	api.DELETE("/templates/:projectType", s.deleteTemplate)

	api.POST("/containers", s.createContainer)
	api.POST("/containers/init", s.initializeProject)
	api.GET("/containers", s.listContainers)
	api.GET("/containers/:id", s.getContainer)
	api.POST("/containers/:id/start", s.startContainer)
	api.POST("/containers/:id/stop", s.stopContainer)
	api.POST("/containers/:id/pause", s.pauseContainer)
	api.POST("/containers/:id/resume", s.resumeContainer)
	api.DELETE("/containers/:id", s.deleteContainer)
	api.GET("/containers/:id/logs", s.containerLogs)
	api.GET("/containers/:id/resources", s.containerResources)
	api.PUT("/containers/:id/resources", s.updateAllocation)
	api.POST("/containers/:id/exec", s.execInContainer)

	api.POST("/compliance/check", s.checkCompliance)
}

// Start runs the server until Shutdown is called
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Info().Str("addr", addr).Msg("HTTP server listening")
	return s.echo.Start(addr)
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str("remote_ip", c.RealIP()).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
