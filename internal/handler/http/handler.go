package http

import (
	"github.com/MKhiriev/go-catalog/internal/config"
	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/internal/service"
	"github.com/MKhiriev/go-catalog/internal/utils"
)

type Handler struct {
	services *service.Services

	staticDir          string
	corsAllowedOrigins []string
	traceIDGenerator   *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		staticDir:          cfg.StaticDir,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		traceIDGenerator:   utils.NewUUIDGenerator(),
		logger:             logger,
	}
}
