package service

import (
	"github.com/MKhiriev/go-catalog/internal/config"
	"github.com/MKhiriev/go-catalog/internal/events"
	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProductService ProductService
	ReportService  ReportService
}

func NewServices(storages *store.Storages, publisher events.Publisher, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	productService := NewProductService(storages.ProductRepository, publisher, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ProductService: NewProductValidationService().Wrap(productService),
		ReportService:  NewReportService(storages.ReportRepository, logger),
	}
}
