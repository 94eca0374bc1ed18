package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/internal/store"
	"github.com/MKhiriev/go-catalog/models"
)

type reportService struct {
	reportRepository store.ReportRepository
	logger           *logger.Logger
}

func NewReportService(reportRepository store.ReportRepository, logger *logger.Logger) ReportService {
	return &reportService{
		reportRepository: reportRepository,
		logger:           logger,
	}
}

func (r *reportService) OrdersReport(ctx context.Context) ([]models.Row, error) {
	rows, err := r.reportRepository.OrdersReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading orders report: %w", err)
	}
	return rows, nil
}

func (r *reportService) CriticalStockReport(ctx context.Context) ([]models.Row, error) {
	rows, err := r.reportRepository.CriticalStockReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading critical stock report: %w", err)
	}
	return rows, nil
}
