package store

import (
	"context"

	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/models"
)

type reportRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReportRepository constructs a [ReportRepository] over the reporting
// views.
func NewReportRepository(db *DB, logger *logger.Logger) ReportRepository {
	logger.Debug().Msg("creating report repository")
	return &reportRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reportRepository) OrdersReport(ctx context.Context) ([]models.Row, error) {
	return r.view(ctx, viewOrdersReport)
}

func (r *reportRepository) CriticalStockReport(ctx context.Context) ([]models.Row, error) {
	return r.view(ctx, viewCriticalStockReport)
}

func (r *reportRepository) view(ctx context.Context, name string) ([]models.Row, error) {
	stmt, err := r.db.Direct(buildSelectAllQuery(name))
	if err != nil {
		return nil, err
	}

	return selectRows(ctx, r.db, stmt)
}
