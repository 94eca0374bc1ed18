package store

import "github.com/MKhiriev/go-catalog/internal/logger"

// Storages groups every repository used by the service layer.
type Storages struct {
	UserRepository    UserRepository
	ProductRepository ProductRepository
	ReportRepository  ReportRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProductRepository: NewProductRepository(db, log),
		ReportRepository:  NewReportRepository(db, log),
	}
}
