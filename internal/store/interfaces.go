package store

import (
	"context"

	"github.com/MKhiriev/go-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository looks up accounts for login.
type UserRepository interface {
	// FindUserByCredentials returns the account whose login and password both
	// match, or [ErrNoUserWasFound].
	FindUserByCredentials(ctx context.Context, user models.User) (models.User, error)
}

// ProductRepository reads and mutates the product catalog.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.Row, error)
	SearchByCategory(ctx context.Context, category string) ([]models.Row, error)
	CreateProduct(ctx context.Context, product models.Product) error
	UpdateProduct(ctx context.Context, id string, product models.Product) error
	// DeleteProduct removes the product's orders and then the product.
	// The two deletes are not atomic.
	DeleteProduct(ctx context.Context, id string) error
}

// ReportRepository reads the reporting views.
type ReportRepository interface {
	OrdersReport(ctx context.Context) ([]models.Row, error)
	CriticalStockReport(ctx context.Context) ([]models.Row, error)
}
