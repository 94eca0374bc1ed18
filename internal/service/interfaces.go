package service

import (
	"context"

	"github.com/MKhiriev/go-catalog/models"
)

type AuthService interface {
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProductService interface {
	// ListProducts returns all products, or the products of category when it
	// is not empty.
	ListProducts(ctx context.Context, category string) ([]models.Row, error)
	CreateProduct(ctx context.Context, product models.Product) error
	UpdateProduct(ctx context.Context, id string, product models.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type ReportService interface {
	OrdersReport(ctx context.Context) ([]models.Row, error)
	CriticalStockReport(ctx context.Context) ([]models.Row, error)
}

// ProductServiceWrapper defines middleware composition for ProductService.
// Implementations wrap an existing ProductService to add behavior such as
// validation.
type ProductServiceWrapper interface {
	Wrap(ProductService) ProductService
}
