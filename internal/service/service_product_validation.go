package service

import (
	"context"

	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/models"
)

// ProductValidationService rejects incomplete products before they reach
// the wrapped ProductService.
type ProductValidationService struct {
	inner ProductService
}

func NewProductValidationService() ProductServiceWrapper {
	return &ProductValidationService{}
}

func (v *ProductValidationService) ListProducts(ctx context.Context, category string) ([]models.Row, error) {
	return v.inner.ListProducts(ctx, category)
}

// CreateProduct rejects a product whose name, quantity or category is
// null, absent, "", 0 or false.
func (v *ProductValidationService) CreateProduct(ctx context.Context, product models.Product) error {
	if !product.IsComplete() {
		logger.FromContext(ctx).Debug().Any("product", product).Msg("incomplete product data")
		return ErrIncompleteProductData
	}

	return v.inner.CreateProduct(ctx, product)
}

// UpdateProduct is not validated: absent fields are cleared.
func (v *ProductValidationService) UpdateProduct(ctx context.Context, id string, product models.Product) error {
	return v.inner.UpdateProduct(ctx, id, product)
}

func (v *ProductValidationService) DeleteProduct(ctx context.Context, id string) error {
	return v.inner.DeleteProduct(ctx, id)
}

func (v *ProductValidationService) Wrap(wrapped ProductService) ProductService {
	v.inner = wrapped
	return v
}
