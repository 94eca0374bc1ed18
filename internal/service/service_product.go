package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-catalog/internal/events"
	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/internal/store"
	"github.com/MKhiriev/go-catalog/internal/utils"
	"github.com/MKhiriev/go-catalog/models"
)

const publishTimeout = 5 * time.Second

// productService runs catalog operations against a ProductRepository and
// announces successful mutations through a Publisher.
type productService struct {
	productRepository store.ProductRepository
	publisher         events.Publisher
	now               func() time.Time
	logger            *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, publisher events.Publisher, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		publisher:         publisher,
		now:               time.Now,
		logger:            logger,
	}
}

func (p *productService) ListProducts(ctx context.Context, category string) ([]models.Row, error) {
	if category == "" {
		rows, err := p.productRepository.ListProducts(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing products: %w", err)
		}
		return rows, nil
	}

	rows, err := p.productRepository.SearchByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("error searching products by category: %w", err)
	}
	return rows, nil
}

func (p *productService) CreateProduct(ctx context.Context, product models.Product) error {
	if err := p.productRepository.CreateProduct(ctx, product); err != nil {
		return fmt.Errorf("error creating product: %w", err)
	}

	p.publish(ctx, models.ProductEvent{Type: models.ProductCreated, Product: &product})
	return nil
}

func (p *productService) UpdateProduct(ctx context.Context, id string, product models.Product) error {
	if err := p.productRepository.UpdateProduct(ctx, id, product); err != nil {
		return fmt.Errorf("error updating product %s: %w", id, err)
	}

	p.publish(ctx, models.ProductEvent{Type: models.ProductUpdated, ProductID: id, Product: &product})
	return nil
}

func (p *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := p.productRepository.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("error deleting product %s: %w", id, err)
	}

	p.publish(ctx, models.ProductEvent{Type: models.ProductDeleted, ProductID: id})
	return nil
}

// publish sends event on behalf of the authenticated user. Failures are
// logged and never reach the caller.
func (p *productService) publish(ctx context.Context, event models.ProductEvent) {
	log := logger.FromContext(ctx)

	if user, ok := utils.GetUserFromContext(ctx); ok {
		event.UserID = user.UserID
		event.Login = user.Login
	}
	event.OccurredAt = p.now().UTC()

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.publisher.PublishProductEvent(publishCtx, event); err != nil {
		log.Err(err).Str("func", "*productService.publish").Str("type", event.Type).Msg("error publishing product event")
	}
}
