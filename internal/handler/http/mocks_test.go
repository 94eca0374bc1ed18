package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/internal/service"
	"github.com/MKhiriev/go-catalog/internal/utils"
	"github.com/MKhiriev/go-catalog/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	loginFn       func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 1, Login: "user"}, nil
}

type mockProductService struct {
	listFn   func(ctx context.Context, category string) ([]models.Row, error)
	createFn func(ctx context.Context, product models.Product) error
	updateFn func(ctx context.Context, id string, product models.Product) error
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockProductService) ListProducts(ctx context.Context, category string) ([]models.Row, error) {
	if m.listFn != nil {
		return m.listFn(ctx, category)
	}
	return nil, nil
}

func (m *mockProductService) CreateProduct(ctx context.Context, product models.Product) error {
	if m.createFn != nil {
		return m.createFn(ctx, product)
	}
	return nil
}

func (m *mockProductService) UpdateProduct(ctx context.Context, id string, product models.Product) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, product)
	}
	return nil
}

func (m *mockProductService) DeleteProduct(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockReportService struct {
	ordersFn func(ctx context.Context) ([]models.Row, error)
	stockFn  func(ctx context.Context) ([]models.Row, error)
}

func (m *mockReportService) OrdersReport(ctx context.Context) ([]models.Row, error) {
	if m.ordersFn != nil {
		return m.ordersFn(ctx)
	}
	return nil, nil
}

func (m *mockReportService) CriticalStockReport(ctx context.Context) ([]models.Row, error) {
	if m.stockFn != nil {
		return m.stockFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testServices struct {
	auth     *mockAuthService
	products *mockProductService
	reports  *mockReportService
}

func newTestServices() *testServices {
	return &testServices{
		auth:     &mockAuthService{},
		products: &mockProductService{},
		reports:  &mockReportService{},
	}
}

func (s *testServices) handler() *Handler {
	return &Handler{
		services: &service.Services{
			AuthService:    s.auth,
			ProductService: s.products,
			ReportService:  s.reports,
		},
		corsAllowedOrigins: []string{"*"},
		traceIDGenerator:   utils.NewUUIDGenerator(),
		logger:             logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
