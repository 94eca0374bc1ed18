package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-catalog/internal/config"
	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/internal/utils"
	"github.com/MKhiriev/go-catalog/models"
)

type httpCatalogClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPCatalogClient constructs a resty-based [CatalogClient].
// It normalises cfg.BaseURL (a missing scheme means http) and applies
// cfg.RequestTimeout and cfg.Token.
//
// Returns an error if cfg.BaseURL is empty or has no host.
func NewHTTPCatalogClient(cfg config.ClientAdapter, logger *logger.Logger) (CatalogClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	c := &httpCatalogClient{client: client, logger: logger}
	c.SetToken(cfg.Token)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCatalogClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpCatalogClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [CatalogClient]. It POSTs the credentials to /login and
// stores the returned token. The id and login are read from the token claims
// without verifying the signature.
func (h *httpCatalogClient) Login(ctx context.Context, user models.User) (models.Token, error) {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&tokenResp).
		Post("/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}
	if tokenResp.Token == "" {
		return models.Token{}, fmt.Errorf("%w: empty token", ErrDecodeResponse)
	}

	claims, err := utils.ParseClaimsUnverified(tokenResp.Token)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	h.SetToken(tokenResp.Token)
	h.logger.Debug().Int64("id", claims.UserID).Str("login", claims.Login).Msg("logged in")

	return models.Token{SignedString: tokenResp.Token, UserID: claims.UserID, Login: claims.Login}, nil
}

func (h *httpCatalogClient) ListProducts(ctx context.Context, category string) ([]models.Row, error) {
	req := h.client.R().SetContext(ctx)
	if category != "" {
		req.SetQueryParam("categoria", category)
	}
	return h.getRows(req, "/produtos")
}

func (h *httpCatalogClient) CreateProduct(ctx context.Context, product models.Product) (string, error) {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(product)
	return h.sendMessage(req, http.MethodPost, "/produtos")
}

func (h *httpCatalogClient) UpdateProduct(ctx context.Context, id string, product models.Product) (string, error) {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(product)
	return h.sendMessage(req, http.MethodPut, "/produtos/{id}")
}

func (h *httpCatalogClient) DeleteProduct(ctx context.Context, id string) (string, error) {
	req := h.authedRequest(ctx).SetPathParam("id", id)
	return h.sendMessage(req, http.MethodDelete, "/produtos/{id}")
}

func (h *httpCatalogClient) OrdersReport(ctx context.Context) ([]models.Row, error) {
	return h.getRows(h.client.R().SetContext(ctx), "/relatorios/pedidos")
}

func (h *httpCatalogClient) CriticalStockReport(ctx context.Context) ([]models.Row, error) {
	return h.getRows(h.client.R().SetContext(ctx), "/relatorios/estoque")
}

func (h *httpCatalogClient) getRows(req *resty.Request, path string) ([]models.Row, error) {
	var rows []models.Row

	resp, err := req.SetResult(&rows).Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return rows, nil
}

func (h *httpCatalogClient) sendMessage(req *resty.Request, method, path string) (string, error) {
	var msg models.MessageResponse

	resp, err := req.SetResult(&msg).Execute(method, path)
	if err != nil {
		return "", fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return msg.Message, nil
}

func (h *httpCatalogClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
