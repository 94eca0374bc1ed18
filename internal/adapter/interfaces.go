// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed Go client for the catalog HTTP API.
//
// The primary abstraction is [CatalogClient]. The HTTP implementation
// ([NewHTTPCatalogClient]) is built on resty.
//
// Error statuses are mapped by mapHTTPError to the sentinel values in
// errors.go, so callers can use [errors.Is] (e.g. [ErrForbidden] for 403,
// [ErrBadRequest] for 400). The wrapped message is the server's "erro" text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_client_mock.go -package=mock

// CatalogClient talks to a running catalog server.
type CatalogClient interface {
	// SetToken stores the session token sent with protected requests.
	SetToken(token string)

	// Token returns the current session token, or "" if none is set.
	Token() string

	// Login exchanges credentials for a session token and stores it.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// ListProducts returns every product, or the rows of the category search
	// when category is not empty.
	ListProducts(ctx context.Context, category string) ([]models.Row, error)

	// CreateProduct adds a product. It returns the server's confirmation.
	CreateProduct(ctx context.Context, product models.Product) (string, error)

	// UpdateProduct overwrites the product with the given id.
	UpdateProduct(ctx context.Context, id string, product models.Product) (string, error)

	// DeleteProduct removes the product and its orders.
	DeleteProduct(ctx context.Context, id string) (string, error)

	// OrdersReport returns the rows of the orders report.
	OrdersReport(ctx context.Context) ([]models.Row, error)

	// CriticalStockReport returns the rows of the critical stock report.
	CriticalStockReport(ctx context.Context) ([]models.Row, error)
}
