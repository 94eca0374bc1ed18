// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/models"
)

// productRepository is the database/sql implementation of [ProductRepository].
// Each method runs on its own dedicated connection.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository].
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// ListProducts returns every row of the product table.
func (p *productRepository) ListProducts(ctx context.Context) ([]models.Row, error) {
	stmt, err := p.db.Direct(buildSelectAllQuery(tableProduct))
	if err != nil {
		return nil, err
	}

	return p.rows(ctx, stmt)
}

// SearchByCategory calls the category search routine and returns its first
// result set.
func (p *productRepository) SearchByCategory(ctx context.Context, category string) ([]models.Row, error) {
	stmt, err := p.db.Routine(routineSearchByCategory, category)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productRepository.SearchByCategory").Msg("error building routine call")
		return nil, err
	}

	return p.rows(ctx, stmt)
}

// CreateProduct inserts a product. Triggers on the table may run as a side
// effect.
func (p *productRepository) CreateProduct(ctx context.Context, product models.Product) error {
	stmt, err := p.db.Command(buildInsertProductQuery(product))
	if err != nil {
		return err
	}

	return p.exec(ctx, stmt)
}

// UpdateProduct overwrites the mutable columns of the product with the given
// id. An id without a matching row is not an error.
func (p *productRepository) UpdateProduct(ctx context.Context, id string, product models.Product) error {
	stmt, err := p.db.Command(buildUpdateProductQuery(id, product))
	if err != nil {
		return err
	}

	return p.exec(ctx, stmt)
}

// DeleteProduct removes the orders referencing the product and then the
// product itself, on one connection and without a transaction. When the
// second delete fails the orders stay deleted.
func (p *productRepository) DeleteProduct(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	deleteOrders, err := p.db.Command(buildDeleteByProductQuery(tableOrder, id))
	if err != nil {
		return err
	}
	deleteProduct, err := p.db.Command(buildDeleteByProductQuery(tableProduct, id))
	if err != nil {
		return err
	}

	return p.db.WithConnection(ctx, func(conn *sql.Conn) error {
		orders, err := p.db.Execute(ctx, conn, deleteOrders)
		if err != nil {
			return err
		}
		log.Debug().Str("func", "*productRepository.DeleteProduct").Int64("orders_deleted", orders.RowsAffected).Msg("orders deleted")

		if _, err = p.db.Execute(ctx, conn, deleteProduct); err != nil {
			log.Warn().Str("func", "*productRepository.DeleteProduct").Str("cod_produto", id).Msg("orders were deleted but the product was not")
			return err
		}
		return nil
	})
}

func (p *productRepository) rows(ctx context.Context, stmt Statement) ([]models.Row, error) {
	return selectRows(ctx, p.db, stmt)
}

func (p *productRepository) exec(ctx context.Context, stmt Statement) error {
	return p.db.WithConnection(ctx, func(conn *sql.Conn) error {
		_, err := p.db.Execute(ctx, conn, stmt)
		return err
	})
}

// selectRows runs stmt on a dedicated connection and unwraps its rows.
func selectRows(ctx context.Context, db *DB, stmt Statement) ([]models.Row, error) {
	var rows []models.Row
	err := db.WithConnection(ctx, func(conn *sql.Conn) error {
		result, err := db.Execute(ctx, conn, stmt)
		if err != nil {
			return err
		}
		rows = result.Rows()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}
