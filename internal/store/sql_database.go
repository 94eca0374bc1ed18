// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-catalog/internal/config"
	"github.com/MKhiriev/go-catalog/internal/logger"
)

// DB is a database/sql handle bound to one SQL dialect.
type DB struct {
	*sql.DB
	driver             string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a database handle for the configured driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverMySQL:
		return NewConnectMySQL(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// newDB wraps an opened handle. driver selects the placeholder format and the
// error classifier.
func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case config.DriverSQLite:
		db.placeholder = sq.Question
		db.errorClassificator = NewSQLiteErrorClassifier()
	case config.DriverMySQL:
		db.placeholder = sq.Question
		db.errorClassificator = NewMySQLErrorClassifier()
	default:
		db.placeholder = sq.Dollar
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// WithConnection takes a dedicated connection from the pool, runs fn with it
// and releases the connection on every exit path, including panics.
func (db *DB) WithConnection(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		db.logError(ctx, "DB.WithConnection", err)
		return queryError(ErrOpeningConnection, err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			logger.FromContext(ctx).Err(closeErr).Str("func", "DB.WithConnection").Msg("error releasing connection")
		}
	}()

	return fn(conn)
}

// Direct wraps a squirrel builder into a [Statement] rendered with the
// dialect's placeholders.
func (db *DB) Direct(query sq.Sqlizer) (Statement, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return Statement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	sqlStr, err = db.placeholder.ReplacePlaceholders(sqlStr)
	if err != nil {
		return Statement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return Statement{Kind: DirectStatement, SQL: sqlStr, Args: args}, nil
}

// Routine renders a call of the named stored routine.
// Postgres exposes routines returning rows as set-returning functions, so
// the call is a SELECT over the function. MySQL runs a stored procedure with
// CALL, which may return several result sets. SQLite has no stored routines.
func (db *DB) Routine(name string, args ...any) (Statement, error) {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")

	var call string
	switch db.driver {
	case config.DriverSQLite:
		return Statement{}, fmt.Errorf("%w: %s", ErrUnsupportedRoutine, name)
	case config.DriverMySQL:
		call = fmt.Sprintf("CALL %s(%s)", name, marks)
	default:
		call = fmt.Sprintf("SELECT * FROM %s(%s)", name, marks)
	}

	stmt, err := db.Direct(sq.Expr(call, args...))
	if err != nil {
		return Statement{}, err
	}

	stmt.Kind = RoutineStatement
	return stmt, nil
}

// Command wraps an INSERT, UPDATE or DELETE builder into a [Statement].
func (db *DB) Command(query sq.Sqlizer) (Statement, error) {
	stmt, err := db.Direct(query)
	if err != nil {
		return Statement{}, err
	}

	stmt.Kind = CommandStatement
	return stmt, nil
}

// logError logs a failed database call together with its retry classification.
func (db *DB) logError(ctx context.Context, fn string, err error) {
	retryable := false
	if db.errorClassificator != nil {
		retryable = db.errorClassificator.Classify(err) == Retryable
	}

	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Str("driver", db.driver).
		Str("pg_code", postgresError(err)).
		Bool("retryable", retryable).
		Msg("database error")
}
