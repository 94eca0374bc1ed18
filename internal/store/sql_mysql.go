package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/MKhiriev/go-catalog/internal/config"
	"github.com/MKhiriev/go-catalog/internal/logger"
)

// NewConnectMySQL opens and pings a MySQL database described by a
// go-sql-driver DSN such as "user:pass@tcp(host:3306)/catalogo".
func NewConnectMySQL(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	mysqlCfg, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error parsing database DSN")
		return nil, fmt.Errorf("%w: %w", ErrOpeningConnection, err)
	}
	mysqlCfg.ParseTime = true

	connector, err := mysql.NewConnector(mysqlCfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error connecting database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningConnection, err)
	}
	conn := sql.OpenDB(connector)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpeningConnection, err)
	}
	log.Debug().Str("func", "NewConnectMySQL").Msg("connected to database successfully")

	return newDB(conn, config.DriverMySQL, log), nil
}
