package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-catalog/internal/config"
	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/models"
)

func TestDB_Direct_Placeholders(t *testing.T) {
	query := sq.Select("*").From(tableProduct).Where(sq.Eq{columnProductID: "1"})

	tests := []struct {
		driver string
		want   string
	}{
		{driver: config.DriverPostgres, want: "SELECT * FROM Produto WHERE cod_produto = $1"},
		{driver: config.DriverSQLite, want: "SELECT * FROM Produto WHERE cod_produto = ?"},
		{driver: config.DriverMySQL, want: "SELECT * FROM Produto WHERE cod_produto = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			db := newDB(nil, tt.driver, logger.Nop())

			stmt, err := db.Direct(query)
			require.NoError(t, err)

			assert.Equal(t, DirectStatement, stmt.Kind)
			assert.Equal(t, tt.want, stmt.SQL)
			assert.Equal(t, []any{"1"}, stmt.Args)
		})
	}
}

func TestDB_Direct_BuildError(t *testing.T) {
	db := newDB(nil, config.DriverPostgres, logger.Nop())

	_, err := db.Direct(sq.Insert(tableProduct))
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestDB_Routine(t *testing.T) {
	t.Run("postgres renders a set-returning function call", func(t *testing.T) {
		db := newDB(nil, config.DriverPostgres, logger.Nop())

		stmt, err := db.Routine(routineSearchByCategory, "Eletrônicos")
		require.NoError(t, err)

		assert.Equal(t, RoutineStatement, stmt.Kind)
		assert.Equal(t, "SELECT * FROM sp_buscar_produtos_categoria($1)", stmt.SQL)
		assert.Equal(t, []any{"Eletrônicos"}, stmt.Args)
	})

	t.Run("mysql renders a CALL", func(t *testing.T) {
		db := newDB(nil, config.DriverMySQL, logger.Nop())

		stmt, err := db.Routine(routineSearchByCategory, "Eletrônicos")
		require.NoError(t, err)

		assert.Equal(t, RoutineStatement, stmt.Kind)
		assert.Equal(t, "CALL sp_buscar_produtos_categoria(?)", stmt.SQL)
		assert.Equal(t, []any{"Eletrônicos"}, stmt.Args)
	})

	t.Run("sqlite has no routines", func(t *testing.T) {
		db := newDB(nil, config.DriverSQLite, logger.Nop())

		_, err := db.Routine(routineSearchByCategory, "x")
		assert.ErrorIs(t, err, ErrUnsupportedRoutine)
	})
}

func TestDB_WithConnection_ReleasesConnection(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(conn *sql.Conn) error
		wantErr error
	}{
		{
			name: "success",
			fn:   func(conn *sql.Conn) error { return nil },
		},
		{
			name:    "callback error",
			fn:      func(conn *sql.Conn) error { return assert.AnError },
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newMockDB(t)

			var inUse int
			err := db.WithConnection(context.Background(), func(conn *sql.Conn) error {
				inUse = db.Stats().InUse
				return tt.fn(conn)
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, inUse)
			assert.Equal(t, 0, db.Stats().InUse)
		})
	}
}

func TestDB_WithConnection_ReleasesConnectionOnPanic(t *testing.T) {
	db, _ := newMockDB(t)

	assert.Panics(t, func() {
		_ = db.WithConnection(context.Background(), func(conn *sql.Conn) error {
			panic("boom")
		})
	})
	assert.Equal(t, 0, db.Stats().InUse)
}

func TestDB_WithConnection_CanceledContext(t *testing.T) {
	db, _ := newMockDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := db.WithConnection(ctx, func(conn *sql.Conn) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrOpeningConnection)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestDB_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("direct statement", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM Produto")).
			WillReturnRows(sqlmock.NewRows([]string{"cod_produto", "nome_produto"}).
				AddRow(int64(1), "Widget").
				AddRow(int64(2), []byte("Gadget")))

		stmt, err := db.Direct(buildSelectAllQuery(tableProduct))
		require.NoError(t, err)

		var result Result
		err = db.WithConnection(ctx, func(conn *sql.Conn) error {
			result, err = db.Execute(ctx, conn, stmt)
			return err
		})
		require.NoError(t, err)

		assert.Equal(t, DirectRows, result.Kind)
		assert.Equal(t, []models.Row{
			{"cod_produto": int64(1), "nome_produto": "Widget"},
			{"cod_produto": int64(2), "nome_produto": "Gadget"},
		}, result.Rows())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("routine keeps every result set", func(t *testing.T) {
		db, mock := newMockDB(t)
		first := sqlmock.NewRows([]string{"cod_produto", "nome_produto"}).AddRow(int64(1), "Widget")
		second := sqlmock.NewRows([]string{"status"}).AddRow("ok")
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_buscar_produtos_categoria($1)")).
			WithArgs("Ferramentas").
			WillReturnRows(first, second)

		stmt, err := db.Routine(routineSearchByCategory, "Ferramentas")
		require.NoError(t, err)

		var result Result
		err = db.WithConnection(ctx, func(conn *sql.Conn) error {
			result, err = db.Execute(ctx, conn, stmt)
			return err
		})
		require.NoError(t, err)

		assert.Equal(t, ProcedureRows, result.Kind)
		require.Len(t, result.Sets, 2)
		assert.Equal(t, []models.Row{{"cod_produto": int64(1), "nome_produto": "Widget"}}, result.Rows())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("mysql procedure returns two result sets", func(t *testing.T) {
		conn, mock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { conn.Close() })
		db := newDB(conn, config.DriverMySQL, logger.Nop())

		products := sqlmock.NewRows([]string{"cod_produto", "nome_produto", "nome_categoria"}).
			AddRow(int64(1), []byte("Martelo"), []byte("Ferramentas")).
			AddRow(int64(2), []byte("Serrote"), []byte("Ferramentas"))
		summary := sqlmock.NewRows([]string{"total"}).AddRow(int64(2))
		mock.ExpectQuery(regexp.QuoteMeta("CALL sp_buscar_produtos_categoria(?)")).
			WithArgs("Ferramentas").
			WillReturnRows(products, summary)

		stmt, err := db.Routine(routineSearchByCategory, "Ferramentas")
		require.NoError(t, err)

		var result Result
		err = db.WithConnection(ctx, func(conn *sql.Conn) error {
			result, err = db.Execute(ctx, conn, stmt)
			return err
		})
		require.NoError(t, err)

		assert.Equal(t, ProcedureRows, result.Kind)
		require.Len(t, result.Sets, 2)
		assert.Equal(t, []models.Row{{"total": int64(2)}}, result.Sets[1])
		assert.Equal(t, []models.Row{
			{"cod_produto": int64(1), "nome_produto": "Martelo", "nome_categoria": "Ferramentas"},
			{"cod_produto": int64(2), "nome_produto": "Serrote", "nome_categoria": "Ferramentas"},
		}, result.Rows())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("command reports affected rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Pedido WHERE cod_produto = $1")).
			WithArgs("4").
			WillReturnResult(sqlmock.NewResult(0, 3))

		stmt, err := db.Command(buildDeleteByProductQuery(tableOrder, "4"))
		require.NoError(t, err)

		var result Result
		err = db.WithConnection(ctx, func(conn *sql.Conn) error {
			result, err = db.Execute(ctx, conn, stmt)
			return err
		})
		require.NoError(t, err)

		assert.Equal(t, int64(3), result.RowsAffected)
		assert.Empty(t, result.Rows())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver errors keep their message", func(t *testing.T) {
		db, mock := newMockDB(t)
		driverErr := &pgconn.PgError{Code: pgerrcode.UndefinedTable, Message: `relation "produto" does not exist`}
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM Produto")).WillReturnError(driverErr)

		stmt, err := db.Direct(buildSelectAllQuery(tableProduct))
		require.NoError(t, err)

		err = db.WithConnection(ctx, func(conn *sql.Conn) error {
			_, err := db.Execute(ctx, conn, stmt)
			return err
		})

		assert.ErrorIs(t, err, ErrExecutingQuery)
		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr))
		assert.Equal(t, driverErr.Error(), DriverMessage(err))
	})
}

func TestResult_Rows(t *testing.T) {
	row := models.Row{"cod_produto": int64(1)}

	tests := []struct {
		name   string
		result Result
		want   []models.Row
	}{
		{name: "zero value", result: Result{}, want: []models.Row{}},
		{name: "direct", result: Result{Kind: DirectRows, Sets: [][]models.Row{{row}}}, want: []models.Row{row}},
		{name: "procedure first set", result: Result{Kind: ProcedureRows, Sets: [][]models.Row{{row}, {{"x": 1}}}}, want: []models.Row{row}},
		{name: "procedure without sets", result: Result{Kind: ProcedureRows}, want: []models.Row{}},
		{name: "nil first set", result: Result{Kind: ProcedureRows, Sets: [][]models.Row{nil}}, want: []models.Row{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.result.Rows()
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDriverMessage(t *testing.T) {
	assert.Equal(t, "boom", DriverMessage(queryError(ErrExecutingQuery, errors.New("boom"))))
	assert.Equal(t, "plain", DriverMessage(errors.New("plain")))
}

func TestErrorClassifiers(t *testing.T) {
	pg := NewPostgresErrorClassifier()
	assert.Equal(t, Retryable, pg.Classify(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}))
	assert.Equal(t, Retryable, pg.Classify(queryError(ErrExecutingQuery, &pgconn.PgError{Code: pgerrcode.CannotConnectNow})))
	assert.Equal(t, NonRetryable, pg.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Equal(t, NonRetryable, pg.Classify(errors.New("other")))
	assert.Equal(t, NonRetryable, pg.Classify(nil))

	lite := NewSQLiteErrorClassifier()
	assert.Equal(t, NonRetryable, lite.Classify(errors.New("other")))

	my := NewMySQLErrorClassifier()
	assert.Equal(t, Retryable, my.Classify(&mysql.MySQLError{Number: mysqlDeadlock, Message: "Deadlock found"}))
	assert.Equal(t, Retryable, my.Classify(queryError(ErrExecutingQuery, &mysql.MySQLError{Number: mysqlLockWaitTimeout})))
	assert.Equal(t, Retryable, my.Classify(mysql.ErrInvalidConn))
	assert.Equal(t, NonRetryable, my.Classify(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}))
	assert.Equal(t, NonRetryable, my.Classify(errors.New("other")))
	assert.Equal(t, NonRetryable, my.Classify(nil))
}
