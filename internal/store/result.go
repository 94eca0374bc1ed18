package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-catalog/models"
)

// StatementKind tells [Execute] how to run a [Statement].
type StatementKind int

const (
	// DirectStatement is a plain SELECT returning one row set.
	DirectStatement StatementKind = iota
	// RoutineStatement invokes a stored routine that may return several row sets.
	RoutineStatement
	// CommandStatement is an INSERT, UPDATE or DELETE returning no rows.
	CommandStatement
)

// Statement is a rendered SQL statement ready to run on a connection.
type Statement struct {
	Kind StatementKind
	SQL  string
	Args []any
}

// ResultKind tells how the row sets of a [Result] were produced.
type ResultKind int

const (
	// DirectRows holds exactly one row set.
	DirectRows ResultKind = iota
	// ProcedureRows holds every row set returned by a stored routine.
	ProcedureRows
)

// Result is the outcome of [Execute].
type Result struct {
	Kind         ResultKind
	Sets         [][]models.Row
	RowsAffected int64
}

// Rows unwraps the rows a caller is interested in: the single row set of a
// direct statement, or the first row set of a routine. It never returns nil.
func (r Result) Rows() []models.Row {
	if len(r.Sets) == 0 || r.Sets[0] == nil {
		return []models.Row{}
	}
	return r.Sets[0]
}

// Execute runs stmt on conn.
func (db *DB) Execute(ctx context.Context, conn *sql.Conn, stmt Statement) (Result, error) {
	if stmt.Kind == CommandStatement {
		res, err := conn.ExecContext(ctx, stmt.SQL, stmt.Args...)
		if err != nil {
			db.logError(ctx, "DB.Execute", err)
			return Result{}, queryError(ErrExecutingStatement, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			affected = -1
		}
		return Result{Kind: DirectRows, Sets: [][]models.Row{{}}, RowsAffected: affected}, nil
	}

	rows, err := conn.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		db.logError(ctx, "DB.Execute", err)
		return Result{}, queryError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	if stmt.Kind == DirectStatement {
		set, err := scanRows(rows)
		if err != nil {
			db.logError(ctx, "DB.Execute", err)
			return Result{}, queryError(ErrScanningRows, err)
		}
		return Result{Kind: DirectRows, Sets: [][]models.Row{set}}, nil
	}

	sets := make([][]models.Row, 0, 1)
	for {
		set, err := scanRows(rows)
		if err != nil {
			db.logError(ctx, "DB.Execute", err)
			return Result{}, queryError(ErrScanningRows, err)
		}
		sets = append(sets, set)

		if !rows.NextResultSet() {
			break
		}
	}
	if err = rows.Err(); err != nil {
		db.logError(ctx, "DB.Execute", err)
		return Result{}, queryError(ErrScanningRows, err)
	}

	return Result{Kind: ProcedureRows, Sets: sets}, nil
}

// scanRows reads the current row set into rows keyed by column name.
func scanRows(rows *sql.Rows) ([]models.Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	set := make([]models.Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err = rows.Scan(dest...); err != nil {
			return nil, err
		}

		row := make(models.Row, len(columns))
		for i, column := range columns {
			row[column] = columnValue(values[i])
		}
		set = append(set, row)
	}

	return set, rows.Err()
}

// columnValue converts raw driver values to JSON friendly ones.
// Text columns may arrive as bytes.
func columnValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
