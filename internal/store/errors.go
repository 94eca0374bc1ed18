package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when no account matches the supplied
	// login and password.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUnsupportedRoutine is returned when a stored routine is invoked on a
	// database dialect that cannot call it.
	ErrUnsupportedRoutine = errors.New("stored routines are not supported by this database")

	// ErrUnsupportedDriver is returned when a connection is requested for an
	// unknown database/sql driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrOpeningConnection is returned when a dedicated connection cannot be
	// taken from the pool.
	ErrOpeningConnection = errors.New("error opening connection to DB")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a routine call
	// fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single expected row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// QueryError is a failed database operation. Op is one of the sentinel errors
// above and Err is the error reported by the driver.
//
// Both are reachable through [errors.Is] and [errors.As].
type QueryError struct {
	Op  error
	Err error
}

func (e *QueryError) Error() string {
	return e.Op.Error() + ": " + e.Err.Error()
}

func (e *QueryError) Unwrap() []error {
	return []error{e.Op, e.Err}
}

// DriverMessage returns the message of the driver error carried by err, or
// err's own message when no database operation failed.
func DriverMessage(err error) string {
	var qErr *QueryError
	if errors.As(err, &qErr) {
		return qErr.Err.Error()
	}
	return err.Error()
}

func queryError(op, err error) error {
	return &QueryError{Op: op, Err: err}
}
