package store

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers treated as transient.
const (
	mysqlTooManyConnections = 1040
	mysqlLockWaitTimeout    = 1205
	mysqlDeadlock           = 1213
)

// MySQLErrorClassifier implements [ErrorClassificator] for MySQL.
type MySQLErrorClassifier struct{}

func NewMySQLErrorClassifier() *MySQLErrorClassifier {
	return &MySQLErrorClassifier{}
}

// Classify treats lock timeouts, deadlocks, connection exhaustion and broken
// connections as retryable.
func (c *MySQLErrorClassifier) Classify(err error) ErrorClassification {
	if errors.Is(err, mysql.ErrInvalidConn) {
		return Retryable
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlTooManyConnections, mysqlLockWaitTimeout, mysqlDeadlock:
			return Retryable
		}
	}
	return NonRetryable
}
