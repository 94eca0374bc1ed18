package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/models"
)

// userRepository is the database/sql implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByCredentials matches login and password in a single query. The
// password column holds plaintext, so the comparison happens in the
// database.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - driver error → [QueryError] with [ErrExecutingQuery] or [ErrScanningRow].
func (r *userRepository) FindUserByCredentials(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	stmt, err := r.db.Direct(buildFindUserByCredentialsQuery(user))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByCredentials").Msg("error building query")
		return models.User{}, err
	}

	var foundUser models.User
	err = r.db.WithConnection(ctx, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx, stmt.SQL, stmt.Args...)
		if err := row.Scan(&foundUser.UserID, &foundUser.Login); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNoUserWasFound
			}
			r.db.logError(ctx, "*userRepository.FindUserByCredentials", err)
			return queryError(ErrScanningRow, err)
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	log.Debug().Str("func", "*userRepository.FindUserByCredentials").Int64("user_id", foundUser.UserID).Msg("user found")
	return foundUser, nil
}
