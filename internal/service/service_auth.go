// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-catalog/internal/config"
	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/internal/store"
	"github.com/MKhiriev/go-catalog/internal/utils"
	"github.com/MKhiriev/go-catalog/models"
)

// authService is the concrete implementation of AuthService.
// It checks credentials through a UserRepository and issues HS256 session
// tokens.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the optional "iss" claim embedded in every issued token.
	// When set, tokens with another issuer are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// now is the clock used for issuing and checking tokens.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// Login authenticates a user by login and plaintext password.
//
// Returns the matching user (id and login) or:
//   - ErrInvalidCredentials wrapping store.ErrNoUserWasFound when nothing
//     matches.
//   - A wrapped storage error if the lookup itself fails.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByCredentials(ctx, user)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("login", user.Login).Msg("wrong login or password")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user search by credentials failed")
		return models.User{}, fmt.Errorf("user search by credentials failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed token for the given user. It carries the
// user's id and login and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	logger.FromContext(ctx).Debug().Int64("id", user.UserID).Str("login", user.Login).Msg("token issued")
	return token, nil
}

// ParseToken validates a raw token string.
//
// Returns the decoded token or:
//   - ErrTokenIsExpired when the current time is at or after "exp".
//   - ErrTokenIsInvalid on any other failure (malformed, bad signature,
//     unexpected algorithm, wrong issuer).
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}

	return token, nil
}
