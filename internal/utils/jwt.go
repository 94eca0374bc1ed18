package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-catalog/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidJWTParams is returned by GenerateJWTToken when the sign key is
// empty or the duration is not positive.
var ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

// GenerateJWTToken creates a signed HMAC-SHA256 session token for user.
//
// The token carries:
//   - id        : user.UserID
//   - login     : user.Login
//   - iat       : issuedAt
//   - exp       : issuedAt + tokenDuration
//   - iss       : issuer, only when non-empty
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("", user, time.Now(), time.Hour, "secret")
func GenerateJWTToken(issuer string, user models.User, issuedAt time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
		},
		UserID: user.UserID,
		Login:  user.Login,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       user.UserID,
		Login:        user.Login,
	}, nil
}

// ValidateAndParseJWTToken validates tokenString and extracts its claims.
//
// Validation includes:
//   - signature verification with tokenSignKey, HS256 only
//   - expiration check against now(); a token is expired at exp and later
//   - issuer check, only when tokenIssuer is non-empty
//
// Errors wrap the jwt/v5 sentinels, so callers can match
// [jwt.ErrTokenExpired] with [errors.Is].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now func() time.Time) (models.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if now != nil {
		opts = append(opts, jwt.WithTimeFunc(now))
	}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       claims.UserID,
		Login:        claims.Login,
	}, nil
}

// ParseClaimsUnverified decodes the claims of tokenString without checking
// its signature. It is meant for clients that only need to display who they
// are logged in as.
func ParseClaimsUnverified(tokenString string) (models.Claims, error) {
	claims := models.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return models.Claims{}, err
	}
	return claims, nil
}
