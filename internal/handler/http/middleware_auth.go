package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-catalog/internal/app"
	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/internal/utils"
)

// auth is an HTTP middleware that enforces token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the verified token under [utils.UserCtxKey] before delegating to the next
// handler.
//
// Rejections:
//   - 401 when the header is absent or carries no token part.
//   - 403 when the token is malformed, has a bad signature or has expired.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgTokenNotProvided, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, app.MsgTokenNotProvided, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusForbidden)
			return
		}

		setAccessLogCaller(ctx, token)
		ctx = context.WithValue(ctx, utils.UserCtxKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form "<scheme> <token>". The scheme is not checked.
//
// It returns:
//   - [ErrInvalidAuthorizationHeader] if there is no second space-separated
//     part.
//   - [ErrEmptyToken] if the second part is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
