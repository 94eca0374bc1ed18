package http

import "errors"

// Reasons the auth middleware rejects a request before the token is parsed.
// All of them answer 401 with "Acesso negado. Token não fornecido.".
var (
	// ErrEmptyAuthorizationHeader means the request carries no Authorization header.
	ErrEmptyAuthorizationHeader = errors.New("authorization header is missing")

	// ErrInvalidAuthorizationHeader means the header has no space-separated
	// token part, e.g. "Bearer".
	ErrInvalidAuthorizationHeader = errors.New("authorization header has no token part")

	// ErrEmptyToken means the token part is empty, e.g. "Bearer ".
	ErrEmptyToken = errors.New("authorization header carries an empty token")
)
