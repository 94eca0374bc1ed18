package service

import "errors"

var (
	ErrInvalidCredentials    = errors.New("invalid login or password")
	ErrIncompleteProductData = errors.New("incomplete product data")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
)
