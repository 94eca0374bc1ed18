package models

// MessageResponse is the confirmation body of successful mutations.
type MessageResponse struct {
	Message string `json:"mensagem"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"erro"`
}

// TokenResponse carries a freshly issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}
