package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-catalog/internal/app"
	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/internal/service"
	"github.com/MKhiriev/go-catalog/internal/utils"
	"github.com/MKhiriev/go-catalog/models"
)

// login checks {login, senha} and answers with a session token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.WriteError(w, app.MsgInvalidLoginPassword, http.StatusUnauthorized)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Str("login", foundUser.Login).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
