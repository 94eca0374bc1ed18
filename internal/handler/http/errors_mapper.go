package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-catalog/internal/app"
	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/internal/service"
	"github.com/MKhiriev/go-catalog/internal/store"
	"github.com/MKhiriev/go-catalog/internal/utils"
)

// clientErrors are failures the caller can fix, with their status and
// message.
var clientErrors = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrIncompleteProductData, http.StatusBadRequest, app.MsgIncompleteData},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpired, http.StatusForbidden, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrTokenIsInvalid, http.StatusForbidden, app.MsgTokenIsExpiredOrInvalid},
}

// statusFromError returns the status and message for err. Anything that is
// not a client error is a 500 carrying the database driver's message.
func statusFromError(err error) (int, string) {
	for _, e := range clientErrors {
		if errors.Is(err, e.err) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, store.DriverMessage(err)
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
	}

	utils.WriteError(w, message, status)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
