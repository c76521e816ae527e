package middlewares

import (
	"errors"
	"log"
	"net/http"

	"github.com/Neurokami/proyecto-infra/internal/handlerutils"
	"github.com/Neurokami/proyecto-infra/internal/servererrors"
)

// ErrorHandler adapts an error-returning handler into an http.HandlerFunc
// and centralizes error rendering: known server errors map to their status
// and documented extra fields, everything else is logged in full and
// surfaced as a generic 500. Internal causes (driver errors, DSNs) never
// reach the response body.
func (mw *middleware) ErrorHandler(h handlerutils.APIHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		var serverError *servererrors.ServerError
		if !errors.As(err, &serverError) {
			log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
			handlerutils.WriteErrorJSON(
				w,
				http.StatusInternalServerError,
				servererrors.ErrInternalDB.Error(),
				nil,
			)
			return
		}

		if cause := errors.Unwrap(serverError); cause != nil {
			log.Printf("%s %s: %v", r.Method, r.URL.Path, cause)
		}

		handlerutils.WriteErrorJSON(
			w,
			serverError.StatusCode,
			serverError.Error(),
			serverError.Extra,
		)
	}
}

// MethodNotAllowedHandler renders the 405 envelope for routes hit with an
// unsupported method.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handlerutils.WriteErrorJSON(
			w,
			http.StatusMethodNotAllowed,
			servererrors.ErrMethodNotAllowed.Error(),
			nil,
		)
	}
}
