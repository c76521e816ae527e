package middlewares

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Neurokami/proyecto-infra/internal/handlerutils"
	"github.com/Neurokami/proyecto-infra/internal/servererrors"
)

// VendorSession validates an optional bearer session token on vendor-scoped
// read endpoints. Requests without a token keep the plain vendedor_id
// contract; requests that do present one must carry a valid token whose
// vendor matches the vendedor_id query parameter.
func (mw *middleware) VendorSession(h handlerutils.APIHandler) handlerutils.APIHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		tokenStr, ok := bearerToken(r)
		if !ok {
			return h(w, r)
		}

		vendorID, err := mw.tokenManager.ValidateSessionToken(tokenStr)
		if err != nil {
			return servererrors.Wrap(
				http.StatusUnauthorized,
				servererrors.ErrInvalidSession.Error(),
				err,
			)
		}

		paramID, err := strconv.ParseInt(
			strings.TrimSpace(r.URL.Query().Get("vendedor_id")),
			10,
			64,
		)
		if err == nil && paramID != vendorID {
			return servererrors.New(
				http.StatusUnauthorized,
				servererrors.ErrInvalidSession.Error(),
				nil,
			)
		}

		return h(w, r)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}
