package handlerutils

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Neurokami/proyecto-infra/internal/servererrors"
)

// APIHandler is an http handler that reports failures as errors instead of
// writing them itself; the error middleware turns the first error returned
// into the JSON error envelope and the request ends there.
type APIHandler func(w http.ResponseWriter, r *http.Request) error

// ParseJSONBody decodes the request body into a generic map. An empty body
// is not an error and yields an empty map; anything non-empty that is not a
// JSON object fails with 422.
func ParseJSONBody(r *http.Request) (map[string]any, error) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, servererrors.Wrap(
			http.StatusInternalServerError,
			servererrors.ErrInternalDB.Error(),
			err,
		)
	}

	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	body := map[string]any{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, servererrors.New(
			http.StatusUnprocessableEntity,
			servererrors.ErrInvalidRequestBody.Error(),
			nil,
		)
	}

	return body, nil
}

// RequireField extracts a required string field. Scalar values are
// stringified, surrounding whitespace is trimmed, and a missing or blank
// field fails with 422 and the given message.
func RequireField(body map[string]any, key, errorMessage string) (string, error) {
	value := strings.TrimSpace(stringify(body[key]))
	if value == "" {
		return "", servererrors.New(
			http.StatusUnprocessableEntity,
			errorMessage,
			nil,
		)
	}

	return value, nil
}

// OptionalField extracts an optional string field; blank or absent values
// come back as nil so they can be stored as NULL.
func OptionalField(body map[string]any, key string) *string {
	value := strings.TrimSpace(stringify(body[key]))
	if value == "" {
		return nil
	}

	return &value
}

// RequireIntField extracts a required integer field. JSON numbers and
// numeric strings are accepted and truncated toward zero; anything else
// fails with 422 and the given message.
func RequireIntField(body map[string]any, key, errorMessage string) (int64, error) {
	fieldErr := servererrors.New(
		http.StatusUnprocessableEntity,
		errorMessage,
		nil,
	)

	value, ok := body[key]
	if !ok {
		return 0, fieldErr
	}

	switch v := value.(type) {
	case float64:
		return int64(v), nil

	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return 0, fieldErr
		}

		num, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fieldErr
		}

		return int64(num), nil

	default:
		return 0, fieldErr
	}
}

// WriteJSON writes payload as UTF-8 JSON without escaping unicode or
// slashes.
func WriteJSON(w http.ResponseWriter, statusCode int, payload any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)

	return encoder.Encode(payload)
}

// WriteSuccessJSON writes {"success":true} merged with the given payload
// fields.
func WriteSuccessJSON(w http.ResponseWriter, statusCode int, payload map[string]any) error {
	envelope := map[string]any{
		"success": true,
	}
	for key, value := range payload {
		envelope[key] = value
	}

	return WriteJSON(w, statusCode, envelope)
}

// WriteErrorJSON writes {"success":false,"message":...} merged with any
// documented extra fields.
func WriteErrorJSON(w http.ResponseWriter, statusCode int, message string, extra map[string]any) error {
	envelope := map[string]any{
		"success": false,
		"message": message,
	}
	for key, value := range extra {
		envelope[key] = value
	}

	return WriteJSON(w, statusCode, envelope)
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	default:
		return ""
	}
}
