package handlerutils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neurokami/proyecto-infra/internal/servererrors"
)

func newBodyRequest(t *testing.T, body string) *http.Request {
	t.Helper()

	return httptest.NewRequest(
		http.MethodPost,
		"/",
		strings.NewReader(body),
	)
}

func TestParseJSONBody(t *testing.T) {
	t.Run("empty body yields empty map", func(t *testing.T) {
		body, err := ParseJSONBody(newBodyRequest(t, ""))
		require.NoError(t, err)
		assert.Empty(t, body)
	})

	t.Run("valid object", func(t *testing.T) {
		body, err := ParseJSONBody(newBodyRequest(t, `{"documento":"123"}`))
		require.NoError(t, err)
		assert.Equal(t, "123", body["documento"])
	})

	t.Run("invalid json fails with 422", func(t *testing.T) {
		_, err := ParseJSONBody(newBodyRequest(t, `{"documento":`))
		require.Error(t, err)

		var serverError *servererrors.ServerError
		require.True(t, errors.As(err, &serverError))
		assert.Equal(t, http.StatusUnprocessableEntity, serverError.StatusCode)
		assert.Equal(t, servererrors.ErrInvalidRequestBody.Error(), serverError.Error())
	})
}

func TestRequireField(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		value, err := RequireField(
			map[string]any{"documento": "  123  "},
			"documento",
			"obligatorio",
		)
		require.NoError(t, err)
		assert.Equal(t, "123", value)
	})

	t.Run("stringifies json numbers", func(t *testing.T) {
		value, err := RequireField(
			map[string]any{"documento": float64(123)},
			"documento",
			"obligatorio",
		)
		require.NoError(t, err)
		assert.Equal(t, "123", value)
	})

	for name, body := range map[string]map[string]any{
		"missing key":     {},
		"blank value":     {"documento": "   "},
		"non string kind": {"documento": []any{"123"}},
	} {
		t.Run(name+" fails with given message", func(t *testing.T) {
			_, err := RequireField(body, "documento", "obligatorio")
			require.Error(t, err)

			var serverError *servererrors.ServerError
			require.True(t, errors.As(err, &serverError))
			assert.Equal(t, http.StatusUnprocessableEntity, serverError.StatusCode)
			assert.Equal(t, "obligatorio", serverError.Error())
		})
	}
}

func TestOptionalField(t *testing.T) {
	assert.Nil(t, OptionalField(map[string]any{}, "telefono"))
	assert.Nil(t, OptionalField(map[string]any{"telefono": "  "}, "telefono"))

	value := OptionalField(map[string]any{"telefono": " 555 "}, "telefono")
	require.NotNil(t, value)
	assert.Equal(t, "555", *value)
}

func TestRequireIntField(t *testing.T) {
	t.Run("json number", func(t *testing.T) {
		value, err := RequireIntField(
			map[string]any{"precio": float64(15000)},
			"precio",
			"numérico",
		)
		require.NoError(t, err)
		assert.Equal(t, int64(15000), value)
	})

	t.Run("fractional number truncates", func(t *testing.T) {
		value, err := RequireIntField(
			map[string]any{"precio": 15.9},
			"precio",
			"numérico",
		)
		require.NoError(t, err)
		assert.Equal(t, int64(15), value)
	})

	t.Run("numeric string truncates", func(t *testing.T) {
		value, err := RequireIntField(
			map[string]any{"precio": " 15.9 "},
			"precio",
			"numérico",
		)
		require.NoError(t, err)
		assert.Equal(t, int64(15), value)
	})

	t.Run("negative values pass through", func(t *testing.T) {
		value, err := RequireIntField(
			map[string]any{"precio": float64(-1)},
			"precio",
			"numérico",
		)
		require.NoError(t, err)
		assert.Equal(t, int64(-1), value)
	})

	for name, body := range map[string]map[string]any{
		"missing key":        {},
		"blank value":        {"precio": ""},
		"non numeric string": {"precio": "abc"},
		"boolean":            {"precio": true},
	} {
		t.Run(name+" fails with given message", func(t *testing.T) {
			_, err := RequireIntField(body, "precio", "numérico")
			require.Error(t, err)

			var serverError *servererrors.ServerError
			require.True(t, errors.As(err, &serverError))
			assert.Equal(t, http.StatusUnprocessableEntity, serverError.StatusCode)
			assert.Equal(t, "numérico", serverError.Error())
		})
	}
}

func TestWriteSuccessJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteSuccessJSON(
		rec,
		http.StatusCreated,
		map[string]any{"message": "creado"},
	)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(
		t,
		"application/json; charset=utf-8",
		rec.Header().Get("Content-Type"),
	)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "creado", payload["message"])
}

func TestWriteErrorJSONMergesExtra(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteErrorJSON(
		rec,
		http.StatusConflict,
		"duplicado",
		map[string]any{"vendedor": map[string]any{"id_vendedor": float64(7)}},
	)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "duplicado", payload["message"])
	assert.Contains(t, payload, "vendedor")
}

func TestWriteJSONDoesNotEscapeUnicodeOrSlashes(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteJSON(
		rec,
		http.StatusOK,
		map[string]any{"message": "Método no permitido. a/b"},
	)
	require.NoError(t, err)

	assert.Contains(t, rec.Body.String(), "Método no permitido. a/b")
	assert.NotContains(t, rec.Body.String(), `\u`)
}
