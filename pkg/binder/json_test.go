package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kbrn/pkg/binder"
	"github.com/dmitrymomot/kbrn/pkg/brn"
)

type registerRequest struct {
	Name   string   `json:"name"`
	BRN    brn.BRN  `json:"brn"`
	Parent *brn.BRN `json:"parent,omitempty"`
}

func newJSONRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("binds body", func(t *testing.T) {
		t.Parallel()
		var result registerRequest
		err := binder.JSON()(newJSONRequest(`{"name":"acme","brn":"120-81-47521"}`), &result)

		require.NoError(t, err)
		assert.Equal(t, "acme", result.Name)
		assert.Equal(t, "1208147521", result.BRN.Digits())
		assert.Nil(t, result.Parent)
	})

	t.Run("keeps error kinds", func(t *testing.T) {
		t.Parallel()
		var result registerRequest
		err := binder.JSON()(newJSONRequest(`{"brn":"1208147520"}`), &result)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
		assert.ErrorIs(t, err, brn.ErrChecksumMismatch)

		err = binder.JSON()(newJSONRequest(`{"brn":null}`), &result)
		assert.ErrorIs(t, err, brn.ErrMalformed)
	})

	t.Run("strict decoding", func(t *testing.T) {
		t.Parallel()
		var result registerRequest
		assert.ErrorIs(t, binder.JSON()(newJSONRequest(`{"unknown":1}`), &result), binder.ErrInvalidJSON)
		assert.ErrorIs(t, binder.JSON()(newJSONRequest(``), &result), binder.ErrInvalidJSON)
		assert.ErrorIs(t, binder.JSON()(newJSONRequest(`{"brn":"1208147521"} {}`), &result), binder.ErrInvalidJSON)
	})

	t.Run("content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(`{}`))
		var result registerRequest
		assert.ErrorIs(t, binder.JSON()(req, &result), binder.ErrMissingContentType)

		req.Header.Set("Content-Type", "text/plain")
		assert.ErrorIs(t, binder.JSON()(req, &result), binder.ErrUnsupportedMediaType)
	})
}
