package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/landsetu/landsetu/internal/platform/logger"
	"github.com/landsetu/landsetu/internal/service"
)

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", service.NewValidationError(map[string]string{"title": "Title is required"}), http.StatusUnprocessableEntity},
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"unauthorized", service.ErrUnauthorized, http.StatusForbidden},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"transient", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, logger.NewNop(), tc.err)
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWriteError_ValidationBodyCarriesFieldErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, logger.NewNop(), service.NewValidationError(map[string]string{
		"pincode":          "Please enter a valid 6-digit pincode",
		"location.pincode": "Please enter a valid 6-digit pincode",
	}))

	var body struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Message)
	assert.Equal(t, "Please enter a valid 6-digit pincode", body.Errors["location.pincode"])
}

func TestWriteError_TransientHidesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, logger.NewNop(), errors.New("mongo: socket was unexpectedly closed"))

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Something went wrong. Please try again.", body["message"])
	assert.NotContains(t, rec.Body.String(), "mongo")
}
