// Copyright (c) 2026 NitikBatik. All rights reserved.

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/constants"
)

/*
TestFromStatus covers the upstream status classification table.
*/
func TestFromStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		message    string
		wantCode   string
		wantStatus int
		wantMsg    string
	}{
		{"unauthorized", http.StatusUnauthorized, "token expired", apperr.CodeUnauthorized, http.StatusUnauthorized, "token expired"},
		{"forbidden", http.StatusForbidden, "", apperr.CodeForbidden, http.StatusForbidden, "Anda tidak memiliki akses"},
		{"not_found", http.StatusNotFound, "Produk tidak ada", apperr.CodeNotFound, http.StatusNotFound, "Produk tidak ada"},
		{"bad_request", http.StatusBadRequest, "nama wajib diisi", apperr.CodeUpstreamRejected, http.StatusBadRequest, "nama wajib diisi"},
		{"server_error_with_message", http.StatusInternalServerError, "db down", apperr.CodeUpstream, http.StatusBadGateway, "db down"},
		{"server_error_blank", http.StatusInternalServerError, "   ", apperr.CodeUpstream, http.StatusBadGateway, constants.GenericServerMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apperr.FromStatus(tt.status, tt.message)

			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.wantStatus, err.HTTPStatus)
			assert.Equal(t, tt.wantMsg, err.Message)
			assert.Error(t, err.Cause)
		})
	}
}

/*
TestTransport_UsesGenericMessage ensures network failures never leak their cause.
*/
func TestTransport_UsesGenericMessage(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:8081: connection refused")
	err := apperr.Transport(cause)

	assert.Equal(t, constants.GenericTransportMessage, err.Error())
	assert.ErrorIs(t, err, cause)
}

/*
TestHelpers verifies extraction through wrapped chains.
*/
func TestHelpers(t *testing.T) {
	wrapped := fmt.Errorf("product store: %w", apperr.NotFound("Produk"))

	require.True(t, apperr.IsAppError(wrapped))
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeNotFound))
	assert.False(t, apperr.HasCode(wrapped, apperr.CodeTransport))
	assert.Equal(t, "Produk not found", apperr.Message(wrapped))

	assert.Equal(t, "", apperr.Message(nil))
	assert.Equal(t, constants.GenericServerMessage, apperr.Message(errors.New("boom")))
	assert.Nil(t, apperr.As(errors.New("plain")))
}
