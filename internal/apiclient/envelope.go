// Copyright (c) 2026 NitikBatik. All rights reserved.

package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/pagination"
)

// envelope is the response wrapper used by every backend endpoint.
type envelope struct {
	Status  *bool           `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// text returns the human-readable message, preferring "message".
func (env envelope) text() string {
	if msg := strings.TrimSpace(env.Message); msg != "" {
		return msg
	}
	return strings.TrimSpace(env.Error)
}

// Page is the data of a list endpoint: {items[], pagination}.
type Page[T any] struct {
	Items      []T               `json:"items"`
	Pagination pagination.Cursor `json:"pagination"`
}

// decode reads a successful response. A status:false envelope is a failure even on 2xx.
func decode(body io.Reader, out any) error {
	raw, err := io.ReadAll(body)
	if err != nil {
		return apperr.Transport(fmt.Errorf("read response: %w", err))
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return apperr.BadResponse(fmt.Errorf("decode envelope: %w", err))
	}

	if env.Status != nil && !*env.Status {
		return apperr.Rejected(env.text())
	}

	if out == nil || len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return apperr.BadResponse(fmt.Errorf("decode data: %w", err))
	}

	return nil
}
