// Copyright (c) 2026 NitikBatik. All rights reserved.

package classify_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/classify"
)

func newClassifier(t *testing.T) *classify.Classifier {
	t.Helper()
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/classify", r.URL.Path)
		_, header, err := r.FormFile("image")
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "motif.jpg", header.Filename)
		_, _ = io.WriteString(w, `{"status": true, "data": {"label": "kawung", "confidence": 0.93}}`)
	}))
	t.Cleanup(backend.Close)
	return classify.New(apiclient.New(backend.URL, time.Second))
}

/*
TestClassify_Result verifies the label and confidence are returned.
*/
func TestClassify_Result(t *testing.T) {
	result, err := newClassifier(t).Classify(context.Background(), apiclient.File{Name: "Motif.JPG", Body: strings.NewReader("jpg")})

	require.NoError(t, err)
	assert.Equal(t, "kawung", result.Label)
	assert.InDelta(t, 0.93, result.Confidence, 1e-9)
}

/*
TestClassify_Handler verifies the page endpoint requires an image and forwards it.
*/
func TestClassify_Handler(t *testing.T) {
	router := chi.NewRouter()
	router.Route("/classify", newClassifier(t).RegisterRoutes)

	// Missing file
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	_ = writer.WriteField("note", "x")
	_ = writer.Close()
	request := httptest.NewRequest(http.MethodPost, "/classify/", body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// With file
	body = &bytes.Buffer{}
	writer = multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("image", "motif.jpg")
	_, _ = part.Write([]byte("jpg"))
	_ = writer.Close()
	request = httptest.NewRequest(http.MethodPost, "/classify/", body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"label":"kawung"`)
}
