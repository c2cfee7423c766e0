package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomshop_server/lib"
)

// tiny valid PNG header, enough to pass content-type checks
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newUploadService(t *testing.T, handler http.HandlerFunc) *UploadService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := testConfig()
	cfg.Upload.ImgBBURL = srv.URL
	us := NewUploadService(testLogger(), cfg)
	us.SetClient(srv.Client())
	return us
}

func TestUploadSuccess(t *testing.T) {
	us := newUploadService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "test-key", r.PostFormValue("key"))
		assert.NotEmpty(t, r.PostFormValue("image"))
		assert.Equal(t, "photo.png", r.PostFormValue("name"))

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"display_url": "https://i.ibb.co/abc/photo.png",
				"delete_url":  "https://ibb.co/del/abc",
				"thumb":       map[string]any{"url": "https://i.ibb.co/abc/thumb.png"},
			},
		})
	})

	result, err := us.Upload(context.Background(), "photo.png", "image/png", pngBytes)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "https://i.ibb.co/abc/photo.png", result.URL)
	assert.Equal(t, "https://i.ibb.co/abc/thumb.png", result.Thumbnail)
	assert.Equal(t, "https://ibb.co/del/abc", result.DeleteURL)
}

func TestUploadRejectsNonImage(t *testing.T) {
	us := newUploadService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("the image host must not be called for rejected files")
	})

	_, err := us.Upload(context.Background(), "notes.txt", "text/plain", []byte("hello"))
	assert.ErrorIs(t, err, lib.ErrUnsupportedFileType)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	us := newUploadService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("the image host must not be called for rejected files")
	})

	big := make([]byte, 10*1024*1024+1)
	_, err := us.Upload(context.Background(), "big.png", "image/png", big)
	assert.ErrorIs(t, err, lib.ErrFileTooLarge)
}

func TestUploadWithoutAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.Upload.ImgBBAPIKey = ""
	us := NewUploadService(testLogger(), cfg)

	_, err := us.Upload(context.Background(), "photo.png", "image/png", pngBytes)
	assert.ErrorIs(t, err, lib.ErrUploadNotConfigured)
}

func TestUploadHostRejection(t *testing.T) {
	us := newUploadService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"status":  400,
			"error":   map[string]any{"message": "Invalid API key"},
		})
	})

	result, err := us.Upload(context.Background(), "photo.png", "image/png", pngBytes)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid API key", result.Error)
}

func TestUploadManyReportsPerFile(t *testing.T) {
	us := newUploadService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"display_url": "https://i.ibb.co/ok.png"},
		})
	})

	results, err := us.UploadMany(context.Background(), []UploadInput{
		{Filename: "a.png", ContentType: "image/png", Data: pngBytes},
		{Filename: "b.txt", ContentType: "text/plain", Data: []byte("nope")},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].Success)
	assert.Equal(t, "a.png", results[0].OriginalName)

	assert.False(t, results[1].Success)
	assert.Contains(t, results[1].Error, "image")
}
