package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printperfect-backend/internal/models"
)

func TestGetImage_InvalidID(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req, _ := http.NewRequest("GET", "/api/images/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid image id")
}

func TestGetImage_NotFound(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req, _ := http.NewRequest("GET", "/api/images/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetImage_RepeatedReadsAreIdentical(t *testing.T) {
	router, repo, _ := newTestRouter(t)

	_, err := repo.CreateImage(&models.Image{
		FileName:         "abc123.png",
		OriginalFileName: "vacation.png",
		MimeType:         "image/png",
		SizeMb:           "2.1",
		UploadedAt:       "2025-06-01T12:00:00Z",
	})
	require.NoError(t, err)

	var first []byte
	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest("GET", "/api/images/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		if first == nil {
			first = w.Body.Bytes()
			continue
		}
		assert.Equal(t, first, w.Body.Bytes())
	}

	var image models.Image
	require.NoError(t, json.Unmarshal(first, &image))
	assert.Equal(t, "abc123.png", image.FileName)
}

func TestGetImageFile_ServesStoredBytes(t *testing.T) {
	router, _, files := newTestRouter(t)

	data := makePNG(t)
	require.NoError(t, files.Save("abc123.png", data))

	req, _ := http.NewRequest("GET", "/api/images/file/abc123.png", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, data, w.Body.Bytes())
}

func TestGetImageFile_Missing(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req, _ := http.NewRequest("GET", "/api/images/file/nope.png", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
