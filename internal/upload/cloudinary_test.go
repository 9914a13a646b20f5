package upload

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG signature plus IHDR chunk header
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
}

func TestCloudinary_Upload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/image/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "posters", r.FormValue("upload_preset"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "poster.png", hdr.Filename)
		got, _ := io.ReadAll(f)
		assert.Equal(t, pngBytes, got)

		_, _ = w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/image/upload/poster.png"}`))
	}))
	defer srv.Close()

	c := NewCloudinary("demo", "posters", srv.URL, 1<<20, time.Second)

	url, err := c.Upload(context.Background(), "poster.png", pngBytes)

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/poster.png", url)
}

func TestCloudinary_RejectsNonImage(t *testing.T) {
	c := NewCloudinary("demo", "posters", "http://127.0.0.1:1", 1<<20, time.Second)

	_, err := c.Upload(context.Background(), "poster.png", []byte("plain text pretending to be a png"))

	assert.ErrorIs(t, err, ErrNotImage)
}

func TestCloudinary_RejectsLargeFile(t *testing.T) {
	c := NewCloudinary("demo", "posters", "http://127.0.0.1:1", 8, time.Second)

	_, err := c.Upload(context.Background(), "poster.png", pngBytes)

	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestCloudinary_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	}))
	defer srv.Close()

	c := NewCloudinary("demo", "missing", srv.URL, 0, time.Second)

	_, err := c.Upload(context.Background(), "poster.png", pngBytes)

	assert.ErrorIs(t, err, ErrUploadFail)
	assert.Contains(t, err.Error(), "Upload preset not found")
}
