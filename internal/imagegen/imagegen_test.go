package imagegen

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestGenerate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "clip-key", r.Header.Get("x-api-key"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "a red bicycle", r.FormValue("prompt"))

		w.Header().Set("Content-Type", "image/png")
		w.Write(pngHeader) //nolint:errcheck
	}))
	defer server.Close()

	client := New(Config{APIKey: "clip-key", Endpoint: server.URL})

	img, err := client.Generate(context.Background(), "a red bicycle")

	require.NoError(t, err)
	assert.Equal(t, pngHeader, img.Data)
	assert.Equal(t, "image/png", img.ContentType)
}

func TestGenerate_NonImageContentTypeIsSniffed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(pngHeader) //nolint:errcheck
	}))
	defer server.Close()

	client := New(Config{APIKey: "clip-key", Endpoint: server.URL})

	img, err := client.Generate(context.Background(), "a red bicycle")

	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)
}

func TestImageContentType(t *testing.T) {
	jpeg := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

	testCases := []struct {
		name   string
		header string
		data   []byte
		want   string
	}{
		{"image header", "image/webp", pngHeader, "image/webp"},
		{"image header with params", "image/jpeg; q=0.9", jpeg, "image/jpeg"},
		{"octet stream sniffed", "application/octet-stream", jpeg, "image/jpeg"},
		{"missing header sniffed", "", pngHeader, "image/png"},
		{"unrecognised bytes", "text/plain", []byte("not an image"), "image/png"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, imageContentType(tc.header, tc.data))
		})
	}
}

func TestGenerate_UpstreamFailure(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":"no credits"}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := New(Config{APIKey: "clip-key", Endpoint: server.URL})

	_, err := client.Generate(context.Background(), "anything")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 402")
	assert.Equal(t, 1, calls, "failed calls must not be retried")
}

func TestGenerate_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(Config{APIKey: "clip-key", Endpoint: server.URL})

	_, err := client.Generate(context.Background(), "anything")

	require.Error(t, err)
}
