package media

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New(Config{
		CloudName:       "demo",
		APIKey:          "key-123",
		APISecret:       "secret",
		UploadBaseURL:   server.URL + "/v1_1",
		DeliveryBaseURL: "https://res.cloudinary.com",
	})
	client.now = func() time.Time { return time.Unix(1700000000, 0) }

	return client
}

func writeAsset(w http.ResponseWriter, publicID string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Asset{ //nolint:errcheck
		PublicID:  publicID,
		SecureURL: "https://res.cloudinary.com/demo/image/upload/" + publicID + ".png",
	})
}

func TestSign(t *testing.T) {
	params := map[string]string{
		"timestamp": "1315060510",
		"public_id": "sample_image",
		"eager":     "w_400,h_300,c_pad|w_260,h_200,c_crop",
		"api_key":   "ignored",
		"file":      "ignored",
	}

	// documented example signature for these params and secret "abcd"
	assert.Equal(t, "bfd09f95f331f558cbd1320e67aa8d488770583e", sign(params, "abcd"))
}

func TestUploadFile_WithTransformation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/image/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "key-123", r.FormValue("api_key"))
		assert.Equal(t, "1700000000", r.FormValue("timestamp"))
		assert.Equal(t, BackgroundRemovalTransformation, r.FormValue("transformation"))
		assert.Equal(t, "avatar", r.FormValue("public_id"))
		assert.Equal(t, sign(map[string]string{
			"timestamp":      "1700000000",
			"public_id":      "avatar",
			"transformation": BackgroundRemovalTransformation,
		}, "secret"), r.FormValue("signature"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close() //nolint:errcheck
		assert.Equal(t, "avatar.png", header.Filename)

		writeAsset(w, "avatar")
	})

	asset, err := client.UploadFile(context.Background(), "avatar.png", pngBytes, UploadOptions{
		PublicID:       "avatar",
		Transformation: BackgroundRemovalTransformation,
	})

	require.NoError(t, err)
	assert.Equal(t, "avatar", asset.PublicID)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/avatar.png", asset.SecureURL)
}

func TestUploadFile_RejectsNonImage(t *testing.T) {
	called := false
	client := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		called = true
	})

	_, err := client.UploadFile(context.Background(), "notes.txt", []byte("plain text, not an image"), UploadOptions{})

	require.ErrorIs(t, err, ErrUnsupportedMedia)
	assert.False(t, called)
}

func TestUploadDataURI(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.True(t, strings.HasPrefix(r.FormValue("file"), "data:image/png;base64,"))
		assert.NotEmpty(t, r.FormValue("public_id"), "a public id is generated when none is given")

		writeAsset(w, r.FormValue("public_id"))
	})

	asset, err := client.UploadDataURI(context.Background(), DataURI("image/png", pngBytes), UploadOptions{})

	require.NoError(t, err)
	assert.NotEmpty(t, asset.SecureURL)
}

func TestUpload_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid Signature"}}`)) //nolint:errcheck
	})

	_, err := client.UploadDataURI(context.Background(), DataURI("image/png", pngBytes), UploadOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid Signature")
}

func TestURL(t *testing.T) {
	client := New(Config{CloudName: "demo"})

	assert.Equal(t,
		"https://res.cloudinary.com/demo/image/upload/e_gen_remove:car/folder/abc123",
		client.URL("folder/abc123", "gen_remove:car"),
	)
	assert.Equal(t,
		"https://res.cloudinary.com/demo/image/upload/abc123",
		client.URL("abc123", ""),
	)
	assert.Equal(t,
		"https://res.cloudinary.com/demo/image/upload/e_gen_remove:red%20car/abc123",
		client.URL("abc123", "gen_remove:red car"),
	)
}

func TestDataURI(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", DataURI("image/png", pngBytes[:8]))
	assert.True(t, strings.HasPrefix(DataURI("", pngBytes), "data:image/png;base64,"))
}
