package utils

import (
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtils_ShouldDownloadImage(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
		assert.NoError(png.Encode(w, img))
	}))
	defer srv.Close()

	f, err := DownloadImage(srv.URL)
	assert.NoError(err)
	defer os.Remove(f.Name())

	ctype, err := DetectContentType(f.Name())
	assert.NoError(err)
	assert.True(strings.Contains(ctype, "image"))
}

func TestUtils_ShouldRejectNonImageContent(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text response"))
	}))
	defer srv.Close()

	_, err := DownloadImage(srv.URL)
	assert.Error(err)
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsValidUrl("https://github.com/esimov/backdrop/"))
	assert.False(IsValidUrl("testdata/sample.jpg"))
	assert.False(IsValidUrl("not a url"))
}
