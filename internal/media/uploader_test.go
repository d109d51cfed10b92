package media

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadInputNormalize(t *testing.T) {
	norm := UploadInput{Filename: "scene"}.normalize()
	assert.Equal(t, "image/png", norm.ContentType)

	jpeg := UploadInput{Filename: "scene.jpg", ContentType: "image/jpeg"}.normalize()
	assert.Equal(t, "image/jpeg", jpeg.ContentType)
}

func TestLocalUploaderDefaultsToPNG(t *testing.T) {
	uploader, err := NewLocalUploader(t.TempDir())
	require.NoError(t, err)

	res, err := uploader.Upload(context.Background(), UploadInput{
		Filename: "ceremony-render",
		Body:     strings.NewReader("not really an image"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(res.Key, ".png"), "key %q should carry the image extension", res.Key)
	assert.Empty(t, res.URL, "local uploads have no serving URL")

	data, err := os.ReadFile(res.Key)
	require.NoError(t, err)
	assert.Equal(t, "not really an image", string(data))
}

func TestDisabledUploader(t *testing.T) {
	_, err := Disabled().Upload(context.Background(), UploadInput{Filename: "x.png"})
	assert.ErrorIs(t, err, ErrUploaderDisabled)
}
