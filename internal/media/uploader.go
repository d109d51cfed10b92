package media

import (
	"context"
	"errors"
	"io"
)

// ErrUploaderDisabled indicates that uploads are not currently enabled.
var ErrUploaderDisabled = errors.New("media uploader disabled")

// Generated imagery defaults. Every payload passing through here is a
// rendered wedding scene, so PNG is the safe assumption.
const (
	defaultContentType = "image/png"
	defaultExt         = ".png"
)

// UploadInput wraps one generated image for persisting.
type UploadInput struct {
	Filename    string
	ContentType string
	Body        io.Reader
	Size        int64
}

// normalize fills image defaults for payloads missing metadata.
func (in UploadInput) normalize() UploadInput {
	if in.ContentType == "" {
		in.ContentType = defaultContentType
	}
	return in
}

// UploadResult captures the canonical object key and its accessible URL.
type UploadResult struct {
	Key string
	URL string
}

// Uploader hides the backing implementation for storing generated images.
type Uploader interface {
	Upload(ctx context.Context, input UploadInput) (UploadResult, error)
}

type disabledUploader struct{}

func (disabledUploader) Upload(_ context.Context, _ UploadInput) (UploadResult, error) {
	return UploadResult{}, ErrUploaderDisabled
}

// Disabled returns an uploader that always signals disabled uploads.
func Disabled() Uploader {
	return disabledUploader{}
}
