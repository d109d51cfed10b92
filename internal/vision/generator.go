package vision

import "context"

// ImageRequest describes one image generation call.
type ImageRequest struct {
	Prompt string
	Count  int
	Width  int
	Height int
}

// Generator is a single-attempt image generation primitive. A non-nil
// error is the only failure signal; the caller decides what to do with it.
type Generator interface {
	Generate(ctx context.Context, req ImageRequest) ([]ImageHandle, error)
}

// aspectRatio maps the requested dimensions onto the nearest ratio the
// backends accept.
func aspectRatio(width, height int) string {
	if width <= 0 || height <= 0 {
		return "1:1"
	}
	ratio := float64(width) / float64(height)
	switch {
	case ratio >= 1.55:
		return "16:9"
	case ratio >= 1.15:
		return "4:3"
	case ratio > 0.85:
		return "1:1"
	case ratio > 0.65:
		return "3:4"
	default:
		return "9:16"
	}
}
