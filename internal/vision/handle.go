package vision

import (
	"fmt"
	"strings"
)

// HandleKind discriminates the closed set of image payload variants a
// backend can hand back.
type HandleKind string

const (
	// HandleURL is a directly fetchable image URL.
	HandleURL HandleKind = "url"
	// HandleInline is base64 image bytes carried in the response itself.
	HandleInline HandleKind = "inline"
)

// ImageHandle is the normalized reference to one generated image. Backends
// resolve their payload shape into a handle exactly once; call sites never
// branch on what the backend returned.
type ImageHandle struct {
	Kind HandleKind `json:"kind"`
	URL  string     `json:"url,omitempty"`
	Data string     `json:"data,omitempty"`
	MIME string     `json:"mime,omitempty"`
}

// URLHandle wraps a fetchable image URL.
func URLHandle(u string) ImageHandle {
	return ImageHandle{Kind: HandleURL, URL: u}
}

// InlineHandle wraps base64-encoded image bytes.
func InlineHandle(data, mime string) ImageHandle {
	if strings.TrimSpace(mime) == "" {
		mime = "image/png"
	}
	return ImageHandle{Kind: HandleInline, Data: data, MIME: mime}
}

// DecodeHandle resolves a raw backend string into a handle. Data URLs and
// plain http(s) URLs are recognized; anything else is treated as bare
// base64 payload.
func DecodeHandle(raw string) ImageHandle {
	trimmed := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(trimmed, "data:"):
		mime, data := splitDataURL(trimmed)
		return InlineHandle(data, mime)
	case strings.HasPrefix(trimmed, "http://"), strings.HasPrefix(trimmed, "https://"):
		return URLHandle(trimmed)
	default:
		return InlineHandle(trimmed, "image/png")
	}
}

// DataURL renders an inline handle as a browser-displayable data URL.
// URL handles return their URL unchanged.
func (h ImageHandle) DataURL() string {
	if h.Kind == HandleURL {
		return h.URL
	}
	return fmt.Sprintf("data:%s;base64,%s", h.MIME, h.Data)
}

// Empty reports whether the handle carries no payload at all.
func (h ImageHandle) Empty() bool {
	return h.URL == "" && h.Data == ""
}

func splitDataURL(raw string) (mime, data string) {
	payload := strings.TrimPrefix(raw, "data:")
	parts := strings.SplitN(payload, ",", 2)
	if len(parts) != 2 {
		return "image/png", payload
	}
	mime = strings.TrimSuffix(parts[0], ";base64")
	if mime == "" {
		mime = "image/png"
	}
	return mime, parts[1]
}
