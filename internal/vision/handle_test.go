package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeHandle(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want ImageHandle
	}{
		{
			name: "plain https url",
			raw:  "https://images.example.com/mandap.jpg",
			want: ImageHandle{Kind: HandleURL, URL: "https://images.example.com/mandap.jpg"},
		},
		{
			name: "data url with mime",
			raw:  "data:image/jpeg;base64,AAAA",
			want: ImageHandle{Kind: HandleInline, Data: "AAAA", MIME: "image/jpeg"},
		},
		{
			name: "data url missing mime",
			raw:  "data:;base64,BBBB",
			want: ImageHandle{Kind: HandleInline, Data: "BBBB", MIME: "image/png"},
		},
		{
			name: "bare base64 payload",
			raw:  "Q0NDQw==",
			want: ImageHandle{Kind: HandleInline, Data: "Q0NDQw==", MIME: "image/png"},
		},
		{
			name: "surrounding whitespace",
			raw:  "  https://images.example.com/haldi.png \n",
			want: ImageHandle{Kind: HandleURL, URL: "https://images.example.com/haldi.png"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeHandle(tc.raw))
		})
	}
}

func TestDataURL(t *testing.T) {
	inline := InlineHandle("AAAA", "image/jpeg")
	assert.Equal(t, "data:image/jpeg;base64,AAAA", inline.DataURL())

	link := URLHandle("https://images.example.com/varmala.jpg")
	assert.Equal(t, "https://images.example.com/varmala.jpg", link.DataURL())
}

func TestAspectRatio(t *testing.T) {
	assert.Equal(t, "16:9", aspectRatio(1920, 1080))
	assert.Equal(t, "4:3", aspectRatio(1024, 768))
	assert.Equal(t, "1:1", aspectRatio(512, 512))
	assert.Equal(t, "3:4", aspectRatio(768, 1024))
	assert.Equal(t, "9:16", aspectRatio(1080, 1920))
	assert.Equal(t, "1:1", aspectRatio(0, 0))
}
