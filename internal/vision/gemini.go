package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

const defaultImageModel = "gemini-2.5-flash-image"

// GeminiGenerator renders wedding scenes via Gemini inline image outputs.
type GeminiGenerator struct {
	apiKey  string
	model   string
	timeout time.Duration
}

// NewGeminiGenerator constructs a generator able to request inline images.
func NewGeminiGenerator(apiKey, model string, timeout time.Duration) *GeminiGenerator {
	if strings.TrimSpace(model) == "" {
		model = defaultImageModel
	}
	model = strings.TrimPrefix(strings.TrimSpace(model), "models/")
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GeminiGenerator{
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
	}
}

// Generate requests req.Count rendered images for the given prompt.
func (g *GeminiGenerator) Generate(ctx context.Context, req ImageRequest) ([]ImageHandle, error) {
	if g == nil || strings.TrimSpace(g.apiKey) == "" {
		return nil, fmt.Errorf("vision: image generator unavailable")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("vision: empty prompt for rendering")
	}
	count := req.Count
	if count <= 0 {
		count = 1
	}

	childCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	client, err := genai.NewClient(childCtx, &genai.ClientConfig{
		APIKey: g.apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("vision: create genai client: %w", err)
	}

	prompt := fmt.Sprintf("%s\n\nRender as a single photorealistic image, %s aspect ratio.", req.Prompt, aspectRatio(req.Width, req.Height))

	handles := make([]ImageHandle, 0, count)
	for i := 0; i < count; i++ {
		resp, err := client.Models.GenerateContent(childCtx, g.model, genai.Text(prompt), nil)
		if err != nil {
			return nil, fmt.Errorf("vision: render failed: %w", err)
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			return nil, fmt.Errorf("vision: render returned no candidates")
		}

		for _, part := range resp.Candidates[0].Content.Parts {
			if part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			encoded := base64.StdEncoding.EncodeToString(part.InlineData.Data)
			handles = append(handles, InlineHandle(encoded, part.InlineData.MIMEType))
			break
		}
	}

	if len(handles) == 0 {
		return nil, fmt.Errorf("vision: render produced no image data")
	}
	return handles, nil
}
