package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shaadiAi/internal/events"
	"shaadiAi/internal/llm"
	"shaadiAi/internal/storage"
	"shaadiAi/internal/vision"
)

// scriptedClient answers each prompt by matching a marker substring.
type scriptedClient struct {
	responses map[string]string
	err       error
}

func (c *scriptedClient) Complete(_ context.Context, req llm.Request) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	for marker, response := range c.responses {
		if strings.Contains(req.Prompt, marker) {
			return response, nil
		}
	}
	return "", errors.New("no scripted response")
}

type fakeGenerator struct {
	handles []vision.ImageHandle
	err     error
	// failMarker, when set, fails only prompts containing it.
	failMarker string
	calls      int
}

func (g *fakeGenerator) Generate(_ context.Context, req vision.ImageRequest) ([]vision.ImageHandle, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	if g.failMarker != "" && strings.Contains(req.Prompt, g.failMarker) {
		return nil, errors.New("render rejected")
	}
	return g.handles, nil
}

func goodResponses() map[string]string {
	return map[string]string{
		"narrative summary":    `{"summary": "A royal celebration in Jaipur."}`,
		"wedding vendors":      `{"venue": ["V1", "V2", "V3"], "catering": ["C1"], "photography": ["P1"], "decor": ["D1"]}`,
		"wedding-day timeline": `{"timeline": [{"time": "4:30 PM", "event": "Ceremony"}]}`,
		"total wedding budget": `{"venue": 40, "catering": 30, "photography": 10, "decor": 20}`,
	}
}

func TestGenerateBlueprintAllSuccess(t *testing.T) {
	o := &Orchestrator{
		Text:   &scriptedClient{responses: goodResponses()},
		Images: &fakeGenerator{handles: []vision.ImageHandle{vision.URLHandle("https://cdn.example/img.png")}},
	}

	prefs := samplePrefs()
	prefs.BudgetRange = "Mid Range"
	bp := o.GenerateBlueprint(context.Background(), "plan-1", prefs)

	assert.Equal(t, "A royal celebration in Jaipur.", bp.Summary.Text)
	assert.Equal(t, []string{"V1", "V2", "V3"}, bp.Recommendations.Venue)
	require.Len(t, bp.Timeline, 1)
	assert.Equal(t, "Ceremony", bp.Timeline[0].Event)
	assert.Equal(t, int64(1000000), bp.BudgetBreakdown.Total)
	assert.Equal(t, int64(400000), bp.BudgetBreakdown.Venue)
	assert.Equal(t, "https://cdn.example/img.png", bp.CeremonyImage.URL)
	assert.Equal(t, "https://cdn.example/img.png", bp.ReceptionImage.URL)
	assert.Equal(t, "https://cdn.example/img.png", bp.DetailImage.URL)
}

func TestGenerateBlueprintTotalFailureStillPopulated(t *testing.T) {
	o := &Orchestrator{
		Text:   &scriptedClient{err: errors.New("provider down")},
		Images: &fakeGenerator{err: errors.New("provider down")},
	}

	bp := o.GenerateBlueprint(context.Background(), "plan-2", storage.Preferences{})

	assert.NotEmpty(t, bp.Summary.Text)
	assert.NotEmpty(t, bp.Recommendations.Venue)
	assert.NotEmpty(t, bp.Recommendations.Catering)
	assert.NotEmpty(t, bp.Recommendations.Photography)
	assert.NotEmpty(t, bp.Recommendations.Decor)
	assert.NotEmpty(t, bp.Timeline)
	assert.Equal(t, 100, bp.BudgetBreakdown.PctSum())
	assert.Equal(t, int64(1000000), bp.BudgetBreakdown.Total)
	assert.False(t, bp.CeremonyImage.Empty())
	assert.False(t, bp.ReceptionImage.Empty())
	assert.False(t, bp.DetailImage.Empty())
}

func TestGenerateBlueprintNilClients(t *testing.T) {
	o := &Orchestrator{}
	bp := o.GenerateBlueprint(context.Background(), "plan-3", storage.Preferences{})

	assert.NotEmpty(t, bp.Summary.Text)
	assert.NotEmpty(t, bp.Timeline)
	assert.False(t, bp.CeremonyImage.Empty())
	assert.Equal(t, 100, bp.BudgetBreakdown.PctSum())
}

func TestGenerateBlueprintMalformedBudgetFallsBack(t *testing.T) {
	responses := goodResponses()
	// Sums to 90, must be rejected in favor of the default allocation.
	responses["total wedding budget"] = `{"venue": 30, "catering": 25, "photography": 15, "decor": 20}`

	o := &Orchestrator{Text: &scriptedClient{responses: responses}}
	bp := o.GenerateBlueprint(context.Background(), "plan-4", storage.Preferences{BudgetRange: "Luxury"})

	assert.Equal(t, 35, bp.BudgetBreakdown.VenuePct)
	assert.Equal(t, 100, bp.BudgetBreakdown.PctSum())
	assert.Equal(t, int64(5000000), bp.BudgetBreakdown.Total)
	// An invalid budget response must not disturb the other sub-tasks.
	assert.Equal(t, "A royal celebration in Jaipur.", bp.Summary.Text)
}

func TestGenerateBlueprintSingleImageFailureIsIsolated(t *testing.T) {
	// Only the ceremony prompt mentions the mandap; failing on it leaves
	// the other two image sub-tasks untouched.
	o := &Orchestrator{
		Text: &scriptedClient{responses: goodResponses()},
		Images: &fakeGenerator{
			handles:    []vision.ImageHandle{vision.URLHandle("https://cdn.example/generated.png")},
			failMarker: "mandap",
		},
	}

	prefs := samplePrefs()
	bp := o.GenerateBlueprint(context.Background(), "plan-6", prefs)

	assert.Equal(t, FallbackImage(KindCeremonyImage, prefs), bp.CeremonyImage)
	assert.Equal(t, "https://cdn.example/generated.png", bp.ReceptionImage.URL)
	assert.Equal(t, "https://cdn.example/generated.png", bp.DetailImage.URL)
	assert.Equal(t, "A royal celebration in Jaipur.", bp.Summary.Text)
}

func TestGenerateBlueprintPublishesEvents(t *testing.T) {
	broker := events.NewBroker()
	ch := broker.Subscribe()
	defer broker.Unsubscribe(ch)

	o := &Orchestrator{
		Text:   &scriptedClient{responses: goodResponses()},
		Images: &fakeGenerator{handles: []vision.ImageHandle{vision.URLHandle("https://cdn.example/img.png")}},
		Events: broker,
	}
	o.GenerateBlueprint(context.Background(), "plan-5", samplePrefs())

	byState := map[string]int{}
	for len(ch) > 0 {
		evt := <-ch
		byState[evt.State]++
	}
	// One started and one terminal event per sub-task; all succeeded.
	assert.Equal(t, len(Subtasks), byState[events.StateStarted])
	assert.Equal(t, len(Subtasks), byState[events.StateGenerated])
	assert.Zero(t, byState[events.StateFallback])
}

func TestGenerateThemeImages(t *testing.T) {
	gen := &fakeGenerator{handles: []vision.ImageHandle{
		vision.URLHandle("https://cdn.example/a.png"),
		vision.URLHandle("https://cdn.example/b.png"),
	}}
	o := &Orchestrator{Images: gen}

	res := o.GenerateThemeImages(context.Background(), storage.Preferences{}, 2)
	assert.True(t, res.Success)
	assert.Empty(t, res.Error)
	require.Len(t, res.Images, 2)
	assert.Equal(t, []string{"https://cdn.example/a.png", "https://cdn.example/b.png"}, res.Sources)
	assert.Equal(t, 1, gen.calls)
}

func TestGenerateThemeImagesInlineSources(t *testing.T) {
	o := &Orchestrator{Images: &fakeGenerator{handles: []vision.ImageHandle{
		vision.InlineHandle("aGVsbG8=", "image/jpeg"),
	}}}

	res := o.GenerateThemeImages(context.Background(), storage.Preferences{}, 1)
	require.True(t, res.Success)
	require.Len(t, res.Sources, 1)
	assert.Equal(t, "data:image/jpeg;base64,aGVsbG8=", res.Sources[0])
}

func TestGenerateThemeImagesFailure(t *testing.T) {
	o := &Orchestrator{Images: &fakeGenerator{err: errors.New("quota exceeded")}}

	res := o.GenerateThemeImages(context.Background(), storage.Preferences{}, 3)
	assert.False(t, res.Success)
	assert.Equal(t, "quota exceeded", res.Error)
	require.Len(t, res.Images, 3)
	require.Len(t, res.Sources, 3)
	for i, img := range res.Images {
		assert.Equal(t, vision.HandleURL, img.Kind)
		assert.Equal(t, img.URL, res.Sources[i])
	}
}

func TestGenerateThemeImagesUnconfigured(t *testing.T) {
	o := &Orchestrator{}
	res := o.GenerateThemeImages(context.Background(), storage.Preferences{}, 0)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
	assert.Len(t, res.Images, 3)
}
