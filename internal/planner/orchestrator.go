package planner

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"shaadiAi/internal/budget"
	"shaadiAi/internal/events"
	"shaadiAi/internal/llm"
	"shaadiAi/internal/media"
	"shaadiAi/internal/storage"
	"shaadiAi/internal/vision"
)

// Per-sub-task generation parameters. Factual outputs run cooler than
// creative ones.
var textParams = map[Kind]struct {
	Temperature float64
	MaxTokens   int
}{
	KindSummary:         {Temperature: 0.7, MaxTokens: 400},
	KindRecommendations: {Temperature: 0.6, MaxTokens: 600},
	KindTimeline:        {Temperature: 0.4, MaxTokens: 800},
	KindBudgetSplit:     {Temperature: 0.2, MaxTokens: 300},
}

const (
	imageWidth  = 1024
	imageHeight = 768
)

// Orchestrator fans a blueprint request out into independent sub-tasks and
// merges their results. A failed sub-task degrades to its fallback; it never
// fails the run.
type Orchestrator struct {
	Text     llm.Client
	Images   vision.Generator
	Uploader media.Uploader
	Events   *events.Broker
}

// GenerateBlueprint runs every sub-task concurrently and returns a fully
// populated blueprint. Each slot holds either generated content or the
// deterministic fallback for the preferences.
func (o *Orchestrator) GenerateBlueprint(ctx context.Context, planKey string, prefs storage.Preferences) Blueprint {
	prefs = applyDefaults(prefs)

	var (
		mu sync.Mutex
		bp Blueprint
	)
	g, gctx := errgroup.WithContext(ctx)

	runImage := func(kind Kind, slot *vision.ImageHandle) {
		g.Go(func() error {
			h := o.generateImage(gctx, planKey, kind, prefs)
			mu.Lock()
			*slot = h
			mu.Unlock()
			return nil
		})
	}
	runImage(KindCeremonyImage, &bp.CeremonyImage)
	runImage(KindReceptionImage, &bp.ReceptionImage)
	runImage(KindDetailImage, &bp.DetailImage)

	g.Go(func() error {
		s := o.generateSummary(gctx, planKey, prefs)
		mu.Lock()
		bp.Summary = s
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		r := o.generateRecommendations(gctx, planKey, prefs)
		mu.Lock()
		bp.Recommendations = r
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		t := o.generateTimeline(gctx, planKey, prefs)
		mu.Lock()
		bp.Timeline = t
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		b := o.generateBudget(gctx, planKey, prefs)
		mu.Lock()
		bp.BudgetBreakdown = b
		mu.Unlock()
		return nil
	})

	// Sub-task closures always return nil.
	_ = g.Wait()
	return bp
}

// GenerateThemeImages is the narrow image-only entry point. On any failure
// it reports success=false with stock imagery in place of generated output.
func (o *Orchestrator) GenerateThemeImages(ctx context.Context, prefs storage.Preferences, count int) ImagesResult {
	prefs = applyDefaults(prefs)
	if count <= 0 {
		count = 3
	}

	if o.Images == nil {
		return imagesResult(false, FallbackImages(prefs, count), "image generation not configured")
	}

	handles, err := o.Images.Generate(ctx, vision.ImageRequest{
		Prompt: buildThemeImagesPrompt(prefs),
		Count:  count,
		Width:  imageWidth,
		Height: imageHeight,
	})
	if err != nil || len(handles) == 0 {
		if err == nil {
			err = fmt.Errorf("backend returned no images")
		}
		log.Warn().Err(err).Str("theme", prefs.Theme.Name).Msg("theme image generation failed, using stock images")
		return imagesResult(false, FallbackImages(prefs, count), err.Error())
	}
	for i := range handles {
		handles[i] = o.promote(ctx, handles[i])
	}
	return imagesResult(true, handles, "")
}

func (o *Orchestrator) publish(planKey string, kind Kind, state string) {
	if o.Events == nil {
		return
	}
	o.Events.Publish(events.Event{PlanKey: planKey, Subtask: string(kind), State: state})
}

func (o *Orchestrator) generateImage(ctx context.Context, planKey string, kind Kind, prefs storage.Preferences) vision.ImageHandle {
	o.publish(planKey, kind, events.StateStarted)
	if o.Images == nil {
		o.publish(planKey, kind, events.StateFallback)
		return FallbackImage(kind, prefs)
	}

	handles, err := o.Images.Generate(ctx, vision.ImageRequest{
		Prompt: BuildPrompt(kind, prefs),
		Count:  1,
		Width:  imageWidth,
		Height: imageHeight,
	})
	if err != nil || len(handles) == 0 || handles[0].Empty() {
		log.Warn().Err(err).Str("subtask", string(kind)).Msg("image generation failed, using stock image")
		o.publish(planKey, kind, events.StateFallback)
		return FallbackImage(kind, prefs)
	}
	o.publish(planKey, kind, events.StateGenerated)
	return o.promote(ctx, handles[0])
}

func (o *Orchestrator) generateSummary(ctx context.Context, planKey string, prefs storage.Preferences) Summary {
	content, err := o.complete(ctx, planKey, KindSummary, prefs)
	if err == nil {
		if s, perr := parseSummary(content); perr == nil {
			o.publish(planKey, KindSummary, events.StateGenerated)
			return s
		} else {
			err = perr
		}
	}
	log.Warn().Err(err).Msg("summary generation failed, composing fallback")
	o.publish(planKey, KindSummary, events.StateFallback)
	return FallbackSummary(prefs)
}

func (o *Orchestrator) generateRecommendations(ctx context.Context, planKey string, prefs storage.Preferences) Recommendations {
	content, err := o.complete(ctx, planKey, KindRecommendations, prefs)
	if err == nil {
		if r, perr := parseRecommendations(content); perr == nil {
			o.publish(planKey, KindRecommendations, events.StateGenerated)
			return r
		} else {
			err = perr
		}
	}
	log.Warn().Err(err).Msg("recommendations generation failed, using vendor catalog")
	o.publish(planKey, KindRecommendations, events.StateFallback)
	return FallbackRecommendations(prefs)
}

func (o *Orchestrator) generateTimeline(ctx context.Context, planKey string, prefs storage.Preferences) []TimelineEntry {
	content, err := o.complete(ctx, planKey, KindTimeline, prefs)
	if err == nil {
		if t, perr := parseTimeline(content); perr == nil {
			o.publish(planKey, KindTimeline, events.StateGenerated)
			return t
		} else {
			err = perr
		}
	}
	log.Warn().Err(err).Msg("timeline generation failed, using standard run sheet")
	o.publish(planKey, KindTimeline, events.StateFallback)
	return FallbackTimeline(prefs)
}

func (o *Orchestrator) generateBudget(ctx context.Context, planKey string, prefs storage.Preferences) budget.Breakdown {
	content, err := o.complete(ctx, planKey, KindBudgetSplit, prefs)
	if err == nil {
		if b, perr := parseBudget(content, prefs.BudgetRange); perr == nil {
			o.publish(planKey, KindBudgetSplit, events.StateGenerated)
			return b
		} else {
			err = perr
		}
	}
	log.Warn().Err(err).Msg("budget split generation failed, using default allocation")
	o.publish(planKey, KindBudgetSplit, events.StateFallback)
	return FallbackBudget(prefs)
}

func (o *Orchestrator) complete(ctx context.Context, planKey string, kind Kind, prefs storage.Preferences) (string, error) {
	o.publish(planKey, kind, events.StateStarted)
	if o.Text == nil {
		return "", fmt.Errorf("text generation not configured")
	}
	params := textParams[kind]
	return o.Text.Complete(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      BuildPrompt(kind, prefs),
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
	})
}

// promote rewrites an inline handle to a hosted URL when an uploader is
// configured. Upload failures leave the inline handle untouched.
func (o *Orchestrator) promote(ctx context.Context, h vision.ImageHandle) vision.ImageHandle {
	if o.Uploader == nil || h.Kind != vision.HandleInline || h.Data == "" {
		return h
	}
	raw, err := base64.StdEncoding.DecodeString(h.Data)
	if err != nil {
		log.Warn().Err(err).Msg("inline image is not valid base64, keeping inline handle")
		return h
	}
	ext := ".png"
	if exts, _ := mime.ExtensionsByType(h.MIME); len(exts) > 0 {
		ext = exts[0]
	}
	res, err := o.Uploader.Upload(ctx, media.UploadInput{
		Filename:    uuid.NewString() + ext,
		ContentType: h.MIME,
		Body:        bytes.NewReader(raw),
		Size:        int64(len(raw)),
	})
	if err != nil {
		if err != media.ErrUploaderDisabled {
			log.Warn().Err(err).Msg("image upload failed, keeping inline handle")
		}
		return h
	}
	// Local uploads have no serving URL; the inline handle stays canonical.
	if res.URL == "" {
		return h
	}
	return vision.URLHandle(res.URL)
}
