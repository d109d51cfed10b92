package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"shaadiAi/internal/budget"
	"shaadiAi/internal/config"
	"shaadiAi/internal/events"
	"shaadiAi/internal/llm"
	"shaadiAi/internal/media"
	"shaadiAi/internal/planner"
	"shaadiAi/internal/schedule"
	"shaadiAi/internal/server"
	"shaadiAi/internal/storage"
	"shaadiAi/internal/vendors"
	"shaadiAi/internal/vision"
)

func main() {
	// Missing .env is fine in deployed environments.
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(cfg.LogLevel)

	ctx := context.Background()
	store, err := storage.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init store")
	}
	defer store.Close()

	uploader := newUploader(ctx, cfg.Media)
	textClient := newTextClient(cfg.AI)
	imageGenerator := newImageGenerator(cfg.AI)

	broker := events.NewBroker()
	orchestrator := &planner.Orchestrator{
		Text:     textClient,
		Images:   imageGenerator,
		Uploader: uploader,
		Events:   broker,
	}

	calendarClient, err := schedule.NewCalendarClient(ctx, cfg.Schedule)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init calendar client")
	}

	srv := server.New(cfg.Port,
		planner.Handler{Orchestrator: orchestrator, Store: store, Events: broker},
		budget.Handler{Store: store},
		vendors.Handler{},
		schedule.Handler{Calendar: calendarClient, Mail: schedule.NewEmailClient(cfg.Schedule)},
	)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan
		log.Info().Msg("shutting down server")
		if err := srv.Close(); err != nil {
			log.Error().Err(err).Msg("server close error")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func setupLogging(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

func newUploader(ctx context.Context, cfg config.MediaConfig) media.Uploader {
	if cfg.Bucket != "" && cfg.Region != "" {
		uploader, err := media.NewUploader(ctx, media.Config{
			Bucket:          cfg.Bucket,
			Region:          cfg.Region,
			Endpoint:        cfg.Endpoint,
			PublicURL:       cfg.PublicURL,
			KeyPrefix:       cfg.KeyPrefix,
			ForcePathStyle:  cfg.ForcePathStyle,
			AccessKeyID:     cfg.AccessKeyID,
			SecretAccessKey: cfg.SecretAccessKey,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init media uploader")
		}
		return uploader
	}

	uploader, err := media.NewLocalUploader("")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init local media storage")
	}
	log.Info().Msg("media uploader: using local temp storage (S3 config missing)")
	return uploader
}

// newTextClient selects the text backend. Nil means every text sub-task
// resolves from the deterministic fallbacks.
func newTextClient(cfg config.AIConfig) llm.Client {
	switch {
	case strings.EqualFold(cfg.TextProvider, "openai") && cfg.OpenAIAPIKey != "":
		log.Info().Str("model", cfg.OpenAIModel).Msg("text generation ready: OpenAI")
		return llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.Timeout())
	case cfg.GeminiAPIKey != "":
		log.Info().Str("model", cfg.GeminiTextModel).Msg("text generation ready: Gemini")
		return llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiTextModel, cfg.Timeout(), nil)
	default:
		log.Warn().Msg("no text provider configured, blueprints use fallback content")
		return nil
	}
}

// newImageGenerator selects the image backend, following the same
// nil-means-fallback convention.
func newImageGenerator(cfg config.AIConfig) vision.Generator {
	switch {
	case strings.EqualFold(cfg.ImageProvider, "vertex") && cfg.Vertex.ProjectID != "":
		log.Info().Str("model", cfg.Vertex.Model).Msg("image generation ready: Vertex Imagen")
		return vision.NewVertexImagen(vision.VertexImagenConfig{
			ProjectID:          cfg.Vertex.ProjectID,
			Location:           cfg.Vertex.Location,
			Model:              cfg.Vertex.Model,
			ServiceAccountJSON: cfg.Vertex.ServiceAccountJSON,
			Timeout:            cfg.Timeout(),
		})
	case cfg.GeminiAPIKey != "":
		log.Info().Str("model", cfg.GeminiImageModel).Msg("image generation ready: Gemini")
		return vision.NewGeminiGenerator(cfg.GeminiAPIKey, cfg.GeminiImageModel, cfg.Timeout())
	default:
		log.Warn().Msg("no image provider configured, blueprints use stock imagery")
		return nil
	}
}
