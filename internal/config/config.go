package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration values. Clients receive the relevant
// sub-config at construction; logic modules never read the environment.
type Config struct {
	Port        string `envconfig:"APP_PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	AI       AIConfig
	Media    MediaConfig
	Schedule ScheduleConfig
}

// AIConfig selects and configures the generative backends.
type AIConfig struct {
	TextProvider  string `envconfig:"AI_TEXT_PROVIDER" default:"gemini"`
	ImageProvider string `envconfig:"AI_IMAGE_PROVIDER" default:"gemini"`

	GeminiAPIKey     string `envconfig:"GEMINI_API_KEY"`
	GeminiTextModel  string `envconfig:"GEMINI_TEXT_MODEL" default:"gemini-1.5-pro-latest"`
	GeminiImageModel string `envconfig:"GEMINI_IMAGE_MODEL" default:"gemini-2.5-flash-image"`

	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel  string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`

	Vertex VertexConfig

	TimeoutSeconds int `envconfig:"AI_TIMEOUT_SECONDS" default:"45"`
}

// VertexConfig configures the Vertex AI Imagen backend.
type VertexConfig struct {
	ProjectID          string `envconfig:"VERTEX_PROJECT_ID"`
	Location           string `envconfig:"VERTEX_LOCATION" default:"us-central1"`
	Model              string `envconfig:"VERTEX_IMAGEN_MODEL" default:"imagegeneration@006"`
	ServiceAccountJSON string `envconfig:"VERTEX_SERVICE_ACCOUNT_JSON"`
}

// MediaConfig describes S3/media related configuration.
type MediaConfig struct {
	Bucket          string `envconfig:"S3_BUCKET"`
	Region          string `envconfig:"S3_REGION"`
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	PublicURL       string `envconfig:"S3_PUBLIC_URL"`
	KeyPrefix       string `envconfig:"S3_KEY_PREFIX"`
	ForcePathStyle  bool   `envconfig:"S3_FORCE_PATH_STYLE"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
}

// ScheduleConfig configures the calendar and mail provider wrappers.
type ScheduleConfig struct {
	CalendarID          string `envconfig:"GOOGLE_CALENDAR_ID"`
	CalendarCredentials string `envconfig:"GOOGLE_CALENDAR_CREDENTIALS_JSON"`
	MailEndpoint        string `envconfig:"MAIL_API_ENDPOINT"`
	MailAPIKey          string `envconfig:"MAIL_API_KEY"`
	MailFrom            string `envconfig:"MAIL_FROM" default:"planner@shaadiai.app"`
}

// FromEnv loads configuration from environment variables and applies defaults.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env config: %w", err)
	}
	return cfg, nil
}

// Timeout returns the bounded wait applied to every generation call.
func (c AIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 45 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
