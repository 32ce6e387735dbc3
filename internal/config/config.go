package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the call gateway service
type Config struct {
	// Server configuration
	Port string `envconfig:"PORT" default:"8080"`

	// Public base URL for this service (e.g. https://xxx.ngrok-free.dev when behind ngrok).
	// Playback URLs embedded in TwiML are relative, so this is only used for logging.
	CallGatewayURL string `envconfig:"CALL_GATEWAY_URL" default:""`

	// Twilio configuration
	TwilioPhoneNumber string `envconfig:"TWILIO_PHONE_NUMBER" required:"true"`

	// ElevenLabs TTS API configuration
	ElevenLabsAPIKey  string `envconfig:"ELEVEN_LABS_API_KEY" required:"true"`
	ElevenLabsVoiceID string `envconfig:"ELEVEN_LABS_VOICE_ID" default:"cgSgspJ2msm6clMCkdW9"` // Default voice ID
	ElevenLabsModelID string `envconfig:"ELEVEN_LABS_MODEL_ID" default:"eleven_multilingual_v2"`

	// Session signing secret (kept from the cookie-session variant of this service)
	SessionSecret string `envconfig:"SESSION_SECRET" default:"supersecretkey"`

	// Audio blob storage
	AudioDir string `envconfig:"AUDIO_DIR" default:"audio"` // Flat directory for synthesized audio files

	// Observability configuration
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`       // Log level: debug, info, warn, error
	LogPretty      bool   `envconfig:"LOG_PRETTY" default:"false"`     // Pretty print logs (for development)
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"` // Enable Prometheus metrics
}

// Load reads configuration from environment variables
// It first attempts to load from .env file if it exists, then from environment
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	return LoadFromEnv()
}

// LoadFromEnv loads configuration directly from environment variables
// without attempting to load .env file (useful for containerized deployments)
func LoadFromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Validate required fields
	if cfg.TwilioPhoneNumber == "" {
		return nil, fmt.Errorf("TWILIO_PHONE_NUMBER is required")
	}
	if cfg.ElevenLabsAPIKey == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_API_KEY is required")
	}

	return &cfg, nil
}

// GetEnv returns the value of an environment variable or a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
