package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Set required environment variables
	os.Setenv("TWILIO_PHONE_NUMBER", "+15185550100")
	os.Setenv("ELEVEN_LABS_API_KEY", "test-eleven-key")
	defer os.Unsetenv("TWILIO_PHONE_NUMBER")
	defer os.Unsetenv("ELEVEN_LABS_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.TwilioPhoneNumber != "+15185550100" {
		t.Errorf("Expected TwilioPhoneNumber '+15185550100', got '%s'", cfg.TwilioPhoneNumber)
	}

	if cfg.ElevenLabsAPIKey != "test-eleven-key" {
		t.Errorf("Expected ElevenLabsAPIKey 'test-eleven-key', got '%s'", cfg.ElevenLabsAPIKey)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	// Clear environment variables
	os.Unsetenv("TWILIO_PHONE_NUMBER")
	os.Unsetenv("ELEVEN_LABS_API_KEY")

	_, err := LoadFromEnv()
	if err == nil {
		t.Error("Expected error when required keys are missing")
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	os.Setenv("TWILIO_PHONE_NUMBER", "+15185550100")
	os.Unsetenv("ELEVEN_LABS_API_KEY")
	defer os.Unsetenv("TWILIO_PHONE_NUMBER")

	_, err := LoadFromEnv()
	if err == nil {
		t.Error("Expected error when ELEVEN_LABS_API_KEY is missing")
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Setenv("TWILIO_PHONE_NUMBER", "+15185550100")
	os.Setenv("ELEVEN_LABS_API_KEY", "test-eleven-key")
	defer os.Unsetenv("TWILIO_PHONE_NUMBER")
	defer os.Unsetenv("ELEVEN_LABS_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Port != "8080" {
		t.Errorf("Expected default Port '8080', got '%s'", cfg.Port)
	}

	if cfg.ElevenLabsVoiceID != "cgSgspJ2msm6clMCkdW9" {
		t.Errorf("Expected default ElevenLabsVoiceID 'cgSgspJ2msm6clMCkdW9', got '%s'", cfg.ElevenLabsVoiceID)
	}

	if cfg.ElevenLabsModelID != "eleven_multilingual_v2" {
		t.Errorf("Expected default ElevenLabsModelID 'eleven_multilingual_v2', got '%s'", cfg.ElevenLabsModelID)
	}

	if cfg.AudioDir != "audio" {
		t.Errorf("Expected default AudioDir 'audio', got '%s'", cfg.AudioDir)
	}

	if cfg.SessionSecret != "supersecretkey" {
		t.Errorf("Expected default SessionSecret 'supersecretkey', got '%s'", cfg.SessionSecret)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default LogLevel 'info', got '%s'", cfg.LogLevel)
	}

	if !cfg.MetricsEnabled {
		t.Error("Expected MetricsEnabled to default to true")
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("TWILIO_PHONE_NUMBER", "+15185550100")
	os.Setenv("ELEVEN_LABS_API_KEY", "test-eleven-key")
	os.Setenv("ELEVEN_LABS_VOICE_ID", "custom-voice")
	defer os.Unsetenv("TWILIO_PHONE_NUMBER")
	defer os.Unsetenv("ELEVEN_LABS_API_KEY")
	defer os.Unsetenv("ELEVEN_LABS_VOICE_ID")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() failed: %v", err)
	}

	if cfg.ElevenLabsVoiceID != "custom-voice" {
		t.Errorf("Expected ElevenLabsVoiceID 'custom-voice', got '%s'", cfg.ElevenLabsVoiceID)
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_KEY", "test-value")
	defer os.Unsetenv("TEST_KEY")

	value := GetEnv("TEST_KEY", "default")
	if value != "test-value" {
		t.Errorf("Expected 'test-value', got '%s'", value)
	}

	value = GetEnv("NON_EXISTENT_KEY", "default")
	if value != "default" {
		t.Errorf("Expected 'default', got '%s'", value)
	}
}
