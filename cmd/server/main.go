package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/templevoice/call-gateway/internal/blobstore"
	"github.com/templevoice/call-gateway/internal/config"
	"github.com/templevoice/call-gateway/internal/observability"
	"github.com/templevoice/call-gateway/internal/session"
	"github.com/templevoice/call-gateway/internal/telephony"
	"github.com/templevoice/call-gateway/internal/tts"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Use fmt for fatal errors before logger is initialized
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	observability.InitLogger(cfg.LogLevel, cfg.LogPretty)
	logger := observability.GetLogger()

	logger.Info().
		Str("port", cfg.Port).
		Str("phone_number", cfg.TwilioPhoneNumber).
		Str("voice_id", cfg.ElevenLabsVoiceID).
		Str("audio_dir", cfg.AudioDir).
		Str("log_level", cfg.LogLevel).
		Bool("metrics_enabled", cfg.MetricsEnabled).
		Msg("Call Gateway Service starting")

	// Wire the call flow
	synth := tts.NewElevenLabsClient(cfg)
	blobs := blobstore.NewFileStore(cfg.AudioDir)
	sessions := session.NewStore()
	handler := telephony.NewHandler(cfg, synth, blobs, sessions)

	mux := telephony.NewRouter(handler)

	// Health check endpoint
	mux.HandleFunc("/health", observability.HealthCheckHandler())

	// Readiness endpoint
	mux.HandleFunc("/ready", observability.ReadinessHandler(map[string]observability.HealthCheckFunc{
		"elevenlabs": func(ctx context.Context) (bool, error) {
			// Config-only check; no API call, synthesis is paid per request
			if cfg.ElevenLabsAPIKey == "" {
				return false, fmt.Errorf("missing ElevenLabs API key")
			}
			return true, nil
		},
		"blobstore": func(ctx context.Context) (bool, error) {
			if err := os.MkdirAll(cfg.AudioDir, 0o755); err != nil {
				return false, fmt.Errorf("audio dir not writable: %w", err)
			}
			probe := filepath.Join(cfg.AudioDir, ".ready")
			if err := os.WriteFile(probe, nil, 0o644); err != nil {
				return false, fmt.Errorf("audio dir not writable: %w", err)
			}
			os.Remove(probe)
			return true, nil
		},
	}))

	// Metrics endpoint (Prometheus)
	if cfg.MetricsEnabled {
		mux.Handle("/metrics", promhttp.Handler())
		logger.Info().Msg("Prometheus metrics enabled at /metrics")
	}

	// Create HTTP server with timeouts
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		endpoint := fmt.Sprintf("http://localhost:%s/voice", cfg.Port)
		if cfg.CallGatewayURL != "" {
			endpoint = cfg.CallGatewayURL + "/voice"
		}
		logger.Info().
			Str("port", cfg.Port).
			Str("webhook", endpoint).
			Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited gracefully")
}
