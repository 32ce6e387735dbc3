package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/templevoice/call-gateway/internal/config"
	"github.com/templevoice/call-gateway/internal/observability"
)

const defaultAPIURL = "https://api.elevenlabs.io/v1/text-to-speech"

// ElevenLabsClient implements Synthesizer using the ElevenLabs TTS API
type ElevenLabsClient struct {
	apiKey     string
	apiURL     string
	voiceID    string
	modelID    string
	httpClient *http.Client
}

// ElevenLabsRequest represents the request payload for the ElevenLabs TTS API
type ElevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id,omitempty"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

// VoiceSettings holds the voice quality parameters. These are fixed across
// all requests; tuning per call is not supported.
type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// NewElevenLabsClient creates a new ElevenLabs TTS client
func NewElevenLabsClient(cfg *config.Config) *ElevenLabsClient {
	return &ElevenLabsClient{
		apiKey:     cfg.ElevenLabsAPIKey,
		apiURL:     defaultAPIURL,
		voiceID:    cfg.ElevenLabsVoiceID,
		modelID:    cfg.ElevenLabsModelID,
		httpClient: &http.Client{},
	}
}

// Synthesize converts text to MP3 audio bytes. A single attempt is made; any
// transport error or non-200 status collapses into ErrSynthesis.
func (c *ElevenLabsClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	logger := observability.GetLogger()

	reqBody := ElevenLabsRequest{
		Text:    text,
		ModelID: c.modelID,
		VoiceSettings: VoiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.apiURL, c.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("ElevenLabs request failed")
		return nil, ErrSynthesis
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("ElevenLabs API returned non-success status")
		return nil, ErrSynthesis
	}

	audioData, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error().Err(err).Msg("Error reading ElevenLabs audio response")
		return nil, ErrSynthesis
	}

	logger.Debug().Int("bytes", len(audioData)).Msg("Synthesized TTS audio")
	return audioData, nil
}
