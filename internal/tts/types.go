package tts

import (
	"context"
	"errors"
)

// ErrSynthesis is the uniform failure returned for any synthesis problem,
// whether a transport error or a non-success provider status. The
// distinguishing detail is logged by the client and never shown to callers.
var ErrSynthesis = errors.New("speech synthesis failed")

// Synthesizer converts text to encoded audio bytes.
type Synthesizer interface {
	// Synthesize converts text to speech and returns the audio data.
	// The audio is in the provider's default compressed format (MP3).
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
