package tts

import "context"

type mockSynth struct {
	audio []byte
	err   error
}

// NewMockSynth returns a Synthesizer that always yields the given audio,
// or err if non-nil. Used in handler tests.
func NewMockSynth(audio []byte, err error) Synthesizer {
	return &mockSynth{audio: audio, err: err}
}

func (m *mockSynth) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.audio, nil
}
