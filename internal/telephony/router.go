package telephony

import "net/http"

// NewRouter registers the webhook surface on a fresh mux.
func NewRouter(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("POST /voice", h.Voice)
	mux.HandleFunc("POST /gather", h.Gather)
	mux.HandleFunc("POST /process_speech", h.ProcessSpeech)
	mux.HandleFunc("GET /stream_audio/{filename}", h.StreamAudio)

	return mux
}
