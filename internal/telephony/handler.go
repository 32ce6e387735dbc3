// Package telephony implements the Twilio-facing webhook surface: the
// call-start, gather and process-speech TwiML endpoints plus audio playback.
package telephony

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/templevoice/call-gateway/internal/blobstore"
	"github.com/templevoice/call-gateway/internal/config"
	"github.com/templevoice/call-gateway/internal/observability"
	"github.com/templevoice/call-gateway/internal/session"
	"github.com/templevoice/call-gateway/internal/tts"
	"github.com/templevoice/call-gateway/internal/twiml"
)

const (
	welcomeMessage   = "Welcome to the Albany Hindu Temple Call Handling System"
	apologySynthesis = "Sorry, I couldn't process your request."
	apologyGeneric   = "An application error occurred. Please try again later."
	promptRepeat     = "I didn't catch that. Could you repeat?"

	gatherPath        = "/gather"
	processSpeechPath = "/process_speech"
	streamAudioPath   = "/stream_audio/"

	audioContentType = "audio/mpeg"
	twimlContentType = "application/xml"
)

// fallbackTwiML is written verbatim if TwiML rendering itself fails.
const fallbackTwiML = `<?xml version="1.0" encoding="UTF-8"?>` +
	`<Response><Say>An application error occurred. Please try again later.</Say></Response>`

// Handler orchestrates the per-call conversation flow: it translates Twilio
// webhook events into TwiML responses, driving the session store, speech
// synthesizer and blob store.
type Handler struct {
	cfg      *config.Config
	synth    tts.Synthesizer
	blobs    blobstore.Store
	sessions *session.Store
}

// NewHandler creates a call flow handler.
func NewHandler(cfg *config.Config, synth tts.Synthesizer, blobs blobstore.Store, sessions *session.Store) *Handler {
	return &Handler{
		cfg:      cfg,
		synth:    synth,
		blobs:    blobs,
		sessions: sessions,
	}
}

// Index handles GET / with a plain-text welcome string.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, welcomeMessage)
}

// Voice handles the initial call webhook: it resets the session for this
// call, synthesizes the greeting, stores the audio and directs Twilio to
// play it before redirecting into the gather loop.
func (h *Handler) Voice(w http.ResponseWriter, r *http.Request) {
	callSid := h.callSid(r)
	logger := observability.WithCallSid(callSid)
	logger.Info().Msg("Incoming call to /voice endpoint")

	observability.RecordCallStart()

	resp, err := h.handleVoice(r, callSid)
	if err != nil {
		observability.RecordWebhook("voice", false)
		if errors.Is(err, tts.ErrSynthesis) {
			logger.Warn().Err(err).Msg("Greeting synthesis failed")
			h.writeTwiML(w, twiml.NewResponse().Say(apologySynthesis))
			return
		}
		observability.RecordError("voice_flow", "telephony")
		logger.Error().Err(err).Msg("Error in /voice")
		h.writeTwiML(w, twiml.NewResponse().Say(apologyGeneric))
		return
	}

	observability.RecordWebhook("voice", true)
	h.writeTwiML(w, resp)
}

func (h *Handler) handleVoice(r *http.Request, callSid string) (*twiml.Response, error) {
	sess := h.sessions.Create(callSid)

	audio, err := h.synthesize(r, sess.Greeting())
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s_initial_message.mp3", sess.ID)
	if err := h.blobs.Put(key, audio); err != nil {
		observability.RecordBlobWrite(false)
		return nil, err
	}
	observability.RecordBlobWrite(true)

	return twiml.NewResponse().
		Play(streamAudioPath + key).
		Redirect(gatherPath), nil
}

// Gather handles the redirect from Voice or ProcessSpeech: it opens a
// speech-capture window routed to the process-speech action.
func (h *Handler) Gather(w http.ResponseWriter, r *http.Request) {
	logger := observability.WithCallSid(h.callSid(r))
	logger.Debug().Msg("Processing /gather endpoint")

	observability.RecordWebhook("gather", true)
	h.writeTwiML(w, twiml.NewResponse().GatherSpeech(processSpeechPath))
}

// ProcessSpeech handles the speech transcript delivered by Twilio. A
// non-empty transcript appends a user and an assistant turn, synthesizes the
// reply and plays it; an empty one asks the caller to repeat. Both paths
// redirect back into the gather loop.
func (h *Handler) ProcessSpeech(w http.ResponseWriter, r *http.Request) {
	callSid := h.callSid(r)
	logger := observability.WithCallSid(callSid)

	resp, err := h.handleProcessSpeech(r, callSid)
	if err != nil {
		observability.RecordWebhook("process_speech", false)
		observability.RecordError("process_speech_flow", "telephony")
		logger.Error().Err(err).Msg("Error in /process_speech")
		h.writeTwiML(w, twiml.NewResponse().Say(apologyGeneric))
		return
	}

	observability.RecordWebhook("process_speech", true)
	h.writeTwiML(w, resp)
}

func (h *Handler) handleProcessSpeech(r *http.Request, callSid string) (*twiml.Response, error) {
	logger := observability.WithCallSid(callSid)

	speechResult := r.FormValue("SpeechResult")
	if speechResult == "" {
		// No transcript: ask the caller to repeat, session untouched
		return twiml.NewResponse().
			Say(promptRepeat).
			Redirect(gatherPath), nil
	}

	sess := h.sessions.Get(callSid)
	if sess == nil {
		// Gather can reach us without a preceding /voice (e.g. after a
		// process restart mid-call); start a fresh session rather than fail
		logger.Warn().Msg("No session for call, creating one")
		sess = h.sessions.Create(callSid)
	}

	reply := fmt.Sprintf("You said: %s. How can I assist further?", speechResult)
	h.sessions.Append(callSid, session.Turn{Role: session.RoleUser, Content: speechResult})
	h.sessions.Append(callSid, session.Turn{Role: session.RoleAssistant, Content: reply})

	resp := twiml.NewResponse()

	audio, err := h.synthesize(r, reply)
	if err != nil {
		// Degrade to a silent turn: skip playback but keep the call alive
		logger.Warn().Err(err).Msg("Reply synthesis failed, skipping playback")
	} else {
		key := fmt.Sprintf("%s_response.mp3", sess.ID)
		if err := h.blobs.Put(key, audio); err != nil {
			observability.RecordBlobWrite(false)
			return nil, err
		}
		observability.RecordBlobWrite(true)
		resp.Play(streamAudioPath + key)
	}

	return resp.Redirect(gatherPath), nil
}

// StreamAudio serves stored audio blobs back to Twilio. Any failure yields
// a plain 404; detail stays in the logs.
func (h *Handler) StreamAudio(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")
	logger := observability.GetLogger()

	data, err := h.blobs.Get(filename)
	if err != nil {
		observability.RecordBlobRead(false)
		if !errors.Is(err, blobstore.ErrNotFound) {
			observability.RecordError("blob_read", "telephony")
		}
		logger.Warn().Err(err).Str("filename", filename).Msg("Audio lookup failed")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "Audio not found")
		return
	}

	observability.RecordBlobRead(true)
	observability.RecordAudioBytesServed(int64(len(data)))
	w.Header().Set("Content-Type", audioContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// synthesize wraps the TTS call with latency and status metrics.
func (h *Handler) synthesize(r *http.Request, text string) ([]byte, error) {
	start := time.Now()
	audio, err := h.synth.Synthesize(r.Context(), text)
	observability.RecordTTS(start, err == nil)
	return audio, err
}

// callSid returns Twilio's call identifier, the sole session key. A missing
// SID (never the case for real Twilio webhooks) gets a generated one so the
// flow still works in isolation.
func (h *Handler) callSid(r *http.Request) string {
	if sid := r.FormValue("CallSid"); sid != "" {
		return sid
	}
	return "local-" + uuid.New().String()
}

func (h *Handler) writeTwiML(w http.ResponseWriter, resp *twiml.Response) {
	w.Header().Set("Content-Type", twimlContentType)

	body, err := resp.Render()
	if err != nil {
		observability.RecordError("twiml_render", "telephony")
		logger := observability.GetLogger()
		logger.Error().Err(err).Msg("Failed to render TwiML")
		body = fallbackTwiML
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, body)
}
