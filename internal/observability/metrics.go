package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Call metrics
	callsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "call_gateway_calls_total",
		Help: "Total number of inbound calls handled",
	})

	webhookRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "call_gateway_webhook_requests_total",
		Help: "Total number of webhook requests by route and outcome",
	}, []string{"route", "status"})

	// TTS metrics
	ttsRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "call_gateway_tts_requests_total",
		Help: "Total number of TTS synthesis requests",
	}, []string{"status"})

	ttsLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "call_gateway_tts_latency_seconds",
		Help:    "TTS synthesis latency in seconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0},
	})

	// Blob store metrics
	blobWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "call_gateway_blob_writes_total",
		Help: "Total number of audio blob writes",
	}, []string{"status"})

	blobReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "call_gateway_blob_reads_total",
		Help: "Total number of audio blob reads",
	}, []string{"status"})

	audioBytesServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "call_gateway_audio_bytes_served_total",
		Help: "Total audio bytes streamed back to the telephony provider",
	})

	// Error metrics
	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "call_gateway_errors_total",
		Help: "Total number of errors",
	}, []string{"type", "component"})
)

// RecordCallStart records an inbound call reaching the voice webhook
func RecordCallStart() {
	callsTotal.Inc()
}

// RecordWebhook records the outcome of a webhook request
func RecordWebhook(route string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	webhookRequests.WithLabelValues(route, status).Inc()
}

// RecordTTS records a synthesis attempt and its latency
func RecordTTS(start time.Time, success bool) {
	ttsLatency.Observe(time.Since(start).Seconds())

	status := "success"
	if !success {
		status = "error"
	}
	ttsRequests.WithLabelValues(status).Inc()
}

// RecordBlobWrite records a blob store write
func RecordBlobWrite(success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	blobWrites.WithLabelValues(status).Inc()
}

// RecordBlobRead records a blob store read; misses count as errors
func RecordBlobRead(success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	blobReads.WithLabelValues(status).Inc()
}

// RecordAudioBytesServed records audio bytes streamed to the provider
func RecordAudioBytesServed(bytes int64) {
	audioBytesServed.Add(float64(bytes))
}

// RecordError records an error by type and component
func RecordError(errorType, component string) {
	errorsTotal.WithLabelValues(errorType, component).Inc()
}
