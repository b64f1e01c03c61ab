package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/mbti-compat/internal/analysis"
	"github.com/jonathan/mbti-compat/internal/mbti"
	"go.uber.org/zap"
)

// SSE event names emitted by /api/compatibility/stream.
const (
	EventScore    = "score"
	EventAnalysis = "analysis"
	EventError    = "error"
)

// SSEWriter helps write Server-Sent Events
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\n", event); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteError sends an error event
func (s *SSEWriter) WriteError(message string) {
	s.WriteEvent(EventError, map[string]string{"error": message}) //nolint:errcheck
}

// handleAnalysisStream sends the table score immediately, then the full
// analysis once generation finishes.
func (s *Server) handleAnalysisStream(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeCompatibilityRequest(r)
	if err != nil {
		s.writeRequestError(w, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	score := analysis.ScoreFor("", req.MbtiOne, req.MbtiTwo)
	if err := sse.WriteEvent(EventScore, ScoreResponse{
		TypeA: mbti.Normalize(req.MbtiOne),
		TypeB: mbti.Normalize(req.MbtiTwo),
		Score: score,
		Label: mbti.Classify(score),
	}); err != nil {
		return
	}

	result, err := s.service.Analyze(r.Context(), req.MbtiOne, req.MbtiTwo)
	if err != nil {
		s.logger.Warn("streamed analysis failed",
			zap.String("request_id", w.Header().Get(RequestIDHeader)),
			zap.Error(err),
		)
		sse.WriteError(msgUpstream)
		return
	}

	sse.WriteEvent(EventAnalysis, result) //nolint:errcheck
}
