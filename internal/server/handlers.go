package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/mbti-compat/internal/mbti"
	"go.uber.org/zap"
)

// Client-facing messages. Upstream details stay in the server log.
const (
	msgTypesRequired = "Both MBTI types are required"
	msgUpstream      = "Failed to get MBTI compatibility data"
)

// CompatibilityRequest represents the request body for the compatibility endpoints
type CompatibilityRequest struct {
	MbtiOne string `json:"mbtiOne" validate:"required"`
	MbtiTwo string `json:"mbtiTwo" validate:"required"`
}

// CompatibilityResponse represents the response for /api/compatibility
type CompatibilityResponse struct {
	Result string `json:"result"`
}

// ScoreResponse represents the response for /api/score
type ScoreResponse struct {
	TypeA string     `json:"typeA"`
	TypeB string     `json:"typeB"`
	Score int        `json:"score"`
	Label mbti.Label `json:"label"`
}

// decodeCompatibilityRequest reads and validates the body. An empty body is
// treated as a request with both fields missing.
func (s *Server) decodeCompatibilityRequest(r *http.Request) (*CompatibilityRequest, error) {
	var req CompatibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ErrValidation{Field: "body", Message: "Invalid request body: " + err.Error()}
	}

	req.MbtiOne = strings.TrimSpace(req.MbtiOne)
	req.MbtiTwo = strings.TrimSpace(req.MbtiTwo)

	if err := s.validator.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		field := "mbtiOne"
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			field = fieldErrs[0].Field()
		}
		return nil, &ErrValidation{Field: field, Message: msgTypesRequired}
	}
	return &req, nil
}

// writeRequestError reports a rejected request body.
func (s *Server) writeRequestError(w http.ResponseWriter, err error) {
	var vErr *ErrValidation
	if errors.As(err, &vErr) {
		s.errorResponse(w, http.StatusBadRequest, vErr.Message)
		return
	}
	s.errorResponse(w, HTTPStatus(err), err.Error())
}

// writeServiceError maps service failures to the fixed client messages.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusBadRequest {
		s.errorResponse(w, status, msgTypesRequired)
		return
	}
	s.errorResponse(w, status, msgUpstream)
}

// handleCompatibility returns the raw generated write-up
func (s *Server) handleCompatibility(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeCompatibilityRequest(r)
	if err != nil {
		s.writeRequestError(w, err)
		return
	}

	text, err := s.service.Generate(r.Context(), req.MbtiOne, req.MbtiTwo)
	if err != nil {
		s.logger.Warn("compatibility request failed",
			zap.String("request_id", w.Header().Get(RequestIDHeader)),
			zap.Error(err),
		)
		s.writeServiceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, CompatibilityResponse{Result: text})
}

// handleAnalysis returns the parsed and scored analysis
func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeCompatibilityRequest(r)
	if err != nil {
		s.writeRequestError(w, err)
		return
	}

	result, err := s.service.Analyze(r.Context(), req.MbtiOne, req.MbtiTwo)
	if err != nil {
		s.logger.Warn("analysis request failed",
			zap.String("request_id", w.Header().Get(RequestIDHeader)),
			zap.Error(err),
		)
		s.writeServiceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleScore returns the table score for two known types without generating text
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	typeA, err := mbti.ParseType(r.PathValue("typeA"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	typeB, err := mbti.ParseType(r.PathValue("typeB"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	score := mbti.LookupScore(typeA, typeB)
	s.jsonResponse(w, http.StatusOK, ScoreResponse{
		TypeA: typeA.String(),
		TypeB: typeB.String(),
		Score: score,
		Label: mbti.Classify(score),
	})
}

// handleTypes lists the sixteen type profiles in selector order
func (s *Server) handleTypes(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, mbti.Profiles())
}
