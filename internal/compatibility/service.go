// Package compatibility turns a pair of MBTI codes into a generated write-up
// with a single call to the configured text generator.
package compatibility

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/mbti-compat/internal/analysis"
	"github.com/jonathan/mbti-compat/internal/llm"
	"github.com/jonathan/mbti-compat/internal/mbti"
	"github.com/jonathan/mbti-compat/internal/prompts"
	"go.uber.org/zap"
)

// MissingInputError reports that one or both type codes were not supplied.
type MissingInputError struct {
	Fields []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing MBTI type: %s", strings.Join(e.Fields, ", "))
}

// UpstreamError reports a failed generation call.
type UpstreamError struct {
	Cause error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("text generation failed: %v", e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// Service runs compatibility analyses against an llm.Client.
type Service struct {
	client llm.Client
	tier   llm.ModelTier
	logger *zap.Logger
}

// NewService creates a Service. A nil logger disables logging.
func NewService(client llm.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		tier:   llm.TierStandard,
		logger: logger,
	}
}

// Generate returns the raw generated write-up for typeOne and typeTwo.
// Codes are trimmed and uppercased; unknown codes are otherwise passed through
// and only empty codes are rejected.
// There is exactly one outbound call and no retry.
func (s *Service) Generate(ctx context.Context, typeOne, typeTwo string) (string, error) {
	typeOne = mbti.Normalize(typeOne)
	typeTwo = mbti.Normalize(typeTwo)
	if err := checkInput(typeOne, typeTwo); err != nil {
		return "", err
	}

	system, user, err := prompts.Compatibility(
		typeOne, mbti.DisplayName(typeOne),
		typeTwo, mbti.DisplayName(typeTwo),
	)
	if err != nil {
		return "", fmt.Errorf("failed to build prompts: %w", err)
	}

	s.logger.Debug("requesting compatibility analysis",
		zap.String("type_one", typeOne),
		zap.String("type_two", typeTwo),
		zap.String("model", s.client.GetModel(s.tier)),
	)

	text, err := s.client.Generate(ctx, llm.Request{System: system, Prompt: user, Tier: s.tier})
	if err != nil {
		s.logger.Error("compatibility generation failed",
			zap.String("type_one", typeOne),
			zap.String("type_two", typeTwo),
			zap.Error(err),
		)
		return "", &UpstreamError{Cause: err}
	}
	return text, nil
}

// Analyze generates the write-up and derives the scored, sectioned Result.
func (s *Service) Analyze(ctx context.Context, typeOne, typeTwo string) (*analysis.Result, error) {
	text, err := s.Generate(ctx, typeOne, typeTwo)
	if err != nil {
		return nil, err
	}
	return analysis.NewResult(text, typeOne, typeTwo), nil
}

func checkInput(typeOne, typeTwo string) error {
	var missing []string
	if typeOne == "" {
		missing = append(missing, "mbtiOne")
	}
	if typeTwo == "" {
		missing = append(missing, "mbtiTwo")
	}
	if len(missing) > 0 {
		return &MissingInputError{Fields: missing}
	}
	return nil
}
