package compatibility

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/mbti-compat/internal/llm"
	"github.com/jonathan/mbti-compat/internal/mbti"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateFunc func(ctx context.Context, req llm.Request) (string, error)
	Calls        []llm.Request
}

func (m *MockLLMClient) Generate(ctx context.Context, req llm.Request) (string, error) {
	m.Calls = append(m.Calls, req)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return "", nil
}

func (m *MockLLMClient) GetModel(_ llm.ModelTier) string {
	return "mock-model"
}

func (m *MockLLMClient) Close() error {
	return nil
}

const sampleResponse = `## Overview:
Two thinkers.
## Key Strengths:
+ Ideas
## Potential Challenges:
- Feelings
## Compatibility Rating:
Challenging`

func TestGenerate_BuildsPrompts(t *testing.T) {
	mock := &MockLLMClient{
		GenerateFunc: func(_ context.Context, _ llm.Request) (string, error) {
			return sampleResponse, nil
		},
	}
	svc := NewService(mock, nil)

	text, err := svc.Generate(context.Background(), "INTJ", " INTP ")
	require.NoError(t, err)
	assert.Equal(t, sampleResponse, text)

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.Equal(t, llm.TierStandard, req.Tier)
	assert.Contains(t, req.System, "## Potential Challenges:")
	assert.Contains(t, req.Prompt, "INTJ (Architect)")
	assert.Contains(t, req.Prompt, "INTP (Logician)")
}

func TestGenerate_UnknownCodePassesThrough(t *testing.T) {
	mock := &MockLLMClient{}
	svc := NewService(mock, nil)

	_, err := svc.Generate(context.Background(), "ABCD", "ENFP")
	require.NoError(t, err)
	require.Len(t, mock.Calls, 1)
	assert.Contains(t, mock.Calls[0].Prompt, "ABCD (ABCD)")
}

func TestGenerate_LowercaseCodes(t *testing.T) {
	mock := &MockLLMClient{}
	svc := NewService(mock, nil)

	_, err := svc.Generate(context.Background(), "intj", " infp")
	require.NoError(t, err)
	require.Len(t, mock.Calls, 1)
	assert.Contains(t, mock.Calls[0].Prompt, "INTJ (Architect)")
	assert.Contains(t, mock.Calls[0].Prompt, "INFP (Mediator)")
}

func TestGenerate_MissingInput(t *testing.T) {
	tests := []struct {
		name    string
		one     string
		two     string
		missing []string
	}{
		{"second missing", "INTJ", "", []string{"mbtiTwo"}},
		{"first blank", "   ", "INTP", []string{"mbtiOne"}},
		{"both missing", "", "", []string{"mbtiOne", "mbtiTwo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockLLMClient{}
			svc := NewService(mock, nil)

			_, err := svc.Generate(context.Background(), tt.one, tt.two)
			var missing *MissingInputError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.missing, missing.Fields)
			assert.Empty(t, mock.Calls, "client must not be called")
		})
	}
}

func TestGenerate_UpstreamFailure(t *testing.T) {
	upstream := errors.New("connection reset")
	mock := &MockLLMClient{
		GenerateFunc: func(_ context.Context, _ llm.Request) (string, error) {
			return "", upstream
		},
	}
	svc := NewService(mock, nil)

	_, err := svc.Generate(context.Background(), "INTJ", "INTP")
	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.ErrorIs(t, err, upstream)
	assert.Len(t, mock.Calls, 1, "no retries")
}

func TestAnalyze_TableScoreIgnoresText(t *testing.T) {
	mock := &MockLLMClient{
		GenerateFunc: func(_ context.Context, _ llm.Request) (string, error) {
			return sampleResponse, nil
		},
	}
	svc := NewService(mock, nil)

	result, err := svc.Analyze(context.Background(), "INTJ", "INTP")
	require.NoError(t, err)

	assert.Equal(t, 85, result.Score)
	assert.Equal(t, mbti.LabelExcellent, result.Label)
	// The generator's own rating text is displayed as-is.
	assert.Equal(t, "Challenging", result.Rating)
	assert.Equal(t, []string{"Ideas"}, result.Strengths)
	assert.Equal(t, []string{"Feelings"}, result.Challenges)
}

func TestAnalyze_LowercaseCodes(t *testing.T) {
	mock := &MockLLMClient{
		GenerateFunc: func(_ context.Context, _ llm.Request) (string, error) {
			return sampleResponse, nil
		},
	}
	svc := NewService(mock, nil)

	result, err := svc.Analyze(context.Background(), "intj", "intp")
	require.NoError(t, err)
	assert.Equal(t, "INTJ", result.TypeA)
	assert.Equal(t, 85, result.Score)
	assert.Equal(t, mbti.LabelExcellent, result.Label)
}

func TestAnalyze_PropagatesErrors(t *testing.T) {
	svc := NewService(&MockLLMClient{}, nil)

	result, err := svc.Analyze(context.Background(), "", "INTP")
	assert.Nil(t, result)
	var missing *MissingInputError
	assert.ErrorAs(t, err, &missing)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "missing MBTI type: mbtiOne, mbtiTwo", (&MissingInputError{Fields: []string{"mbtiOne", "mbtiTwo"}}).Error())
	assert.Equal(t, "text generation failed: boom", (&UpstreamError{Cause: errors.New("boom")}).Error())
}
