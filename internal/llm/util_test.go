package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "markdown fence",
			input:    "```markdown\n## Overview:\nText\n```",
			expected: "## Overview:\nText",
		},
		{
			name:     "bare fence",
			input:    "```\n## Overview:\nText\n```",
			expected: "## Overview:\nText",
		},
		{
			name:     "header on fence line is kept",
			input:    "```## Overview:\nText```",
			expected: "## Overview:\nText",
		},
		{
			name:     "no fence is untouched",
			input:    "  ## Overview:\nText  \n",
			expected: "  ## Overview:\nText  \n",
		},
		{
			name:     "surrounding whitespace around a fence",
			input:    "\n```markdown\n## Overview:\nText\n```\n",
			expected: "## Overview:\nText",
		},
		{
			name:     "inner fence only",
			input:    "Intro\n```\ncode\n```",
			expected: "Intro\n```\ncode\n```",
		},
		{
			name:     "bare backticks",
			input:    "```",
			expected: "```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripCodeFence(tt.input))
		})
	}
}
