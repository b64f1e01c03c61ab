package llm

import "strings"

// StripCodeFence removes a ``` fence wrapped around the whole response.
// Models sometimes fence markdown output even when told not to; text without
// an outer fence is returned unchanged.
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") || len(trimmed) < 6 {
		return text
	}

	body := strings.TrimSuffix(strings.TrimPrefix(trimmed, "```"), "```")
	// Skip a language identifier such as "markdown" on the opening line
	if idx := strings.Index(body, "\n"); idx >= 0 {
		first := body[:idx]
		if len(first) < 20 && !strings.Contains(first, " ") && !strings.Contains(first, "#") {
			body = body[idx+1:]
		}
	}
	return strings.TrimSpace(body)
}
