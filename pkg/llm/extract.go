package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractJSON returns the first well-formed JSON object in text, or "" if there
// is none. Braces inside strings are ignored, and balanced groups that do not
// parse (template placeholders like {name}) are skipped.
func extractJSON(text string) string {
	for offset := 0; offset < len(text); {
		start := strings.IndexByte(text[offset:], '{')
		if start == -1 {
			return ""
		}
		start += offset

		if end := matchBrace(text, start); end != -1 {
			if candidate := text[start : end+1]; json.Valid([]byte(candidate)) {
				return candidate
			}
		}
		offset = start + 1
	}
	return ""
}

// matchBrace returns the index of the brace closing the one at start, or -1
func matchBrace(text string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// decodeJSON extracts and decodes the first JSON object in text
func decodeJSON[T any](text string) (*T, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoUsableOutput
	}
	raw := extractJSON(text)
	if raw == "" {
		return nil, ErrNoJSONFound
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("failed to parse model JSON: %w", err)
	}
	return &out, nil
}
