// Package extract recovers structured payloads from model output. Models
// are asked for JSON but routinely wrap it in markdown fences or prose, so
// every consumer goes through Object first and falls back to the line
// scanners in fallbacks.go when that fails.
package extract

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	// ErrNoObject is returned when the text contains no JSON object.
	ErrNoObject = errors.New("no JSON object found")

	// ErrTruncatedObject is returned when an object opens but never
	// closes, usually because the completion hit its token limit.
	ErrTruncatedObject = errors.New("unterminated JSON object")
)

// Object finds and decodes the first JSON object in the text. Markdown code
// fences are stripped first, then the object boundary is located by brace
// matching that is aware of string literals and escapes, so braces inside
// values do not confuse it.
func Object(s string) (map[string]any, error) {
	clean := stripFences(strings.TrimSpace(s))

	start := strings.IndexByte(clean, '{')
	if start < 0 {
		return nil, ErrNoObject
	}

	depth := 0
	inString := false
	escaped := false
	end := -1

scan:
	for i := start; i < len(clean); i++ {
		c := clean[i]

		if escaped {
			escaped = false
			continue
		}

		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				end = i + 1
				break scan
			}
		}
	}

	if end < 0 {
		return nil, ErrTruncatedObject
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(clean[start:end]), &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// stripFences removes a markdown code fence wrapper if one is present.
func stripFences(s string) string {
	if strings.Contains(s, "```json") {
		after := strings.SplitN(s, "```json", 2)[1]
		return strings.TrimSpace(strings.SplitN(after, "```", 2)[0])
	}
	if strings.Contains(s, "```") {
		parts := strings.Split(s, "```")
		if len(parts) >= 3 {
			return strings.TrimSpace(parts[1])
		}
	}
	return s
}
