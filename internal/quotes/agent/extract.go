package agent

import (
	"encoding/json"
	"strings"
)

// ExtractJSON pulls one JSON object out of free-form model text.
//
// The span from the first '{' to the last '}' is tried first. When that
// span is not valid JSON (prose with braces, several objects, fenced code)
// each '{' is scanned for a balanced, string-aware object and the first
// valid one wins. With no usable object a *GenerationError is returned
// whose RawResponse is raw, unchanged.
func ExtractJSON(raw string) (string, error) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", &GenerationError{Message: "no JSON object found in response", RawResponse: raw}
	}

	end := strings.LastIndexByte(raw, '}')
	if end <= start {
		return "", &GenerationError{Message: "no JSON object found in response", RawResponse: raw}
	}

	candidate := raw[start : end+1]
	if json.Valid([]byte(candidate)) {
		return candidate, nil
	}

	for i := start; i < len(raw); i++ {
		if raw[i] != '{' {
			continue
		}
		if obj, ok := balancedObject(raw[i:]); ok && json.Valid([]byte(obj)) {
			return obj, nil
		}
	}

	var probe json.RawMessage
	parseErr := json.Unmarshal([]byte(candidate), &probe)
	return "", &GenerationError{Message: "failed to parse quote", RawResponse: raw, Err: parseErr}
}

// balancedObject returns the prefix of s (which starts with '{') up to the
// matching '}', ignoring braces inside JSON strings.
func balancedObject(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}
