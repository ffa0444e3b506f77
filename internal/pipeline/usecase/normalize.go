package usecase

import (
	"encoding/json"
	"regexp"
	"strings"

	"syllabus-extraction/internal/pipeline"
)

// fenceRe matches a markdown code fence wrapping the whole reply, with an
// optional language tag.
var fenceRe = regexp.MustCompile("(?s)^\\s*```[a-zA-Z]*\\s*\\n?(.*?)\\n?\\s*```\\s*$")

// normalizeArray turns a raw reasoning-service reply into a list of JSON
// objects. Strategies are tried in order, first success wins:
//
//  1. strip a wrapping code fence, then parse
//  2. parse the raw text unmodified
//  3. bracket-match the first array and parse just that substring
//  4. brace-match every object and parse each independently, skipping the
//     ones that fail
//
// The service reliably produces mostly-valid JSON wrapped in formatting
// noise, so an all-or-nothing parser would discard usable data.
func normalizeArray(raw string) ([]json.RawMessage, error) {
	strategies := []func(string) ([]json.RawMessage, bool){
		parseUnfenced,
		parseDirect,
		parseFirstArray,
		parseObjects,
	}

	for _, strategy := range strategies {
		if objs, ok := strategy(raw); ok {
			return objs, nil
		}
	}
	return nil, pipeline.ErrParseFailure
}

// parseUnfenced strips a wrapping ``` fence and parses the remainder.
func parseUnfenced(raw string) ([]json.RawMessage, bool) {
	m := fenceRe.FindStringSubmatch(raw)
	if m == nil {
		return nil, false
	}
	return parseDirect(m[1])
}

// parseDirect parses the text as a JSON array, or as a single object which
// it wraps into a one-element array.
func parseDirect(raw string) ([]json.RawMessage, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, false
	}

	var arr []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &arr); err == nil {
		return arr, true
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
		return []json.RawMessage{json.RawMessage(trimmed)}, true
	}
	return nil, false
}

// parseFirstArray scans for the first balanced [...] and parses it.
func parseFirstArray(raw string) ([]json.RawMessage, bool) {
	start := strings.IndexByte(raw, '[')
	if start == -1 {
		return nil, false
	}
	end := matchDelimiter(raw, start, '[', ']')
	if end == -1 {
		return nil, false
	}
	return parseDirect(raw[start : end+1])
}

// parseObjects scans for balanced {...} spans and parses each on its own.
// Spans that fail to parse are skipped rather than aborting the response.
func parseObjects(raw string) ([]json.RawMessage, bool) {
	var objs []json.RawMessage

	for i := 0; i < len(raw); {
		start := strings.IndexByte(raw[i:], '{')
		if start == -1 {
			break
		}
		start += i

		end := matchDelimiter(raw, start, '{', '}')
		if end == -1 {
			i = start + 1
			continue
		}

		candidate := raw[start : end+1]
		var obj map[string]json.RawMessage
		if err := json.Unmarshal([]byte(candidate), &obj); err == nil {
			objs = append(objs, json.RawMessage(candidate))
			i = end + 1
		} else {
			i = start + 1
		}
	}

	if len(objs) == 0 {
		return nil, false
	}
	return objs, true
}

// matchDelimiter returns the index of the closer balancing the opener at
// start, or -1. String literals and escapes are honored so a bracket inside
// a quoted title does not break the match.
func matchDelimiter(s string, start int, open, close byte) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
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
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
