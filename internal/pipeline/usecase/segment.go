package usecase

import (
	"strings"
	"unicode/utf8"
)

// segmentText splits text into ordered chunks of at most size characters.
// Boundaries prefer a newline, then a space, inside the tail of the chunk,
// so a date or title is not cut mid-token. Consecutive chunks overlap by
// overlap characters; the downstream (title, date) dedup removes the
// duplicates that overlap produces.
func segmentText(text string, size, overlap int) []string {
	if size <= 0 {
		return nil
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}
	if len(text) <= size {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{text}
	}

	var chunks []string
	start := 0

	for start < len(text) {
		end := start + size
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}

		cut := boundaryBefore(text, start, end)
		chunks = append(chunks, text[start:cut])

		next := cut - overlap
		if next <= start {
			// Overlap must never stall the walk.
			next = cut
		}
		// The rewind is byte-based; advance to a rune start so the next
		// chunk never begins on a continuation byte.
		for next < len(text) && !utf8.RuneStart(text[next]) {
			next++
		}
		start = next
	}

	return chunks
}

// boundaryBefore picks a cut point at or before end, preferring the last
// newline in the final quarter of the chunk, then the last space. Falls
// back to the hard limit when the chunk is one unbroken token.
func boundaryBefore(text string, start, end int) int {
	window := start + (end-start)*3/4

	if i := strings.LastIndexByte(text[window:end], '\n'); i != -1 {
		return window + i + 1
	}
	if i := strings.LastIndexByte(text[window:end], ' '); i != -1 {
		return window + i + 1
	}

	// Hard cut. Indexing is byte-based, so back off to a rune start so a
	// multi-byte character is never split across chunks.
	cut := end
	for cut > start && !utf8.RuneStart(text[cut]) {
		cut--
	}
	if cut > start {
		return cut
	}
	return end
}
