package usecase

import (
	"regexp"
	"strings"

	"syllabus-extraction/internal/model"
	"syllabus-extraction/pkg/dateparse"
)

// fallbackWindow is how many lines around a keyword hit are searched for a
// date expression.
const fallbackWindow = 2

// deadlineKeywords maps keyword patterns to the item type they imply.
// Ordered: more specific patterns first, so "midterm exam" classifies as
// exam before "due" gets a chance.
var deadlineKeywords = []struct {
	pattern  *regexp.Regexp
	itemType model.ItemType
}{
	{regexp.MustCompile(`(?i)\b(?:midterm|final exam|exam)\b`), model.TypeExam},
	{regexp.MustCompile(`(?i)\bquiz\b`), model.TypeQuiz},
	{regexp.MustCompile(`(?i)\b(?:project|presentation)\b`), model.TypeProject},
	{regexp.MustCompile(`(?i)\b(?:reading|read chapter|chapters?)\b`), model.TypeReading},
	{regexp.MustCompile(`(?i)\b(?:assignment|homework|essay|paper|problem set)\b`), model.TypeAssignment},
	{regexp.MustCompile(`(?i)\b(?:due|deadline|submit by|submission)\b`), model.TypeDeadline},
}

// trailingDueRe trims a dangling "- Due" left behind once the date
// expression is removed from a matched line.
var trailingDueRe = regexp.MustCompile(`(?i)[\s\-–:,]*(?:due(?:\s+(?:by|on|date))?)?[\s\-–:,]*$`)

// keywordExtract is the rule-based extraction path used when the reasoning
// service is unavailable or its output is unusable. Lower precision than
// the reasoning path, but it works entirely offline, so the pipeline never
// returns empty purely because an external service was unreachable.
func keywordExtract(text string, defaultYear, scanLimit int) []rawItem {
	parser := dateparse.NewParser(defaultYear)
	lines := strings.Split(text, "\n")
	if scanLimit > 0 && len(lines) > scanLimit {
		lines = lines[:scanLimit]
	}

	var items []rawItem
	for i, line := range lines {
		itemType, ok := matchKeyword(line)
		if !ok {
			continue
		}

		date, ok := nearbyDate(lines, i, parser)
		if !ok {
			continue
		}

		items = append(items, rawItem{
			Title:       fallbackTitle(line),
			Date:        date,
			Type:        string(itemType),
			Description: strings.TrimSpace(line),
		})
	}
	return items
}

// matchKeyword returns the item type implied by the first keyword pattern
// that hits the line.
func matchKeyword(line string) (model.ItemType, bool) {
	for _, kw := range deadlineKeywords {
		if kw.pattern.MatchString(line) {
			return kw.itemType, true
		}
	}
	return "", false
}

// nearbyDate looks for a date expression on the matched line first, then in
// a bounded window of surrounding lines.
func nearbyDate(lines []string, center int, parser *dateparse.Parser) (string, bool) {
	if date, ok := resolveDate(lines[center], parser); ok {
		return date, true
	}

	for offset := 1; offset <= fallbackWindow; offset++ {
		for _, i := range []int{center - offset, center + offset} {
			if i < 0 || i >= len(lines) {
				continue
			}
			if date, ok := resolveDate(lines[i], parser); ok {
				return date, true
			}
		}
	}
	return "", false
}

func resolveDate(line string, parser *dateparse.Parser) (string, bool) {
	expr, ok := dateparse.FindFirst(line)
	if !ok {
		return "", false
	}
	date, err := parser.Normalize(expr)
	if err != nil {
		return "", false
	}
	return date, true
}

// fallbackTitle derives an item title from the matched line by removing the
// date expression and trimming the connective debris it leaves behind.
func fallbackTitle(line string) string {
	title := strings.TrimSpace(line)
	if expr, ok := dateparse.FindFirst(title); ok {
		title = strings.Replace(title, expr, "", 1)
	}
	title = trailingDueRe.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)
	if title == "" {
		return strings.TrimSpace(line)
	}
	return title
}
