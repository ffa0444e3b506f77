package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// datePattern matches the date expressions that show up in schedule text:
// numeric MM/DD(/YYYY), long-form "Month DD" and abbreviated-month variants
// (including the four-letter "Sept"), each with an optional year.
var datePattern = regexp.MustCompile(
	`(?i)\b(` +
		`\d{4}-\d{2}-\d{2}` +
		`|\d{1,2}[/.-]\d{1,2}(?:[/.-]\d{2,4})?` +
		`|(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:\s*,?\s*\d{4})?` +
		`|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sept|Sep|Oct|Nov|Dec)\.?\s+\d{1,2}(?:\s*,?\s*\d{4})?` +
		`)\b`)

var numericPattern = regexp.MustCompile(`^(\d{1,2})[/.-](\d{1,2})(?:[/.-](\d{2,4}))?$`)

var monthPattern = regexp.MustCompile(`(?i)^([A-Za-z]+)\.?\s+(\d{1,2})(?:\s*,?\s*(\d{4}))?$`)

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"sept": time.September, "oct": time.October, "nov": time.November,
	"dec": time.December,
}

// Parser converts schedule date expressions to absolute dates.
type Parser struct {
	defaultYear int
}

// NewParser creates a parser that falls back to defaultYear for
// expressions that omit the year. Zero means the current year.
func NewParser(defaultYear int) *Parser {
	if defaultYear == 0 {
		defaultYear = time.Now().Year()
	}
	return &Parser{defaultYear: defaultYear}
}

// Parse converts a date expression to a calendar date.
func (p *Parser) Parse(expr string) (time.Time, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return time.Time{}, fmt.Errorf("empty date expression")
	}

	if t, err := time.Parse("2006-01-02", expr); err == nil {
		return t, nil
	}

	if m := numericPattern.FindStringSubmatch(expr); m != nil {
		return p.parseNumeric(m)
	}

	if m := monthPattern.FindStringSubmatch(expr); m != nil {
		return p.parseMonthName(m)
	}

	return time.Time{}, fmt.Errorf("unrecognized date expression: %q", expr)
}

// Normalize converts a date expression to ISO 8601 (YYYY-MM-DD).
func (p *Parser) Normalize(expr string) (string, error) {
	t, err := p.Parse(expr)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}

// FindFirst returns the first recognizable date expression in the text.
func FindFirst(text string) (string, bool) {
	m := datePattern.FindString(text)
	if m == "" {
		return "", false
	}
	return strings.TrimSpace(m), true
}

// FindAll returns every recognizable date expression in the text.
func FindAll(text string) []string {
	return datePattern.FindAllString(text, -1)
}

// InferYear derives a document-level default year from the first full date
// (one that carries an explicit year) found in the text. Falls back to the
// current year when the document never spells a year out.
func InferYear(text string) int {
	p := NewParser(0)
	for _, expr := range FindAll(text) {
		t, err := p.Parse(strings.TrimSpace(expr))
		if err != nil {
			continue
		}
		if hasExplicitYear(expr) {
			return t.Year()
		}
	}
	return time.Now().Year()
}

func hasExplicitYear(expr string) bool {
	return regexp.MustCompile(`\d{4}`).MatchString(expr)
}

// parseNumeric handles MM/DD, MM/DD/YY, and MM/DD/YYYY (also . and -
// separators). Single-digit day and month are accepted.
func (p *Parser) parseNumeric(m []string) (time.Time, error) {
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year := p.defaultYear
	if m[3] != "" {
		y, _ := strconv.Atoi(m[3])
		if y < 100 {
			y += 2000
		}
		year = y
	}

	return makeDate(year, month, day)
}

// parseMonthName handles "March 15", "Mar. 15", "Sept 11, 2024".
func (p *Parser) parseMonthName(m []string) (time.Time, error) {
	name := strings.ToLower(m[1])
	month, ok := months[name]
	if !ok {
		// Long names share a prefix with the short map keys.
		if len(name) > 3 {
			month, ok = months[name[:3]]
		}
		if !ok {
			return time.Time{}, fmt.Errorf("unknown month: %q", m[1])
		}
	}

	day, _ := strconv.Atoi(m[2])
	year := p.defaultYear
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}

	return makeDate(year, int(month), day)
}

// makeDate validates ranges before constructing: time.Date would silently
// normalize 2/30 into March.
func makeDate(year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month out of range: %d", month)
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day out of range: %d", day)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("invalid calendar date: %d-%02d-%02d", year, month, day)
	}
	return t, nil
}
