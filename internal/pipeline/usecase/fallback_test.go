package usecase

import (
	"fmt"
	"strings"
	"testing"
)

func TestKeywordExtractExampleLine(t *testing.T) {
	items := keywordExtract("Assignment 2: If-Else Statements - Due February 3, 2024", 2024, 0)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if !strings.Contains(items[0].Title, "If-Else Statements") {
		t.Errorf("title %q does not contain %q", items[0].Title, "If-Else Statements")
	}
	if items[0].Date != "2024-02-03" {
		t.Errorf("date = %q, want 2024-02-03", items[0].Date)
	}
	if items[0].Type != "assignment" {
		t.Errorf("type = %q, want assignment", items[0].Type)
	}
}

func TestKeywordExtractDateOnNearbyLine(t *testing.T) {
	text := `Midterm exam
Covers chapters 1 through 5.
March 15, 2024`

	items := keywordExtract(text, 2024, 0)
	if len(items) == 0 {
		t.Fatal("expected at least one item")
	}
	if items[0].Date != "2024-03-15" {
		t.Errorf("date = %q, want 2024-03-15", items[0].Date)
	}
	if items[0].Type != "exam" {
		t.Errorf("type = %q, want exam", items[0].Type)
	}
}

func TestKeywordExtractDefaultYear(t *testing.T) {
	items := keywordExtract("Quiz 4 due Sept 11", 2023, 0)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Date != "2023-09-11" {
		t.Errorf("date = %q, want 2023-09-11", items[0].Date)
	}
	if items[0].Type != "quiz" {
		t.Errorf("type = %q, want quiz", items[0].Type)
	}
}

func TestKeywordExtractSkipsDatelessMatches(t *testing.T) {
	text := `Assignments are due at midnight.
Late work loses ten percent per day.`

	if items := keywordExtract(text, 2024, 0); len(items) != 0 {
		t.Errorf("expected no items without a nearby date, got %d", len(items))
	}
}

func TestKeywordExtractNoKeywords(t *testing.T) {
	if items := keywordExtract("The weather on March 3, 2024 was pleasant.", 2024, 0); len(items) != 0 {
		t.Errorf("expected no items without keywords, got %d", len(items))
	}
}

func TestKeywordExtractScanCap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		fmt.Fprintf(&sb, "Homework %d due 01/%02d/2024\n", i+1, i%28+1)
	}

	items := keywordExtract(sb.String(), 2024, 10)
	if len(items) != 10 {
		t.Errorf("scan cap 10 should bound output to 10 items, got %d", len(items))
	}
}
