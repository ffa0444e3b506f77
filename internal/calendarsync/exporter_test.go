package calendarsync_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"syllabus-extraction/internal/calendarsync"
	"syllabus-extraction/internal/model"
	"syllabus-extraction/pkg/gcalendar"
	"syllabus-extraction/pkg/log"
)

type mockCreator struct {
	requests []gcalendar.CreateEventRequest
	failOn   string // summary substring that triggers an error
}

func (m *mockCreator) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.requests = append(m.requests, req)
	if m.failOn != "" && strings.Contains(req.Summary, m.failOn) {
		return nil, errors.New("insert failed")
	}
	return &gcalendar.Event{ID: "evt-1", Summary: req.Summary, Date: req.Date}, nil
}

func hoursPtr(h float64) *float64 { return &h }

func TestExportCreatesEvents(t *testing.T) {
	creator := &mockCreator{}
	exporter := calendarsync.New(log.NewNop(), creator, "primary")

	items := []model.ScheduleItem{
		{Title: "Midterm", Date: "2024-03-01", Type: model.TypeExam, EstimatedHours: hoursPtr(10), Confidence: model.ConfidenceHigh},
		{Title: "Essay 1", Date: "2024-03-15", Type: model.TypeAssignment, EstimatedHours: hoursPtr(6)},
	}

	created := exporter.Export(context.Background(), "cs101.txt", items)
	if created != 2 {
		t.Fatalf("created = %d, want 2", created)
	}

	first := creator.requests[0]
	if first.Summary != "[exam] Midterm" {
		t.Errorf("summary = %q", first.Summary)
	}
	if !strings.Contains(first.Description, "10.0 hours") {
		t.Errorf("description missing estimate: %q", first.Description)
	}
	if !strings.Contains(first.Description, "cs101.txt") {
		t.Errorf("description missing source document: %q", first.Description)
	}
	if first.Date.Format("2006-01-02") != "2024-03-01" {
		t.Errorf("date = %v", first.Date)
	}
}

func TestExportFailuresAreIsolated(t *testing.T) {
	creator := &mockCreator{failOn: "Midterm"}
	exporter := calendarsync.New(log.NewNop(), creator, "primary")

	items := []model.ScheduleItem{
		{Title: "Midterm", Date: "2024-03-01", Type: model.TypeExam},
		{Title: "Essay 1", Date: "2024-03-15", Type: model.TypeAssignment},
	}

	created := exporter.Export(context.Background(), "", items)
	if created != 1 {
		t.Errorf("created = %d, want 1 (failure must not stop the batch)", created)
	}
}

func TestExportSkipsBadDates(t *testing.T) {
	creator := &mockCreator{}
	exporter := calendarsync.New(log.NewNop(), creator, "primary")

	items := []model.ScheduleItem{
		{Title: "Broken", Date: "March-ish", Type: model.TypeOther},
	}

	if created := exporter.Export(context.Background(), "", items); created != 0 {
		t.Errorf("created = %d, want 0", created)
	}
	if len(creator.requests) != 0 {
		t.Errorf("no request should be issued for a bad date")
	}
}

func TestExportWithoutClient(t *testing.T) {
	exporter := calendarsync.New(log.NewNop(), nil, "primary")

	created := exporter.Export(context.Background(), "", []model.ScheduleItem{
		{Title: "Quiz", Date: "2024-02-05", Type: model.TypeQuiz},
	})
	if created != 0 {
		t.Errorf("created = %d, want 0 with no client configured", created)
	}
}
