package calendarsync

import (
	"context"
	"fmt"
	"strings"
	"time"

	"syllabus-extraction/internal/model"
	"syllabus-extraction/pkg/gcalendar"
	pkgLog "syllabus-extraction/pkg/log"
)

type implExporter struct {
	l          pkgLog.Logger
	calendar   EventCreator
	calendarID string
}

// New creates a new calendar Exporter instance.
func New(l pkgLog.Logger, calendar EventCreator, calendarID string) *implExporter {
	return &implExporter{
		l:          l,
		calendar:   calendar,
		calendarID: calendarID,
	}
}

// Export creates an all-day event per schedule item.
func (e *implExporter) Export(ctx context.Context, documentName string, items []model.ScheduleItem) int {
	if e.calendar == nil {
		return 0
	}

	var created int
	for i := range items {
		item := &items[i]

		date, err := time.Parse("2006-01-02", item.Date)
		if err != nil {
			e.l.Warnf(ctx, "calendar export: skipping %q, bad date %q: %v", item.Title, item.Date, err)
			continue
		}

		event, err := e.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  e.calendarID,
			Summary:     eventSummary(item),
			Description: eventDescription(documentName, item),
			Date:        date,
		})
		if err != nil {
			e.l.Warnf(ctx, "calendar export: failed for %q (non-fatal): %v", item.Title, err)
			continue
		}

		created++
		e.l.Infof(ctx, "calendar export: created event %s for %q", event.ID, item.Title)
	}

	return created
}

func eventSummary(item *model.ScheduleItem) string {
	return fmt.Sprintf("[%s] %s", item.Type, item.Title)
}

func eventDescription(documentName string, item *model.ScheduleItem) string {
	var sb strings.Builder

	if item.Description != "" {
		sb.WriteString(item.Description)
		sb.WriteString("\n\n")
	}
	if item.EstimatedHours != nil {
		fmt.Fprintf(&sb, "Estimated effort: %.1f hours", *item.EstimatedHours)
		if item.Confidence != "" {
			fmt.Fprintf(&sb, " (confidence: %s)", item.Confidence)
		}
		sb.WriteString("\n")
	}
	if item.WorkloadBreakdown != "" {
		fmt.Fprintf(&sb, "Breakdown: %s\n", item.WorkloadBreakdown)
	}
	if item.Notes != "" {
		fmt.Fprintf(&sb, "Notes: %s\n", item.Notes)
	}
	if documentName != "" {
		fmt.Fprintf(&sb, "Source: %s", documentName)
	}

	return strings.TrimSpace(sb.String())
}
