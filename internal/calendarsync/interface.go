package calendarsync

import (
	"context"

	"syllabus-extraction/internal/model"
	"syllabus-extraction/pkg/gcalendar"
)

// Exporter pushes finalized schedule items to an external calendar.
type Exporter interface {
	// Export creates one all-day event per item and returns how many were
	// created. Export failures are logged per item and never propagate:
	// calendar sync is a best-effort side channel, not part of the
	// pipeline contract.
	Export(ctx context.Context, documentName string, items []model.ScheduleItem) int
}

// EventCreator is the slice of pkg/gcalendar the exporter depends on.
// *gcalendar.Client satisfies it.
type EventCreator interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}
