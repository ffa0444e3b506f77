package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
// Schedule deadlines carry a date but no time of day, so events are
// created as all-day events.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        time.Time // the deadline's calendar date
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Date        time.Time
}
