package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"syllabus-extraction/pkg/gcalendar"
)

func TestCalendarClient(t *testing.T) {
	t.Run("Initialize with broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name())
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("Create Event E2E", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/calendars/primary/events") && r.Method == http.MethodPost {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"summary": "Midterm",
					"htmlLink": "https://calendar.google.com/event-uri",
					"start": {"date": "2024-03-01"},
					"end": {"date": "2024-03-02"},
					"status": "confirmed"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		client, err := gcalendar.NewClientFromHTTP(context.Background(), ts.Client(), ts.URL)
		if err != nil {
			t.Fatalf("NewClientFromHTTP error: %v", err)
		}

		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:     "Midterm",
			Description: "in class",
			Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("CreateEvent error: %v", err)
		}

		if event.ID != "event-123" {
			t.Errorf("event ID = %q", event.ID)
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("event link = %q", event.HtmlLink)
		}
		if event.Date.Format("2006-01-02") != "2024-03-01" {
			t.Errorf("event date = %v", event.Date)
		}
	})
}
