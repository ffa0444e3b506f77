package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"syllabus-extraction/internal/model"
	"syllabus-extraction/internal/pipeline"
	deliveryHTTP "syllabus-extraction/internal/pipeline/delivery/http"
	"syllabus-extraction/pkg/log"
	"syllabus-extraction/pkg/response"
)

type mockUseCase struct {
	result model.PipelineResult
	input  pipeline.RunInput
	calls  int
}

func (m *mockUseCase) Run(ctx context.Context, input pipeline.RunInput) (model.PipelineResult, error) {
	m.calls++
	m.input = input
	return m.result, nil
}

type mockExporter struct {
	calls int
	items int
}

func (m *mockExporter) Export(ctx context.Context, documentName string, items []model.ScheduleItem) int {
	m.calls++
	m.items = len(items)
	return len(items)
}

func newTestRouter(uc pipeline.UseCase, exporter *mockExporter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var h deliveryHTTP.Handler
	if exporter != nil {
		h = deliveryHTTP.New(log.NewNop(), uc, exporter, 100)
	} else {
		h = deliveryHTTP.New(log.NewNop(), uc, nil, 100)
	}
	deliveryHTTP.RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func longDocument() string {
	return strings.Repeat("Assignment 1 due February 3, 2024. ", 10)
}

func TestExtractSuccess(t *testing.T) {
	hours := 5.0
	uc := &mockUseCase{result: model.PipelineResult{
		RunID:   "run-1",
		Success: true,
		State:   model.StateDone,
		Items: []model.ScheduleItem{
			{Title: "Assignment 1", Date: "2024-02-03", Type: model.TypeAssignment, EstimatedHours: &hours},
		},
		TotalEstimatedHours: 5,
	}}
	exporter := &mockExporter{}
	r := newTestRouter(uc, exporter)

	body, _ := json.Marshal(map[string]string{
		"document_name": "cs101.txt",
		"text":          longDocument(),
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules/extract", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if uc.input.DocumentName != "cs101.txt" {
		t.Errorf("document name = %q", uc.input.DocumentName)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	data, _ := json.Marshal(resp.Data)
	var result model.PipelineResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("result unmarshal error: %v", err)
	}
	if !result.Success || len(result.Items) != 1 {
		t.Errorf("unexpected result payload: %+v", result)
	}

	if exporter.calls != 1 || exporter.items != 1 {
		t.Errorf("exporter calls=%d items=%d, want 1/1", exporter.calls, exporter.items)
	}
}

func TestExtractRejectsShortDocument(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc, nil)

	body, _ := json.Marshal(map[string]string{"text": "too short"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules/extract", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
	if uc.calls != 0 {
		t.Errorf("pipeline must not run for rejected documents, got %d calls", uc.calls)
	}
}

func TestExtractRejectsMissingText(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules/extract", strings.NewReader(`{"document_name":"x.txt"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestExtractSkipsExportOnFailedRun(t *testing.T) {
	uc := &mockUseCase{result: model.PipelineResult{
		Success: false,
		State:   model.StateFailed,
		Items:   []model.ScheduleItem{},
		Error:   "no schedule items could be extracted",
	}}
	exporter := &mockExporter{}
	r := newTestRouter(uc, exporter)

	body, _ := json.Marshal(map[string]string{"text": longDocument()})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules/extract", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (failed runs still return a structured result)", w.Code)
	}
	if exporter.calls != 0 {
		t.Errorf("exporter must not run for failed results")
	}
}
