package model

// PipelineState tracks orchestrator progress through the stages.
type PipelineState string

const (
	StateSegmenting PipelineState = "segmenting"
	StateExtracting PipelineState = "extracting"
	StateEstimating PipelineState = "estimating"
	StateValidating PipelineState = "validating"
	StateDone       PipelineState = "done"
	StateFailed     PipelineState = "failed"
)

// QAReport summarizes what the validation stage saw and changed.
type QAReport struct {
	ItemsIn            int      `json:"items_in"`
	ItemsOut           int      `json:"items_out"`
	DroppedForDate     int      `json:"dropped_for_date"`
	DefaultedEstimates int      `json:"defaulted_estimates"`
	TypeRemaps         int      `json:"type_remaps"`
	ClampedEstimates   int      `json:"clamped_estimates"`
	FailedChunks       int      `json:"failed_chunks"`
	UsedFallback       bool     `json:"used_fallback"`
	Anomalies          []string `json:"anomalies,omitempty"`
	Summary            string   `json:"summary"`
}

// PipelineResult is the externally visible pipeline output. Constructed
// once by the orchestrator and never mutated afterwards.
type PipelineResult struct {
	RunID               string         `json:"run_id"`
	DocumentName        string         `json:"document_name,omitempty"`
	Success             bool           `json:"success"`
	State               PipelineState  `json:"state"`
	Partial             bool           `json:"partial,omitempty"` // top-level timeout cut the run short
	Items               []ScheduleItem `json:"items"`
	TotalEstimatedHours float64        `json:"total_estimated_hours"`
	QAReport            QAReport       `json:"qa_report"`
	Error               string         `json:"error,omitempty"` // set only in the failed state
}

// SumEstimatedHours sums hours over items that carry an estimate.
func SumEstimatedHours(items []ScheduleItem) float64 {
	var total float64
	for i := range items {
		if items[i].EstimatedHours != nil {
			total += *items[i].EstimatedHours
		}
	}
	return total
}
