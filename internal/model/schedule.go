package model

// ItemType classifies a schedule item.
type ItemType string

const (
	TypeAssignment   ItemType = "assignment"
	TypeQuiz         ItemType = "quiz"
	TypeExam         ItemType = "exam"
	TypeProject      ItemType = "project"
	TypeReading      ItemType = "reading"
	TypeDeadline     ItemType = "deadline"
	TypeClassSession ItemType = "class_session"
	TypeOther        ItemType = "other"
)

// ItemTypes is the closed vocabulary. Anything outside it gets remapped
// to TypeOther during validation.
var ItemTypes = map[ItemType]bool{
	TypeAssignment:   true,
	TypeQuiz:         true,
	TypeExam:         true,
	TypeProject:      true,
	TypeReading:      true,
	TypeDeadline:     true,
	TypeClassSession: true,
	TypeOther:        true,
}

// Valid reports whether the type belongs to the closed vocabulary.
func (t ItemType) Valid() bool {
	return ItemTypes[t]
}

// Confidence is the self-reported reliability of a workload estimate.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ScheduleItem is one dated work item extracted from schedule text.
// Extraction fills title/date/type/description; the estimation stage adds
// the workload fields; validation normalizes or drops the item.
type ScheduleItem struct {
	Title       string   `json:"title"`
	Date        string   `json:"date,omitempty"` // ISO 8601 YYYY-MM-DD
	Type        ItemType `json:"type"`
	Description string   `json:"description,omitempty"`

	// EstimatedHours is nil until the estimation stage runs. Zero is a
	// real estimate and must survive validation untouched, so missing
	// and zero have to stay distinguishable.
	EstimatedHours    *float64   `json:"estimated_hours,omitempty"`
	WorkloadBreakdown string     `json:"workload_breakdown,omitempty"`
	Confidence        Confidence `json:"confidence,omitempty"`
	Notes             string     `json:"notes,omitempty"`
}

// HasEstimate reports whether the estimation stage filled in hours.
func (s *ScheduleItem) HasEstimate() bool {
	return s.EstimatedHours != nil
}

// SetEstimate sets the estimated hours.
func (s *ScheduleItem) SetEstimate(hours float64) {
	s.EstimatedHours = &hours
}
