package usecase

// rawItem is a candidate item as returned by the extraction prompt.
type rawItem struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// estimateRow is one row of the estimation reply. EstimatedHours is a
// pointer so a literal 0 stays distinguishable from a missing field.
type estimateRow struct {
	Title             string   `json:"title"`
	Date              string   `json:"date"`
	EstimatedHours    *float64 `json:"estimated_hours"`
	WorkloadBreakdown string   `json:"workload_breakdown"`
	Confidence        string   `json:"confidence"`
	Notes             string   `json:"notes"`
}

// chunkResult carries one chunk's extraction outcome across the worker pool.
type chunkResult struct {
	index int
	items []rawItem
	err   error
}
