package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"syllabus-extraction/internal/model"
)

const defaultEstimateNote = "estimate is a fallback default; reasoning service did not provide one"

// estimateWorkloads enriches items in place with estimated hours, a
// breakdown, a confidence level, and notes, using one batched reasoning
// call. Returns the count of items that ended up with the default estimate.
//
// Rows in the reply are merged back by normalized (title, date); rows that
// match no input item are discarded, because the service must only annotate
// existing deadlines at this stage, never invent new ones. Any item the
// reply skipped gets the conservative default, tagged explicitly so
// downstream consumers never mistake a default for a real analysis.
func (uc *implUseCase) estimateWorkloads(ctx context.Context, items []model.ScheduleItem) int {
	if len(items) == 0 {
		return 0
	}

	rows, err := uc.requestEstimates(ctx, items)
	if err != nil {
		uc.l.Warnf(ctx, "estimation: falling back to default estimates for all %d items: %v", len(items), err)
		for i := range items {
			uc.applyDefaultEstimate(&items[i])
		}
		return len(items)
	}

	byKey := make(map[string]estimateRow, len(rows))
	for _, row := range rows {
		byKey[itemKey(row.Title, row.Date)] = row
	}

	var defaulted int
	for i := range items {
		row, ok := byKey[itemKey(items[i].Title, items[i].Date)]
		if !ok || row.EstimatedHours == nil {
			uc.applyDefaultEstimate(&items[i])
			defaulted++
			continue
		}

		items[i].EstimatedHours = row.EstimatedHours
		items[i].WorkloadBreakdown = strings.TrimSpace(row.WorkloadBreakdown)
		items[i].Confidence = parseConfidence(row.Confidence)
		items[i].Notes = strings.TrimSpace(row.Notes)
	}

	return defaulted
}

// requestEstimates performs the reasoning call and decodes the reply rows.
func (uc *implUseCase) requestEstimates(ctx context.Context, items []model.ScheduleItem) ([]estimateRow, error) {
	resp, err := uc.llm.GenerateContent(ctx, estimationRequest(items))
	if err != nil {
		return nil, err
	}

	objs, err := normalizeArray(resp.Text)
	if err != nil {
		return nil, err
	}

	rows := make([]estimateRow, 0, len(objs))
	for _, obj := range objs {
		var row estimateRow
		if err := json.Unmarshal(obj, &row); err != nil {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (uc *implUseCase) applyDefaultEstimate(item *model.ScheduleItem) {
	item.SetEstimate(uc.cfg.DefaultEstimateHours)
	item.Confidence = model.ConfidenceLow
	item.Notes = defaultEstimateNote
}

func parseConfidence(raw string) model.Confidence {
	switch model.Confidence(strings.ToLower(strings.TrimSpace(raw))) {
	case model.ConfidenceHigh:
		return model.ConfidenceHigh
	case model.ConfidenceMedium:
		return model.ConfidenceMedium
	case model.ConfidenceLow:
		return model.ConfidenceLow
	default:
		return model.ConfidenceLow
	}
}
