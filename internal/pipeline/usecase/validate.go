package usecase

import (
	"fmt"
	"strings"

	"syllabus-extraction/internal/model"
	"syllabus-extraction/pkg/dateparse"
)

// validateItems is the deterministic final pass: it never re-invokes the
// reasoning service, so the output is well-formed even when every earlier
// stage degraded to its fallback path.
//
// Dates are normalized to ISO 8601 and items with unparsable dates are
// dropped. Types outside the closed vocabulary are remapped to "other"
// rather than dropped. Hour estimates are clamped to [0, maxHours]; a
// genuine 0 passes through untouched. A final dedup runs on the normalized
// items, because two spellings of the same date are distinct keys until
// normalization maps them onto the same ISO form.
func (uc *implUseCase) validateItems(items []model.ScheduleItem, defaultYear int, report *model.QAReport) []model.ScheduleItem {
	parser := dateparse.NewParser(defaultYear)
	out := make([]model.ScheduleItem, 0, len(items))

	for _, item := range items {
		if strings.TrimSpace(item.Title) == "" {
			report.Anomalies = append(report.Anomalies, "dropped an item with an empty title")
			continue
		}

		date, err := parser.Normalize(item.Date)
		if err != nil {
			report.DroppedForDate++
			report.Anomalies = append(report.Anomalies,
				fmt.Sprintf("dropped %q: unrecoverable date %q", item.Title, item.Date))
			continue
		}
		item.Date = date

		if !item.Type.Valid() {
			report.TypeRemaps++
			report.Anomalies = append(report.Anomalies,
				fmt.Sprintf("remapped %q type %q to %q", item.Title, item.Type, model.TypeOther))
			item.Type = model.TypeOther
		}

		if item.EstimatedHours != nil {
			if clamped, ok := clampHours(*item.EstimatedHours, uc.cfg.MaxItemHours); ok {
				report.ClampedEstimates++
				report.Anomalies = append(report.Anomalies,
					fmt.Sprintf("clamped %q estimate from %.1f to %.1f hours", item.Title, *item.EstimatedHours, clamped))
				item.SetEstimate(clamped)
			}
		}

		out = append(out, item)
	}

	// Normalization can collapse two spellings of the same date onto one
	// key, so duplicates that slipped past the earlier passes are removed
	// here, on the normalized items.
	out = dedupeItems(out)

	report.ItemsIn = len(items)
	report.ItemsOut = len(out)
	return out
}

// clampHours bounds an estimate to [0, max]. Returns the bounded value and
// whether anything changed.
func clampHours(hours, max float64) (float64, bool) {
	if hours < 0 {
		return 0, true
	}
	if max > 0 && hours > max {
		return max, true
	}
	return hours, false
}

// buildSummary writes the one-line natural-language overview carried in the
// QA report.
func buildSummary(report *model.QAReport, totalHours float64) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%d of %d items passed validation", report.ItemsOut, report.ItemsIn))
	parts = append(parts, fmt.Sprintf("%.1f total estimated hours", totalHours))

	if report.DroppedForDate > 0 {
		parts = append(parts, fmt.Sprintf("%d dropped for unrecoverable dates", report.DroppedForDate))
	}
	if report.DefaultedEstimates > 0 {
		parts = append(parts, fmt.Sprintf("%d estimates defaulted", report.DefaultedEstimates))
	}
	if report.TypeRemaps > 0 {
		parts = append(parts, fmt.Sprintf("%d types remapped", report.TypeRemaps))
	}
	if report.FailedChunks > 0 {
		parts = append(parts, fmt.Sprintf("%d chunks failed extraction", report.FailedChunks))
	}
	if report.UsedFallback {
		parts = append(parts, "keyword fallback extraction was used")
	}

	return strings.Join(parts, "; ")
}
