package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"syllabus-extraction/internal/model"
	"syllabus-extraction/internal/pipeline"
	"syllabus-extraction/pkg/dateparse"
)

// Run executes the staged pipeline on one document. Failures inside a
// stage degrade to fallback paths; the only terminal failure is a document
// from which neither the reasoning path nor the keyword fallback recovers
// a single item.
func (uc *implUseCase) Run(ctx context.Context, input pipeline.RunInput) (model.PipelineResult, error) {
	runID := uuid.NewString()

	if uc.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.Timeout)
		defer cancel()
	}

	uc.l.Infof(ctx, "pipeline run %s: document=%q length=%d", runID, input.DocumentName, len(input.Text))

	var report model.QAReport

	// Segmenting.
	if strings.TrimSpace(input.Text) == "" {
		return uc.failed(ctx, runID, input.DocumentName, pipeline.ErrEmptyDocument), nil
	}
	defaultYear := dateparse.InferYear(input.Text)
	chunks := segmentText(input.Text, uc.cfg.ChunkSize, uc.cfg.ChunkOverlap)
	uc.l.Infof(ctx, "pipeline run %s: segmented into %d chunks, default year %d", runID, len(chunks), defaultYear)

	// Extracting. One bad chunk never aborts the document; a total loss
	// falls back to keyword extraction over the full original text.
	items, failedChunks := uc.extractChunks(ctx, chunks, defaultYear)
	report.FailedChunks = failedChunks
	if len(items) == 0 {
		uc.l.Warnf(ctx, "pipeline run %s: extraction yielded nothing, trying keyword fallback", runID)
		report.UsedFallback = true
		items = dedupeItems(toScheduleItems(keywordExtract(input.Text, defaultYear, uc.cfg.FallbackScanLimit)))
	}
	if len(items) == 0 {
		return uc.failed(ctx, runID, input.DocumentName, pipeline.ErrNoItems), nil
	}
	uc.l.Infof(ctx, "pipeline run %s: extracted %d candidate items (%d chunks failed)", runID, len(items), failedChunks)

	// Estimating. The batch call degrades to explicit defaults; the merge
	// can revive overlap duplicates, hence the second dedup pass.
	report.DefaultedEstimates = uc.estimateWorkloads(ctx, items)
	items = dedupeItems(items)

	partial := ctx.Err() != nil
	if partial {
		uc.l.Warnf(ctx, "pipeline run %s: deadline hit, finishing with local stages only", runID)
	}

	// Validating. Deterministic and local, so it completes even after the
	// deadline passed.
	items = uc.validateItems(items, defaultYear, &report)
	total := model.SumEstimatedHours(items)
	report.Summary = buildSummary(&report, total)

	uc.l.Infof(ctx, "pipeline run %s: done, %d items, %.1f hours", runID, len(items), total)

	return model.PipelineResult{
		RunID:               runID,
		DocumentName:        input.DocumentName,
		Success:             true,
		State:               model.StateDone,
		Partial:             partial,
		Items:               items,
		TotalEstimatedHours: total,
		QAReport:            report,
	}, nil
}

// failed builds the terminal failure result. The error is carried inside
// the result: nothing throws past the orchestrator boundary.
func (uc *implUseCase) failed(ctx context.Context, runID, documentName string, err error) model.PipelineResult {
	uc.l.Errorf(ctx, "pipeline run %s: failed: %v", runID, err)
	return model.PipelineResult{
		RunID:        runID,
		DocumentName: documentName,
		Success:      false,
		State:        model.StateFailed,
		Items:        []model.ScheduleItem{},
		QAReport: model.QAReport{
			Summary: "pipeline failed before any item could be extracted",
		},
		Error: err.Error(),
	}
}
