package pipeline

import (
	"context"

	"syllabus-extraction/internal/model"
)

// UseCase defines the business logic interface for the extraction pipeline.
type UseCase interface {
	// Run executes the full pipeline on one document: segmentation,
	// extraction, workload estimation, QA validation. It always returns a
	// structured result; upstream failures degrade to fallback paths
	// instead of propagating.
	Run(ctx context.Context, input RunInput) (model.PipelineResult, error)
}
