package usecase

import (
	"context"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"syllabus-extraction/config"
	"syllabus-extraction/pkg/llmprovider"
	pkgLog "syllabus-extraction/pkg/log"
)

// Generator is the reasoning-service gateway the pipeline depends on.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l   pkgLog.Logger
	llm Generator
	cfg config.PipelineConfig

	// chunkCache keys on a hash of the chunk text, so re-running the same
	// document within the TTL skips the reasoning call for unchanged chunks.
	chunkCache *expirable.LRU[string, []rawItem]
}

// New creates a new pipeline UseCase instance.
func New(l pkgLog.Logger, llm Generator, cfg config.PipelineConfig) *implUseCase {
	uc := &implUseCase{
		l:   l,
		llm: llm,
		cfg: cfg,
	}
	if cfg.CacheSize > 0 {
		uc.chunkCache = expirable.NewLRU[string, []rawItem](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return uc
}
