package http

import (
	"github.com/gin-gonic/gin"

	"syllabus-extraction/internal/calendarsync"
	"syllabus-extraction/internal/pipeline"
	"syllabus-extraction/pkg/log"
)

// Handler is the public interface for the schedule extraction HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       pipeline.UseCase
	exporter calendarsync.Exporter // optional, nil disables calendar export
	minChars int
}

// New creates a new HTTP handler for the extraction pipeline. minChars is
// the smallest document accepted; anything shorter is rejected before the
// pipeline runs.
func New(l log.Logger, uc pipeline.UseCase, exporter calendarsync.Exporter, minChars int) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		exporter: exporter,
		minChars: minChars,
	}
}
