package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"syllabus-extraction/internal/pipeline"
	"syllabus-extraction/pkg/response"
)

// Extract runs the extraction pipeline on the posted document text and
// returns the pipeline result. The result is structured even when the
// pipeline degraded; only a rejected request body fails the call.
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		if errors.Is(err, errDocumentTooShort) {
			response.UnprocessableEntity(c, err)
			return
		}
		response.Error(c, err, nil)
		return
	}

	result, err := h.uc.Run(ctx, pipeline.RunInput{
		DocumentName: req.DocumentName,
		Text:         req.Text,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Run: %v", err)
		response.InternalError(c, err)
		return
	}

	if result.Success && h.exporter != nil {
		created := h.exporter.Export(ctx, result.DocumentName, result.Items)
		h.l.Infof(ctx, "calendar export: %d of %d items exported", created, len(result.Items))
	}

	response.OK(c, result)
}
