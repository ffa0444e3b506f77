package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

type extractReq struct {
	DocumentName string `json:"document_name"`
	Text         string `json:"text"`
}

// processExtractReq binds and validates the extraction request body.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate(h.minChars)
}

func (r extractReq) validate(minChars int) error {
	text := strings.TrimSpace(r.Text)
	if text == "" {
		return errMissingText
	}
	if len(text) < minChars {
		return errDocumentTooShort
	}
	return nil
}
