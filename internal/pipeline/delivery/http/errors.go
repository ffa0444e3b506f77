package http

import "errors"

var (
	errMissingText      = errors.New("text is required")
	errDocumentTooShort = errors.New("document text is too short to contain a schedule")
)
