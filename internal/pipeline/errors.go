package pipeline

import "errors"

// Domain-specific errors for the pipeline package.
var (
	ErrEmptyDocument = errors.New("document text is empty")
	ErrParseFailure  = errors.New("response unusable after all normalization strategies")
	ErrNoItems       = errors.New("no schedule items could be extracted")
)
