package pipeline

// RunInput is the input for one pipeline run.
type RunInput struct {
	DocumentName string // used only for logging and report labeling
	Text         string // raw schedule text, already converted to plain text
}
