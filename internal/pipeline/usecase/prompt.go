package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"syllabus-extraction/internal/model"
	"syllabus-extraction/pkg/llmprovider"
)

const extractionSystemInstruction = `You are an assistant that extracts dated work items from academic schedule text. You respond with JSON only, no prose, no markdown fences.`

const estimationSystemInstruction = `You are an assistant that estimates the student workload of academic schedule items. You respond with JSON only, no prose, no markdown fences.`

// buildExtractionPrompt asks for every dated item in one chunk. The closed
// type vocabulary is spelled out so replies stay mappable, and the prompt
// demands exhaustive extraction rather than a representative sample.
func buildExtractionPrompt(chunk string, defaultYear int) string {
	var sb strings.Builder

	sb.WriteString("Extract EVERY dated work item from the schedule text below. ")
	sb.WriteString("Do not summarize or sample: every assignment, quiz, exam, project, reading, and deadline with a date must appear.\n\n")
	sb.WriteString("Return a JSON array. Each element has exactly these fields:\n")
	sb.WriteString(`- "title": short human-readable label` + "\n")
	sb.WriteString(`- "date": the due or occurrence date in YYYY-MM-DD format` + "\n")
	fmt.Fprintf(&sb, `- "type": one of %s`+"\n", typeVocabulary())
	sb.WriteString(`- "description": free text, may be empty` + "\n\n")
	fmt.Fprintf(&sb, "When the text gives a date without a year, assume %d.\n", defaultYear)
	sb.WriteString("If the text contains no dated items, return [].\n\n")
	sb.WriteString("Schedule text:\n")
	sb.WriteString(chunk)

	return sb.String()
}

// buildEstimationPrompt asks for workload fields for the already-extracted
// items, batched into one call. The reply must echo title and date verbatim
// so rows can be merged back by key.
func buildEstimationPrompt(items []model.ScheduleItem) string {
	var sb strings.Builder

	sb.WriteString("Estimate the student workload for each schedule item below.\n\n")
	sb.WriteString("Return a JSON array with one element per item, each with exactly these fields:\n")
	sb.WriteString(`- "title": copied verbatim from the input item` + "\n")
	sb.WriteString(`- "date": copied verbatim from the input item` + "\n")
	sb.WriteString(`- "estimated_hours": non-negative number of hours; 0 is valid for trivial administrative tasks` + "\n")
	sb.WriteString(`- "workload_breakdown": how the hours were derived` + "\n")
	sb.WriteString(`- "confidence": one of ["high", "medium", "low"]` + "\n")
	sb.WriteString(`- "notes": caveats, may be empty` + "\n\n")
	sb.WriteString("Do not add items that are not in the input, and do not drop any.\n\n")
	sb.WriteString("Items:\n")

	rows := make([]map[string]string, 0, len(items))
	for i := range items {
		rows = append(rows, map[string]string{
			"title":       items[i].Title,
			"date":        items[i].Date,
			"type":        string(items[i].Type),
			"description": items[i].Description,
		})
	}
	encoded, _ := json.Marshal(rows)
	sb.Write(encoded)

	return sb.String()
}

// extractionRequest wraps one chunk into a reasoning request. Low
// temperature keeps the JSON output deterministic.
func extractionRequest(chunk string, defaultYear int) *llmprovider.Request {
	return &llmprovider.Request{
		SystemInstruction: extractionSystemInstruction,
		Prompt:            buildExtractionPrompt(chunk, defaultYear),
		Temperature:       0.2,
		MaxTokens:         4096,
	}
}

// estimationRequest wraps the full item batch into one reasoning request.
func estimationRequest(items []model.ScheduleItem) *llmprovider.Request {
	return &llmprovider.Request{
		SystemInstruction: estimationSystemInstruction,
		Prompt:            buildEstimationPrompt(items),
		Temperature:       0.2,
		MaxTokens:         8192,
	}
}

func typeVocabulary() string {
	types := []string{
		string(model.TypeAssignment), string(model.TypeQuiz),
		string(model.TypeExam), string(model.TypeProject),
		string(model.TypeReading), string(model.TypeDeadline),
		string(model.TypeClassSession), string(model.TypeOther),
	}
	encoded, _ := json.Marshal(types)
	return string(encoded)
}
