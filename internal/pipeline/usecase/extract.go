package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"sync"

	"syllabus-extraction/internal/model"
)

// extractChunks runs the extraction prompt over every chunk with a bounded
// worker pool, isolating per-chunk failures. The merge waits for every
// chunk to settle, then deduplicates in chunk order so overlap duplicates
// collapse deterministically.
func (uc *implUseCase) extractChunks(ctx context.Context, chunks []string, defaultYear int) ([]model.ScheduleItem, int) {
	results := make([]chunkResult, len(chunks))

	workers := uc.cfg.MaxConcurrentChunks
	if workers <= 0 {
		workers = 1
	}
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i := range chunks {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			items, err := uc.extractOne(ctx, chunks[idx], defaultYear)
			results[idx] = chunkResult{index: idx, items: items, err: err}
		}(i)
	}
	wg.Wait()

	var failed int
	var raw []rawItem
	for _, res := range results {
		if res.err != nil {
			failed++
			uc.l.Warnf(ctx, "extraction: chunk %d failed, skipping: %v", res.index, res.err)
			continue
		}
		raw = append(raw, res.items...)
	}

	return dedupeItems(toScheduleItems(raw)), failed
}

// extractOne sends one chunk through the reasoning service and normalizes
// the reply into candidate items. Identical chunk text within the cache TTL
// reuses the previous result.
func (uc *implUseCase) extractOne(ctx context.Context, chunk string, defaultYear int) ([]rawItem, error) {
	key := chunkKey(chunk)
	if uc.chunkCache != nil {
		if cached, ok := uc.chunkCache.Get(key); ok {
			uc.l.Debugf(ctx, "extraction: chunk cache hit")
			return cached, nil
		}
	}

	resp, err := uc.llm.GenerateContent(ctx, extractionRequest(chunk, defaultYear))
	if err != nil {
		return nil, err
	}

	objs, err := normalizeArray(resp.Text)
	if err != nil {
		return nil, err
	}

	items := decodeRawItems(objs)
	if uc.chunkCache != nil {
		uc.chunkCache.Add(key, items)
	}
	return items, nil
}

// decodeRawItems decodes candidate objects, skipping malformed ones.
func decodeRawItems(objs []json.RawMessage) []rawItem {
	items := make([]rawItem, 0, len(objs))
	for _, obj := range objs {
		var item rawItem
		if err := json.Unmarshal(obj, &item); err != nil {
			continue
		}
		if strings.TrimSpace(item.Title) == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// toScheduleItems converts candidates into partial ScheduleItems. Workload
// fields stay unset until the estimation stage.
func toScheduleItems(raw []rawItem) []model.ScheduleItem {
	items := make([]model.ScheduleItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, model.ScheduleItem{
			Title:       strings.TrimSpace(r.Title),
			Date:        strings.TrimSpace(r.Date),
			Type:        model.ItemType(strings.ToLower(strings.TrimSpace(r.Type))),
			Description: strings.TrimSpace(r.Description),
		})
	}
	return items
}

// dedupeItems removes duplicates by normalized (title, date), keeping the
// first occurrence. Chunk overlap makes duplicates routine, not an error.
func dedupeItems(items []model.ScheduleItem) []model.ScheduleItem {
	seen := make(map[string]bool, len(items))
	out := make([]model.ScheduleItem, 0, len(items))
	for _, item := range items {
		key := itemKey(item.Title, item.Date)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// itemKey builds the dedup/merge key: case-insensitive title with
// whitespace collapsed, joined with the date.
func itemKey(title, date string) string {
	return collapseWhitespace(strings.ToLower(title)) + "|" + strings.TrimSpace(date)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func chunkKey(chunk string) string {
	sum := sha256.Sum256([]byte(chunk))
	return hex.EncodeToString(sum[:])
}
