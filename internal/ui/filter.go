package ui

import (
	"strings"

	"github.com/atomicstack/popup-select/internal/widget"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterOptions returns options matching the supplied query. Fuzzy label
// matching runs first; when it yields nothing a plain substring scan over
// labels and values is used as a fallback.
func FilterOptions(opts []widget.Option, query string) []widget.Option {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return widget.CloneOptions(opts)
	}
	labels := make([]string, len(opts))
	for i, opt := range opts {
		labels[i] = opt.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]widget.Option, 0, len(matches))
		for idx, opt := range opts {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, opt)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]widget.Option, 0, len(opts))
	for _, opt := range opts {
		if strings.Contains(strings.ToLower(opt.Label), lower) ||
			strings.Contains(strings.ToLower(opt.Value), lower) {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}

// BestMatchIndex returns the index to focus for the query among the provided
// options: exact matches first, then prefix matches, then substring matches,
// then the best fuzzy rank. An empty list reports -1.
func BestMatchIndex(opts []widget.Option, query string) int {
	if len(opts) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, opt := range opts {
		if strings.EqualFold(opt.Label, trimmed) || strings.EqualFold(opt.Value, trimmed) {
			return i
		}
	}
	for i, opt := range opts {
		if strings.HasPrefix(strings.ToLower(opt.Label), lower) {
			return i
		}
	}
	for i, opt := range opts {
		if strings.Contains(strings.ToLower(opt.Label), lower) ||
			strings.Contains(strings.ToLower(opt.Value), lower) {
			return i
		}
	}
	labels := make([]string, len(opts))
	for i, opt := range opts {
		labels[i] = opt.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(opts) {
		return 0
	}
	return best.OriginalIndex
}
