package ui

import (
	"testing"

	"github.com/atomicstack/popup-select/internal/widget"
)

func testOptions() []widget.Option {
	return []widget.Option{
		{Value: "apple", Label: "Apple"},
		{Value: "banana", Label: "Banana"},
		{Value: "orange", Label: "Orange"},
		{Value: "blood-orange", Label: "Blood Orange"},
	}
}

func TestFilterOptionsEmptyQueryReturnsAll(t *testing.T) {
	got := FilterOptions(testOptions(), "  ")
	if len(got) != 4 {
		t.Fatalf("expected all options, got %d", len(got))
	}
}

func TestFilterOptionsFuzzyMatch(t *testing.T) {
	got := FilterOptions(testOptions(), "orange")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Value != "orange" || got[1].Value != "blood-orange" {
		t.Fatalf("expected display order preserved, got %+v", got)
	}
}

func TestFilterOptionsFallsBackToValueSubstring(t *testing.T) {
	opts := []widget.Option{
		{Value: "opt-1", Label: "First"},
		{Value: "opt-2", Label: "Second"},
	}
	got := FilterOptions(opts, "opt-2")
	if len(got) != 1 || got[0].Value != "opt-2" {
		t.Fatalf("expected value substring match, got %+v", got)
	}
}

func TestFilterOptionsNoMatches(t *testing.T) {
	if got := FilterOptions(testOptions(), "zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestBestMatchIndexPrefersExactThenPrefix(t *testing.T) {
	opts := testOptions()
	if idx := BestMatchIndex(opts, "banana"); idx != 1 {
		t.Fatalf("expected exact match at 1, got %d", idx)
	}
	if idx := BestMatchIndex(opts, "blo"); idx != 3 {
		t.Fatalf("expected prefix match at 3, got %d", idx)
	}
	if idx := BestMatchIndex(opts, ""); idx != 0 {
		t.Fatalf("expected 0 for empty query, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty options, got %d", idx)
	}
}
