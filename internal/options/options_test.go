package options

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseBareValuesAndLabels(t *testing.T) {
	opts, err := Parse([]string{"apple", "banana:Ripe Banana", "orange: Orange "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
	if opts[0].Value != "apple" || opts[0].Label != "apple" {
		t.Fatalf("expected bare value to double as label, got %+v", opts[0])
	}
	if opts[1].Label != "Ripe Banana" {
		t.Fatalf("expected explicit label, got %q", opts[1].Label)
	}
	if opts[2].Label != "Orange" {
		t.Fatalf("expected trimmed label, got %q", opts[2].Label)
	}
}

func TestParseRejectsDuplicates(t *testing.T) {
	if _, err := Parse([]string{"a", "b", "a:Again"}); err == nil {
		t.Fatalf("expected duplicate value error")
	}
}

func TestParseRejectsEmptyValue(t *testing.T) {
	if _, err := Parse([]string{":label only"}); err == nil {
		t.Fatalf("expected empty value error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")
	data := `[{"value":"apple","label":"Apple"},{"value":"banana"}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	opts, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 2 {
		t.Fatalf("expected 2 options, got %d", len(opts))
	}
	if opts[1].Label != "banana" {
		t.Fatalf("expected label defaulted to value, got %q", opts[1].Label)
	}
}

func TestLoadFileRejectsDuplicatesAndMissingValues(t *testing.T) {
	dir := t.TempDir()

	dup := filepath.Join(dir, "dup.json")
	if err := os.WriteFile(dup, []byte(`[{"value":"a"},{"value":"a"}]`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFile(dup); err == nil {
		t.Fatalf("expected duplicate value error")
	}

	missing := filepath.Join(dir, "missing.json")
	if err := os.WriteFile(missing, []byte(`[{"label":"no value"}]`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFile(missing); err == nil {
		t.Fatalf("expected missing value error")
	}
}

func TestLoadFileMissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
