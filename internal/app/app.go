package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/popup-select/internal/backend"
	"github.com/atomicstack/popup-select/internal/options"
	"github.com/atomicstack/popup-select/internal/ui"
	"github.com/atomicstack/popup-select/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Value       string
	OptionsFile string
	Watch       time.Duration
	OptionSpecs []string
	Width       int
	Height      int
	ShowFooter  bool
	Placeholder string
}

// Result is what the popup produced.
type Result struct {
	Value     string
	Committed bool
}

// Run bootstraps and executes the Bubble Tea program. Each invocation owns
// one widget instance: store, scroll port, and navigator are constructed
// here and torn down when the program exits.
func Run(cfg Config) (Result, error) {
	opts, err := loadOptions(cfg)
	if err != nil {
		return Result{}, err
	}

	var watcher *backend.Watcher
	if cfg.OptionsFile != "" && cfg.Watch > 0 {
		watcher = backend.NewWatcher(cfg.OptionsFile, cfg.Watch, backend.DefaultLoadGap)
		defer watcher.Stop()
	}

	model := ui.NewModel(ui.Options{
		Value:       cfg.Value,
		Options:     opts,
		Placeholder: cfg.Placeholder,
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
		Watcher:     watcher,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return Result{}, err
	}
	value, committed := model.Result()
	return Result{Value: value, Committed: committed}, nil
}

// loadOptions merges inline option specs with the options file; inline specs
// win when both are given so ad-hoc invocations can shadow a shared file.
func loadOptions(cfg Config) ([]widget.Option, error) {
	if len(cfg.OptionSpecs) > 0 {
		opts, err := options.Parse(cfg.OptionSpecs)
		if err != nil {
			return nil, fmt.Errorf("parse options: %w", err)
		}
		return opts, nil
	}
	opts, err := options.LoadFile(cfg.OptionsFile)
	if err != nil {
		return nil, fmt.Errorf("load options: %w", err)
	}
	return opts, nil
}
