package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/popup-select/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envValue       = "POPUP_SELECT_VALUE"
	envOptionsFile = "POPUP_SELECT_OPTIONS_FILE"
	envWatch       = "POPUP_SELECT_WATCH"
	envWidth       = "POPUP_SELECT_WIDTH"
	envHeight      = "POPUP_SELECT_HEIGHT"
	envShowFooter  = "POPUP_SELECT_FOOTER"
	envPlaceholder = "POPUP_SELECT_PLACEHOLDER"
	envTrace       = "POPUP_SELECT_TRACE"
	envLogFile     = "POPUP_SELECT_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("popup-select", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	value := fs.String("value", envOrDefault(env, envValue, ""), "initially selected option value")
	optionsFile := fs.String("options-file", envOrDefault(env, envOptionsFile, ""), "path to a JSON file with [{\"value\",\"label\"}] entries")
	watch := fs.Duration("watch", envOrDuration(env, envWatch, 0), "poll interval for reloading the options file (0 disables)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	placeholder := fs.String("placeholder", envOrDefault(env, envPlaceholder, "Select an option"), "text shown while nothing is selected")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *watch < 0 {
		return Config{}, fmt.Errorf("watch interval must be >= 0 (got %s)", *watch)
	}
	if *watch > 0 && *optionsFile == "" {
		return Config{}, fmt.Errorf("watch requires -options-file")
	}

	cfg := Config{
		App: app.Config{
			Value:       *value,
			OptionsFile: *optionsFile,
			Watch:       *watch,
			OptionSpecs: fs.Args(),
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Placeholder: *placeholder,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"value":       *value,
			"optionsFile": *optionsFile,
			"watch":       watch.String(),
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"placeholder": *placeholder,
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures an option source is present.
func Validate(cfg Config) error {
	if len(cfg.App.OptionSpecs) == 0 && cfg.App.OptionsFile == "" {
		return fmt.Errorf("no options given: pass option specs as arguments or -options-file")
	}
	return nil
}
