package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/lookbook/internal/app"
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
	envCatalog     = "LOOKBOOK_CATALOG"
	envTitle       = "LOOKBOOK_TITLE"
	envWidth       = "LOOKBOOK_WIDTH"
	envHeight      = "LOOKBOOK_HEIGHT"
	envShowFooter  = "LOOKBOOK_FOOTER"
	envBell        = "LOOKBOOK_BELL"
	envNoAnimation = "LOOKBOOK_NO_ANIMATION"
	envMouse       = "LOOKBOOK_MOUSE"
	envTrace       = "LOOKBOOK_TRACE"
	envLogFile     = "LOOKBOOK_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("lookbook", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	catalogPath := fs.String("catalog", envOrDefault(env, envCatalog, ""), "path to a YAML catalog (empty uses the built-in looks)")
	title := fs.String("title", envOrDefault(env, envTitle, ""), "heading shown above the stage")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "show key hints instead of the stage description")
	bell := fs.Bool("bell", envOrBool(env, envBell, false), "ring the terminal bell when advancing")
	noAnimation := fs.Bool("no-animation", envOrBool(env, envNoAnimation, false), "apply every change instantly")
	mouse := fs.Bool("mouse", envOrBool(env, envMouse, true), "enable mouse clicks and hover labels")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			CatalogPath: *catalogPath,
			Title:       *title,
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Bell:        *bell,
			Instant:     *noAnimation,
			Mouse:       *mouse,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"catalog":     *catalogPath,
			"title":       *title,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"bell":        strconv.FormatBool(*bell),
			"noAnimation": strconv.FormatBool(*noAnimation),
			"mouse":       strconv.FormatBool(*mouse),
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

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the catalog can be loaded, so an empty or malformed
// catalog is reported before the terminal is taken over.
func Validate(cfg Config) error {
	if _, err := app.LoadCatalog(cfg.App.CatalogPath); err != nil {
		return err
	}
	return nil
}
