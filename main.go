package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/lookbook/internal/app"
	"github.com/atomicstack/lookbook/internal/config"
	"github.com/atomicstack/lookbook/internal/logging"
	"github.com/atomicstack/lookbook/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(runtimeCfg))
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// catalogSummary describes the looks the gallery is about to show.
type catalogSummary struct {
	Source string `json:"source"`
	Looks  int    `json:"looks"`
	First  string `json:"first,omitempty"`
	Error  string `json:"error,omitempty"`
}

const builtinCatalog = "built-in"

func summarizeCatalog(path string) catalogSummary {
	summary := catalogSummary{Source: builtinCatalog}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		summary.Source = trimmed
	}
	c, err := app.LoadCatalog(path)
	if err != nil {
		summary.Error = err.Error()
		return summary
	}
	summary.Looks = c.Len()
	summary.First = c.At(0).ID
	return summary
}

// startupTracePayload bundles the resolved flags, the catalog and the
// terminal the gallery starts in.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]string, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"catalog": summarizeCatalog(cfg.App.CatalogPath),
		"logPath": logging.Path(),
		"tty":     collectTTYDetails(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
