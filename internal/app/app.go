package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/lookbook/internal/catalog"
	"github.com/atomicstack/lookbook/internal/cue"
	"github.com/atomicstack/lookbook/internal/gallery"
	"github.com/atomicstack/lookbook/internal/logging/events"
	"github.com/atomicstack/lookbook/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath string
	Title       string
	Width       int
	Height      int
	ShowFooter  bool
	Bell        bool
	Instant     bool
	Mouse       bool
}

// LoadCatalog returns the catalog at path, or the built-in looks when path is
// empty.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// NewModel wires the controller and UI model for cfg. The returned cleanup
// must be called once the program has exited.
func NewModel(cfg Config) (*ui.Model, func(), error) {
	c, err := LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {}
	var opts []gallery.Option
	if cfg.Bell {
		// The renderer owns stdout; the bell goes to the same terminal
		// through stderr.
		bell := cue.NewBell(os.Stderr, cue.DefaultBellInterval)
		opts = append(opts, gallery.WithCue(bell))
		cleanup = bell.Close
	}
	ctl := gallery.New(c, opts...)
	model := ui.NewModel(ctl, ui.Options{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Instant:    cfg.Instant,
	})
	return model, cleanup, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, cleanup, err := NewModel(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	program := tea.NewProgram(model, opts...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Exit("killed")
		return nil
	}
	if err != nil {
		events.App.Exit("error")
		return err
	}
	events.App.Exit("quit")
	return nil
}
