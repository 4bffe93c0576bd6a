package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/lookbook/internal/catalog"
)

func TestLoadCatalogDefault(t *testing.T) {
	c, err := LoadCatalog("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 4 || c.At(0).ID != "look-1" {
		t.Fatalf("expected built-in looks, got %d items", c.Len())
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "looks.yaml")
	doc := "looks:\n  - id: a\n    alt: First\n  - id: b\n    alt: Second\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 || c.At(1).Alt != "Second" {
		t.Fatalf("unexpected catalog %+v", c.Items())
	}
}

func TestLoadCatalogEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "looks.yaml")
	if err := os.WriteFile(path, []byte("looks: []\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadCatalog(path); !errors.Is(err, catalog.ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestNewModelWiresController(t *testing.T) {
	model, cleanup, err := NewModel(Config{Title: "Spring", Width: 80, Height: 24, Bell: true, Instant: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cleanup()
	if model.Index() != 0 || model.Frame().Advance.Position != "01 / 04" {
		t.Fatalf("expected model on first look, got %+v", model.Frame().Advance)
	}
}

func TestNewModelRejectsMissingCatalog(t *testing.T) {
	if _, _, err := NewModel(Config{CatalogPath: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("expected error for missing catalog")
	}
}
