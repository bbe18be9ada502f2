// catalog.go - Katalog benannter λ/δ Presets
//
// Dieses Modul enthaelt:
// - Preset: benanntes (λ, δ, Strength) Tupel mit Metadaten
// - Catalog: unveraenderlicher Preset-Katalog mit Lookup und Fallback
// - Load: eingebaute Presets plus optionale JSON-Dateien aus einem Verzeichnis
//
// Der Katalog wird einmal beim Start vom Host gebaut und danach nur gelesen;
// parallele Lookups brauchen keine Synchronisation. Es gibt bewusst keine
// Prozess-weite Singleton-Instanz.
package preset

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// Preset is a named reweighting configuration.
type Preset struct {
	Name        string    `json:"name"`
	Lambda      float64   `json:"lambda"`
	Delta       float64   `json:"delta"`
	Strength    float64   `json:"strength"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	UseCase     string    `json:"use_case,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// Catalog is an immutable key→Preset table. Use Load to construct one.
type Catalog struct {
	presets map[string]Preset
}

// presetFile is the on-disk JSON layout: {"presets": {"key": {...}, ...}}.
type presetFile struct {
	Presets map[string]Preset `json:"presets"`
}

// builtins are the presets available without any preset files.
func builtins() map[string]Preset {
	return map[string]Preset{
		"custom": {
			Name: "Custom", Lambda: 1.0, Delta: 1.0, Strength: 1.0,
			Description: "Manual control - adjust all parameters yourself",
			Category:    "manual",
		},
		"paper_balanced": {
			Name: "Paper: Balanced", Lambda: 1.05, Delta: 1.10, Strength: 1.0,
			Description: "Recommended starting point (paper validated)",
			Category:    "paper_stable",
		},
		"paper_subtle": {
			Name: "Paper: Subtle", Lambda: 1.00, Delta: 1.05, Strength: 1.0,
			Description: "Subtle edit within the stable range",
			Category:    "paper_stable",
		},
		"v221_balanced": {
			Name: "v2.2.1: Balanced", Lambda: 1.00, Delta: 1.50, Strength: 1.0,
			Description: "v2.2.1 proven range for visible effects",
			Category:    "v221_proven",
		},
		"clean_room_gentle": {
			Name: "Clean Room: Gentle", Lambda: 0.85, Delta: 1.15, Strength: 1.0,
			Description: "Window preservation, gentle scaffolding removal",
			Category:    "clean_room",
		},
	}
}

// Load builds a catalog from the built-in presets merged with every *.json
// file in dir (file entries win over built-ins). An empty dir skips file
// loading; unreadable files are logged and skipped rather than failing the
// whole catalog.
func Load(dir string) *Catalog {
	presets := builtins()

	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			slog.Warn("presets directory not readable, using built-ins", "dir", dir, "error", err)
		} else {
			for _, entry := range entries {
				if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
					continue
				}

				path := filepath.Join(dir, entry.Name())
				data, err := os.ReadFile(path)
				if err != nil {
					slog.Warn("skipping preset file", "path", path, "error", err)
					continue
				}

				var file presetFile
				if err := json.Unmarshal(data, &file); err != nil {
					slog.Warn("skipping malformed preset file", "path", path, "error", err)
					continue
				}

				for key, p := range file.Presets {
					presets[key] = p
				}
			}
		}
	}

	slog.Debug("preset catalog loaded", "count", len(presets))
	return &Catalog{presets: presets}
}

// neutral is the documented fallback for unknown keys.
func neutral() Preset {
	return Preset{
		Name: "Custom", Lambda: 1.0, Delta: 1.0, Strength: 1.0,
		Description: "Manual control",
		Category:    "manual",
	}
}

// Get looks up a preset by key. A missing key returns the neutral "custom"
// entry rather than failing, so a stale preset name never aborts generation.
func (c *Catalog) Get(key string) Preset {
	if p, ok := c.presets[key]; ok {
		return p
	}

	slog.Info("preset not found, using neutral fallback", "key", key)
	if p, ok := c.presets["custom"]; ok {
		return p
	}
	return neutral()
}

// GetByName looks up a preset by its display name, falling back like Get.
func (c *Catalog) GetByName(name string) Preset {
	for _, p := range c.presets {
		if p.Name == name {
			return p
		}
	}
	return c.Get("custom")
}

// Keys returns all preset keys in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.presets))
	for key := range c.presets {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of presets in the catalog.
func (c *Catalog) Len() int { return len(c.presets) }
