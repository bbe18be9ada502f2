// config_test.go - Tests fuer Param-Aufloesung und Metadaten-Extraktion
package reweight

import (
	"testing"

	"github.com/archai3d/grag/schedule"
)

func TestParamResolveScalar(t *testing.T) {
	p := Scalar(1.3)
	if p.IsPerLayer() {
		t.Error("Scalar sollte nicht per-layer sein")
	}

	idx := 7
	for _, layerIndex := range []*int{nil, &idx} {
		if got := p.Resolve(layerIndex); got != 1.3 {
			t.Errorf("Resolve(%v) = %v, erwartet 1.3", layerIndex, got)
		}
	}
}

func TestParamResolvePerLayer(t *testing.T) {
	p := PerLayer([]float64{1.0, 1.1, 1.2})
	if !p.IsPerLayer() {
		t.Error("PerLayer sollte per-layer sein")
	}

	cases := []struct {
		name  string
		index *int
		want  float64
	}{
		{"nil index selects first", nil, 1.0},
		{"in range", ptr(1), 1.1},
		{"last", ptr(2), 1.2},
		{"clamped past end", ptr(10), 1.2},
		{"negative clamps to first", ptr(-3), 1.0},
	}

	for _, tc := range cases {
		if got := p.Resolve(tc.index); got != tc.want {
			t.Errorf("%s: Resolve = %v, erwartet %v", tc.name, got, tc.want)
		}
	}
}

func TestParamResolveEmptySequence(t *testing.T) {
	p := PerLayer([]float64{})
	if got := p.Resolve(nil); got != 0 {
		t.Errorf("leere Sequenz: Resolve = %v, erwartet 0", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Enabled {
		t.Error("DefaultConfig sollte aktiviert sein")
	}
	if got := cfg.Lambda.Resolve(nil); got != 1.0 {
		t.Errorf("Lambda = %v, erwartet 1.0", got)
	}
	if got := cfg.Delta.Resolve(nil); got != 1.05 {
		t.Errorf("Delta = %v, erwartet 1.05", got)
	}
	if cfg.Heads != 16 || cfg.StrengthMultiplier != 1.0 || cfg.Epsilon != 1e-6 {
		t.Errorf("unerwartete Defaults: %+v", cfg)
	}
	if cfg.LayerIndex != nil || cfg.Timestep != nil {
		t.Error("LayerIndex und Timestep sollten ungebunden starten")
	}
}

func TestWithLayerAndTimestepCopy(t *testing.T) {
	base := DefaultConfig()

	bound := base.WithLayer(3).WithTimestep(12)
	if bound.LayerIndex == nil || *bound.LayerIndex != 3 {
		t.Errorf("LayerIndex = %v", bound.LayerIndex)
	}
	if bound.Timestep == nil || *bound.Timestep != 12 {
		t.Errorf("Timestep = %v", bound.Timestep)
	}

	// der Receiver bleibt ungebunden
	if base.LayerIndex != nil || base.Timestep != nil {
		t.Error("WithLayer/WithTimestep haben den Receiver mutiert")
	}
}

func TestConfigFromMetadata(t *testing.T) {
	cfg, ok := ConfigFromMetadata(map[string]any{
		"grag_enabled":             true,
		"grag_lambda":              1.2,
		"grag_delta":               []any{1.0, 1.1, 1.3},
		"grag_strength_multiplier": 0.7,
		"grag_heads":               24,
	})
	if !ok {
		t.Fatal("erwartet ok == true")
	}

	if got := cfg.Lambda.Resolve(nil); got != 1.2 {
		t.Errorf("Lambda = %v, erwartet 1.2", got)
	}
	if !cfg.Delta.IsPerLayer() {
		t.Error("Delta sollte per-layer sein")
	}
	if got := cfg.Delta.Resolve(ptr(2)); got != 1.3 {
		t.Errorf("Delta[2] = %v, erwartet 1.3", got)
	}
	if cfg.StrengthMultiplier != 0.7 || cfg.Heads != 24 {
		t.Errorf("multiplier=%v heads=%d", cfg.StrengthMultiplier, cfg.Heads)
	}
}

func TestConfigFromMetadataTierConfig(t *testing.T) {
	table := schedule.NewTierTable(512, 1.0, 1.0, 4096, 1.3, 1.3, 60)

	cfg, ok := ConfigFromMetadata(map[string]any{
		"grag_enabled":          true,
		"grag_multi_resolution": true,
		"grag_tier_config":      table,
	})
	if !ok {
		t.Fatal("erwartet ok == true")
	}

	if !cfg.MultiResolution {
		t.Error("MultiResolution sollte gesetzt sein")
	}
	if len(cfg.TierConfig.Tiers) != 2 || !cfg.TierConfig.Enabled {
		t.Errorf("TierConfig = %+v", cfg.TierConfig)
	}
	if pair := cfg.TierConfig.Resolve(8000); pair.Lambda != 1.3 || pair.Delta != 1.3 {
		t.Errorf("Resolve(8000) = %+v, erwartet (1.3, 1.3)", pair)
	}

	// Pointer-Form der Tabelle wird genauso akzeptiert
	cfg, ok = ConfigFromMetadata(map[string]any{
		"grag_enabled":     true,
		"grag_tier_config": &table,
	})
	if !ok {
		t.Fatal("erwartet ok == true")
	}
	if cfg.MultiResolution {
		t.Error("MultiResolution darf ohne grag_multi_resolution nicht gesetzt sein")
	}
	if len(cfg.TierConfig.Tiers) != 2 {
		t.Errorf("TierConfig = %+v", cfg.TierConfig)
	}
}

func TestConfigFromMetadataLegacyKeys(t *testing.T) {
	cfg, ok := ConfigFromMetadata(map[string]any{
		"grag_enabled":    true,
		"grag_cond_b":     1.1,
		"grag_cond_delta": 1.25,
		"grag_strength":   0.9,
	})
	if !ok {
		t.Fatal("erwartet ok == true")
	}

	if got := cfg.Lambda.Resolve(nil); got != 1.1 {
		t.Errorf("Lambda = %v, erwartet 1.1", got)
	}
	if got := cfg.Delta.Resolve(nil); got != 1.25 {
		t.Errorf("Delta = %v, erwartet 1.25", got)
	}
	if cfg.StrengthMultiplier != 0.9 {
		t.Errorf("StrengthMultiplier = %v, erwartet 0.9", cfg.StrengthMultiplier)
	}
}

func TestConfigFromMetadataCurrentKeysWin(t *testing.T) {
	cfg, ok := ConfigFromMetadata(map[string]any{
		"grag_enabled": true,
		"grag_lambda":  1.3,
		"grag_cond_b":  0.8,
	})
	if !ok {
		t.Fatal("erwartet ok == true")
	}
	if got := cfg.Lambda.Resolve(nil); got != 1.3 {
		t.Errorf("Lambda = %v, erwartet den aktuellen Key 1.3", got)
	}
}

func TestConfigFromMetadataDisabled(t *testing.T) {
	for _, metadata := range []map[string]any{
		nil,
		{},
		{"grag_lambda": 1.2},
		{"grag_enabled": false, "grag_lambda": 1.2},
		{"grag_enabled": "true"}, // kein bool, zaehlt als deaktiviert
	} {
		if _, ok := ConfigFromMetadata(metadata); ok {
			t.Errorf("metadata %v: erwartet ok == false", metadata)
		}
	}
}

func ptr(v int) *int { return &v }
