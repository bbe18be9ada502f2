// config.go - Konfiguration der Reweighting-Transformation
//
// Dieses Modul enthaelt:
// - Param: Summen-Typ fuer skalare oder per-Layer Parameter
// - Config: vollstaendige Transformations-Konfiguration
// - ConfigFromMetadata: Extraktion aus Conditioning-Metadaten
//
// Eine Config ist logisch per-(Layer, Timestep): der Aufrufer baut fuer jeden
// Layer eine frische Config mit aktualisiertem LayerIndex statt eine geteilte
// Instanz zu mutieren.
package reweight

import (
	"github.com/archai3d/grag/schedule"
)

// Param is either a single value applied uniformly or an ordered per-layer
// sequence. The explicit two-variant form replaces runtime type inspection of
// a "float or list" field.
type Param struct {
	scalar   float64
	perLayer []float64
}

// Scalar builds a uniform parameter.
func Scalar(v float64) Param {
	return Param{scalar: v}
}

// PerLayer builds a per-layer parameter sequence.
func PerLayer(values []float64) Param {
	return Param{perLayer: values}
}

// IsPerLayer reports whether the parameter carries a per-layer sequence.
func (p Param) IsPerLayer() bool { return p.perLayer != nil }

// Resolve returns the effective value for a layer. A nil layer index selects
// position 0 of a sequence; an index past the end is clamped to the last
// valid position, never an error. Scalars ignore the index.
func (p Param) Resolve(layerIndex *int) float64 {
	if p.perLayer == nil {
		return p.scalar
	}
	if len(p.perLayer) == 0 {
		return 0
	}

	idx := 0
	if layerIndex != nil {
		idx = *layerIndex
	}
	if idx >= len(p.perLayer) {
		idx = len(p.perLayer) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return p.perLayer[idx]
}

// Config drives one invocation of the reweighting transform. It is never
// mutated after construction.
type Config struct {
	Enabled bool

	// Lambda scales the group-mean component, Delta the per-token deviation.
	Lambda Param
	Delta  Param

	// Heads is the attention head count; channels must divide evenly by it.
	Heads int

	// LayerIndex selects the per-layer position of Lambda/Delta sequences.
	LayerIndex *int

	// Timestep is the current denoising step. Setting it activates the
	// StrengthMultiplier rescale; full adaptive behavior is produced upstream
	// by the timestep scheduler and passed in as already-scaled Lambda/Delta.
	Timestep *int

	// StrengthMultiplier rescales both coefficients around neutral 1.0.
	StrengthMultiplier float64

	// Epsilon is added to the group mean for numerical stability.
	Epsilon float64

	// MultiResolution switches the host to tier-based coefficient selection:
	// instead of using Lambda/Delta directly, it resolves the current
	// feature-map resolution against TierConfig before each invocation.
	MultiResolution bool

	// TierConfig is the tier table for multi-resolution selection. Only
	// consulted by the host when MultiResolution is set; the transform itself
	// never reads it.
	TierConfig schedule.TierTable
}

// DefaultConfig returns an enabled config with the documented defaults:
// neutral λ, slightly amplifying δ, 16 heads, strength 1.0, epsilon 1e-6.
func DefaultConfig() Config {
	return Config{
		Enabled:            true,
		Lambda:             Scalar(1.0),
		Delta:              Scalar(1.05),
		Heads:              16,
		StrengthMultiplier: 1.0,
		Epsilon:            1e-6,
	}
}

// WithLayer returns a copy of the config bound to a layer index. The receiver
// is left untouched so per-layer invocations never share state.
func (c Config) WithLayer(layerIndex int) Config {
	idx := layerIndex
	c.LayerIndex = &idx
	return c
}

// WithTimestep returns a copy of the config bound to a denoising timestep.
func (c Config) WithTimestep(timestep int) Config {
	ts := timestep
	c.Timestep = &ts
	return c
}

// ConfigFromMetadata extracts a transform config from a string-keyed
// conditioning metadata map. Both the current keys (grag_lambda, grag_delta,
// grag_strength_multiplier) and the legacy v2.2.1 keys (grag_cond_b,
// grag_cond_delta, grag_strength) are understood, with the current keys
// taking precedence. grag_multi_resolution and grag_tier_config carry the
// tier-based selection mode and its table.
//
// A config is only active when grag_enabled is explicitly true; otherwise
// ConfigFromMetadata returns ok == false and the transform must not run.
func ConfigFromMetadata(metadata map[string]any) (Config, bool) {
	if metadata == nil {
		return Config{}, false
	}
	if enabled, _ := metadata["grag_enabled"].(bool); !enabled {
		return Config{}, false
	}

	cfg := DefaultConfig()

	if p, ok := paramValue(metadata, "grag_lambda", "grag_cond_b"); ok {
		cfg.Lambda = p
	}
	if p, ok := paramValue(metadata, "grag_delta", "grag_cond_delta"); ok {
		cfg.Delta = p
	}
	if v, ok := floatValue(metadata, "grag_strength_multiplier", "grag_strength"); ok {
		cfg.StrengthMultiplier = v
	}
	if v, ok := floatValue(metadata, "grag_heads"); ok && v >= 1 {
		cfg.Heads = int(v)
	}
	if v, ok := metadata["grag_multi_resolution"].(bool); ok {
		cfg.MultiResolution = v
	}
	switch table := metadata["grag_tier_config"].(type) {
	case schedule.TierTable:
		cfg.TierConfig = table
	case *schedule.TierTable:
		if table != nil {
			cfg.TierConfig = *table
		}
	}

	return cfg, true
}

// paramValue reads the first present key as a scalar or per-layer parameter.
func paramValue(metadata map[string]any, keys ...string) (Param, bool) {
	for _, key := range keys {
		v, ok := metadata[key]
		if !ok {
			continue
		}
		switch value := v.(type) {
		case float64:
			return Scalar(value), true
		case int:
			return Scalar(float64(value)), true
		case []float64:
			return PerLayer(value), true
		case []any:
			seq := make([]float64, 0, len(value))
			for _, e := range value {
				switch n := e.(type) {
				case float64:
					seq = append(seq, n)
				case int:
					seq = append(seq, float64(n))
				}
			}
			return PerLayer(seq), true
		}
	}
	return Param{}, false
}

func floatValue(metadata map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		switch value := metadata[key].(type) {
		case float64:
			return value, true
		case int:
			return float64(value), true
		}
	}
	return 0, false
}
