// presets.go - Benannte Presets fuer Layer-, Timestep- und Tier-Schedules
//
// Dieses Modul enthaelt:
// - LayerPreset / AdaptivePreset / TierPreset: Preset-Strukturen
// - LayerPresets / AdaptivePresets / TierPresets: eingebaute Tabellen
// - Lookup-Funktionen mit dokumentiertem Fallback
//
// Die Tabellen werden einmal initialisiert und danach nur gelesen; parallele
// Lookups brauchen keine Synchronisation.
package schedule

// LayerPreset is a named per-layer distribution configuration.
type LayerPreset struct {
	Name        string  `json:"name"`
	Strategy    Curve   `json:"-"`
	LambdaStart float64 `json:"lambda_start"`
	LambdaEnd   float64 `json:"lambda_end"`
	DeltaStart  float64 `json:"delta_start"`
	DeltaEnd    float64 `json:"delta_end"`
	Description string  `json:"description"`
	UseCase     string  `json:"use_case"`
}

// Params expands the preset into LayerParams for the given layer count.
func (p LayerPreset) Params(totalLayers int) LayerParams {
	return LayerParams{
		TotalLayers: totalLayers,
		Strategy:    p.Strategy,
		LambdaStart: p.LambdaStart,
		LambdaEnd:   p.LambdaEnd,
		DeltaStart:  p.DeltaStart,
		DeltaEnd:    p.DeltaEnd,
	}
}

// LayerPresets are the built-in per-layer distribution presets.
var LayerPresets = map[string]LayerPreset{
	"structure_preserving": {
		Name:        "Structure Preserving",
		Strategy:    CurveLinear,
		LambdaStart: 0.9, LambdaEnd: 1.2,
		DeltaStart: 0.9, DeltaEnd: 1.3,
		Description: "Gentle edits early, stronger late. Preserves structure while transforming details.",
		UseCase:     "Clean room workflow, architectural edits",
	},
	"semantic_focused": {
		Name:        "Semantic Focused",
		Strategy:    CurveBellCurve,
		LambdaStart: 0.9, LambdaEnd: 0.9,
		DeltaStart: 1.0, DeltaEnd: 1.0,
		Description: "Strong edits in middle layers (semantics), preserve structure and details.",
		UseCase:     "Style transfer, object replacement",
	},
	"detail_enhancer": {
		Name:        "Detail Enhancer",
		Strategy:    CurveUShaped,
		LambdaStart: 1.3, LambdaEnd: 1.3,
		DeltaStart: 1.3, DeltaEnd: 1.3,
		Description: "Strong edits at start/end, preserve middle semantics.",
		UseCase:     "Material changes, texture enhancement",
	},
	"balanced_progressive": {
		Name:        "Balanced Progressive",
		Strategy:    CurveLinear,
		LambdaStart: 1.0, LambdaEnd: 1.3,
		DeltaStart: 1.0, DeltaEnd: 1.3,
		Description: "Gradual increase from neutral to strong. Balanced approach.",
		UseCase:     "General editing",
	},
}

// LayerPresetByName looks up a layer preset. Missing keys fall back to
// balanced_progressive instead of failing.
func LayerPresetByName(name string) LayerPreset {
	if p, ok := LayerPresets[name]; ok {
		return p
	}
	return LayerPresets["balanced_progressive"]
}

// AdaptivePreset is a named timestep schedule configuration.
type AdaptivePreset struct {
	Name            string  `json:"name"`
	ScheduleType    Curve   `json:"-"`
	MultiplierStart float64 `json:"multiplier_start"`
	MultiplierEnd   float64 `json:"multiplier_end"`
	Description     string  `json:"description"`
	UseCase         string  `json:"use_case"`
}

// Params expands the preset into AdaptiveParams for the given step count.
func (p AdaptivePreset) Params(totalSteps int) AdaptiveParams {
	params := DefaultAdaptiveParams(totalSteps, p.ScheduleType)
	params.MultiplierStart = p.MultiplierStart
	params.MultiplierEnd = p.MultiplierEnd
	return params
}

// AdaptivePresets are the built-in timestep schedule presets.
var AdaptivePresets = map[string]AdaptivePreset{
	"gentle_to_strong": {
		Name:         "Gentle to Strong",
		ScheduleType: CurveLinear,
		MultiplierStart: 0.8, MultiplierEnd: 1.5,
		Description: "Steady linear increase from gentle to strong",
		UseCase:     "General editing, predictable progression",
	},
	"conservative": {
		Name:         "Conservative",
		ScheduleType: CurveExponential,
		MultiplierStart: 0.9, MultiplierEnd: 1.2,
		Description: "Slow start, moderate finish. Preserves structure.",
		UseCase:     "Structural preservation, subtle edits",
	},
	"aggressive": {
		Name:         "Aggressive",
		ScheduleType: CurveExponential,
		MultiplierStart: 0.8, MultiplierEnd: 1.8,
		Description: "Slow start, very strong finish. Maximum transformation.",
		UseCase:     "Complete redesigns, dramatic changes",
	},
	"smooth_transition": {
		Name:         "Smooth Transition",
		ScheduleType: CurveSine,
		MultiplierStart: 0.85, MultiplierEnd: 1.4,
		Description: "Smooth S-curve transition. Balanced and natural.",
		UseCase:     "Natural edits, smooth transformations",
	},
	"diffusion_aligned": {
		Name:         "Diffusion Aligned",
		ScheduleType: CurveCosine,
		MultiplierStart: 0.8, MultiplierEnd: 1.5,
		Description: "Matches the diffusion model's cosine noise schedule.",
		UseCase:     "Optimal alignment with model behavior",
	},
}

// AdaptivePresetByName looks up a timestep preset. Missing keys fall back to
// smooth_transition instead of failing.
func AdaptivePresetByName(name string) AdaptivePreset {
	if p, ok := AdaptivePresets[name]; ok {
		return p
	}
	return AdaptivePresets["smooth_transition"]
}

// TierPreset is a named two-tier resolution configuration.
type TierPreset struct {
	Name            string  `json:"name"`
	Tier1Resolution uint32  `json:"tier1_resolution"`
	Tier1Lambda     float64 `json:"tier1_lambda"`
	Tier1Delta      float64 `json:"tier1_delta"`
	Tier2Resolution uint32  `json:"tier2_resolution"`
	Tier2Lambda     float64 `json:"tier2_lambda"`
	Tier2Delta      float64 `json:"tier2_delta"`
	Description     string  `json:"description"`
	UseCase         string  `json:"use_case"`
}

// Table expands the preset into a TierTable for the given step count.
func (p TierPreset) Table(numSteps int) TierTable {
	return NewTierTable(p.Tier1Resolution, p.Tier1Lambda, p.Tier1Delta,
		p.Tier2Resolution, p.Tier2Lambda, p.Tier2Delta, numSteps)
}

// TierPresets are the built-in multi-resolution tier presets.
var TierPresets = map[string]TierPreset{
	"paper_stable": {
		Name:            "Paper: Stable (2-tier)",
		Tier1Resolution: 512, Tier1Lambda: 1.0, Tier1Delta: 1.0,
		Tier2Resolution: 4096, Tier2Lambda: 1.05, Tier2Delta: 1.10,
		Description: "Paper-recommended stable configuration",
		UseCase:     "Validated by research, maximum stability",
	},
	"v221_visible": {
		Name:            "v2.2.1: Visible Effects",
		Tier1Resolution: 512, Tier1Lambda: 0.9, Tier1Delta: 0.9,
		Tier2Resolution: 4096, Tier2Lambda: 1.3, Tier2Delta: 1.3,
		Description: "v2.2.1 proven range for visible effects",
		UseCase:     "Clear transformations, strong edits",
	},
	"structure_preserving": {
		Name:            "Structure Preserving",
		Tier1Resolution: 512, Tier1Lambda: 1.0, Tier1Delta: 1.0,
		Tier2Resolution: 4096, Tier2Lambda: 0.85, Tier2Delta: 1.15,
		Description: "Neutral coarse, gentle details",
		UseCase:     "Window preservation, structural edits",
	},
	"detail_focused": {
		Name:            "Detail Focused",
		Tier1Resolution: 512, Tier1Lambda: 1.0, Tier1Delta: 1.0,
		Tier2Resolution: 4096, Tier2Lambda: 1.5, Tier2Delta: 1.8,
		Description: "Neutral coarse, strong details",
		UseCase:     "Material changes, texture enhancement",
	},
}

// TierPresetByName looks up a tier preset. Missing keys fall back to
// v221_visible instead of failing.
func TierPresetByName(name string) TierPreset {
	if p, ok := TierPresets[name]; ok {
		return p
	}
	return TierPresets["v221_visible"]
}
