// types.go - Wire-Typen des grag HTTP-APIs
//
// Dieses Modul enthaelt:
// - StatusError: Fehler mit HTTP-Statuscode
// - Request/Response-Typen fuer Schedules, Tier-Aufloesung, Validierung und Plan
//
// Optionale numerische Felder sind Pointer, damit der Server fehlende Werte
// von explizit gesetzten unterscheiden und Defaults anwenden kann.
package api

import (
	"fmt"

	"github.com/archai3d/grag/preset"
	"github.com/archai3d/grag/schedule"
)

// StatusError is an error with an HTTP status code and message.
type StatusError struct {
	StatusCode   int
	Status       string
	ErrorMessage string `json:"error"`
}

func (e StatusError) Error() string {
	switch {
	case e.Status != "" && e.ErrorMessage != "":
		return fmt.Sprintf("%s: %s", e.Status, e.ErrorMessage)
	case e.Status != "":
		return e.Status
	case e.ErrorMessage != "":
		return e.ErrorMessage
	default:
		return "something went wrong, please see the grag server logs for details"
	}
}

// LayerScheduleRequest asks for per-layer λ/δ sequences. Either Preset names
// a built-in layer preset, or Strategy plus the start/end values describe the
// distribution directly. CustomLambda/CustomDelta are required for the custom
// strategy.
type LayerScheduleRequest struct {
	TotalLayers int    `json:"total_layers"`
	Preset      string `json:"preset,omitempty"`
	Strategy    string `json:"strategy,omitempty"`

	LambdaStart *float64 `json:"lambda_start,omitempty"`
	LambdaEnd   *float64 `json:"lambda_end,omitempty"`
	DeltaStart  *float64 `json:"delta_start,omitempty"`
	DeltaEnd    *float64 `json:"delta_end,omitempty"`

	CustomLambda []float64 `json:"custom_lambda,omitempty"`
	CustomDelta  []float64 `json:"custom_delta,omitempty"`
}

// LayerScheduleResponse carries one λ and one δ value per layer.
type LayerScheduleResponse struct {
	Lambdas []float64 `json:"lambdas"`
	Deltas  []float64 `json:"deltas"`
}

// TimestepScheduleRequest asks for a per-timestep coefficient schedule.
type TimestepScheduleRequest struct {
	TotalSteps   int    `json:"total_steps"`
	Preset       string `json:"preset,omitempty"`
	ScheduleType string `json:"schedule_type,omitempty"`

	LambdaBase      *float64 `json:"lambda_base,omitempty"`
	DeltaBase       *float64 `json:"delta_base,omitempty"`
	MultiplierStart *float64 `json:"multiplier_start,omitempty"`
	MultiplierEnd   *float64 `json:"multiplier_end,omitempty"`

	CustomMultipliers []float64 `json:"custom_multipliers,omitempty"`
}

// TimestepScheduleResponse carries one coefficient pair per denoising step.
type TimestepScheduleResponse struct {
	Schedule []schedule.CoefficientPair `json:"schedule"`
}

// TierResolveRequest resolves a feature-map resolution against a two-tier
// table. Either Preset names a built-in tier preset or the tier fields
// describe the table inline.
type TierResolveRequest struct {
	Resolution uint32 `json:"resolution"`
	Preset     string `json:"preset,omitempty"`

	Tier1Resolution uint32  `json:"tier1_resolution,omitempty"`
	Tier1Lambda     float64 `json:"tier1_lambda,omitempty"`
	Tier1Delta      float64 `json:"tier1_delta,omitempty"`
	Tier2Resolution uint32  `json:"tier2_resolution,omitempty"`
	Tier2Lambda     float64 `json:"tier2_lambda,omitempty"`
	Tier2Delta      float64 `json:"tier2_delta,omitempty"`
	NumSteps        int     `json:"num_steps,omitempty"`

	// Enabled defaults to true; a disabled table always answers with the
	// second tier's pair.
	Enabled *bool `json:"enabled,omitempty"`
}

// TierResolveResponse is the coefficient pair for the queried resolution.
type TierResolveResponse struct {
	Lambda float64 `json:"lambda"`
	Delta  float64 `json:"delta"`
}

// ValidateRequest checks a (λ, δ) pair against the supported ranges.
type ValidateRequest struct {
	Lambda float64 `json:"lambda"`
	Delta  float64 `json:"delta"`
}

// ValidateResponse reports validity plus non-fatal advisories for legal
// values outside the stable band.
type ValidateResponse struct {
	Valid      bool     `json:"valid"`
	Advisories []string `json:"advisories,omitempty"`
}

// PresetEntry is a catalog preset together with its lookup key.
type PresetEntry struct {
	Key string `json:"key"`
	preset.Preset
}

// PresetsResponse lists the preset catalog.
type PresetsResponse struct {
	Presets []PresetEntry `json:"presets"`
}

// PlanRequest asks for a combined generation plan: per-layer sequences, a
// per-timestep schedule and a tier resolution in one round trip.
type PlanRequest struct {
	Layers    LayerScheduleRequest    `json:"layers"`
	Timesteps TimestepScheduleRequest `json:"timesteps"`
	Tiers     TierResolveRequest      `json:"tiers"`
}

// PlanResponse bundles the three schedule results.
type PlanResponse struct {
	Layers    LayerScheduleResponse      `json:"layers"`
	Timesteps []schedule.CoefficientPair `json:"timesteps"`
	Tier      TierResolveResponse        `json:"tier"`
}
