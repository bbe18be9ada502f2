// adaptive.go - Timestep-abhaengige Koeffizienten-Schedules
//
// Dieses Modul enthaelt:
// - CoefficientPair: ein (λ, δ) Paar
// - AdaptiveParams: Eingaben fuer den Timestep-Schedule
// - AdaptiveSchedule: erzeugt pro Denoising-Schritt ein Koeffizienten-Paar
//
// Fruehe (verrauschte) Schritte formen Struktur, spaete Schritte Details;
// der Multiplier-Verlauf verschiebt die Reweighting-Staerke entsprechend.
package schedule

import (
	"github.com/archai3d/grag/errtypes"
)

// CoefficientPair is one (λ, δ) pair. λ scales the group-mean component of a
// key, δ scales the per-token deviation. Pairs are immutable once produced.
type CoefficientPair struct {
	Lambda float64 `json:"lambda"`
	Delta  float64 `json:"delta"`
}

// AdaptiveParams describes a per-timestep schedule. The multiplier curve runs
// from MultiplierStart to MultiplierEnd; CustomMultipliers replaces the curve
// when ScheduleType is CurveCustom.
type AdaptiveParams struct {
	TotalSteps   int
	ScheduleType Curve

	LambdaBase float64
	DeltaBase  float64

	MultiplierStart float64
	MultiplierEnd   float64

	CustomMultipliers []float64
}

// DefaultAdaptiveParams returns the parameter defaults: neutral λ base, a
// slightly amplifying δ base, and a gentle-to-strong multiplier ramp.
func DefaultAdaptiveParams(totalSteps int, scheduleType Curve) AdaptiveParams {
	return AdaptiveParams{
		TotalSteps:      totalSteps,
		ScheduleType:    scheduleType,
		LambdaBase:      1.0,
		DeltaBase:       1.05,
		MultiplierStart: 0.8,
		MultiplierEnd:   1.5,
	}
}

// AdaptiveSchedule produces one CoefficientPair per denoising step. The
// multiplier scales the deviation from neutral, not the raw base:
//
//	λ_i = 1.0 + (λ_base - 1.0) * m_i
//	δ_i = 1.0 + (δ_base - 1.0) * m_i
//
// so m_i == 1.0 reproduces the base unchanged and m_i == 0.0 collapses both
// to neutral regardless of base.
//
// Valid schedule types are CurveLinear, CurveExponential, CurveSine,
// CurveCosine and CurveCustom; anything else fails with an
// InvalidArgumentError. CurveCustom requires a non-empty CustomMultipliers.
func AdaptiveSchedule(p AdaptiveParams) ([]CoefficientPair, error) {
	var multipliers []float64

	switch p.ScheduleType {
	case CurveCustom:
		if len(p.CustomMultipliers) == 0 {
			return nil, &errtypes.InvalidArgumentError{
				Argument: "schedule_type",
				Reason:   "custom schedule requires non-empty custom_multipliers",
			}
		}
		multipliers = PadOrTruncate(p.CustomMultipliers, p.TotalSteps)
	case CurveLinear, CurveExponential, CurveSine, CurveCosine:
		multipliers = p.ScheduleType.Values(p.MultiplierStart, p.MultiplierEnd, p.TotalSteps)
	default:
		return nil, &errtypes.InvalidArgumentError{
			Argument: "schedule_type",
			Reason:   "unknown schedule type " + p.ScheduleType.String(),
		}
	}

	pairs := make([]CoefficientPair, len(multipliers))
	for i, m := range multipliers {
		pairs[i] = CoefficientPair{
			Lambda: 1.0 + (p.LambdaBase-1.0)*m,
			Delta:  1.0 + (p.DeltaBase-1.0)*m,
		}
	}

	return pairs, nil
}
