// layers.go - Per-Layer Verteilung der Reweighting-Koeffizienten
//
// Dieses Modul enthaelt:
// - LayerParams: Eingaben fuer die Layer-Verteilung
// - ComputeLayerParams: erzeugt λ- und δ-Sequenzen ueber alle Layer
//
// Unterschiedliche Layer kodieren unterschiedliche Bildaspekte (fruehe Layer
// Struktur, mittlere Semantik, spaete Details); die Strategie bestimmt, wo
// die Reweighting-Staerke landet.
package schedule

import (
	"github.com/archai3d/grag/errtypes"
)

// LayerParams describes how λ and δ are distributed across transformer
// layers. CustomLambda/CustomDelta are only consulted when Strategy is
// CurveCustom and are normalized to TotalLayers via PadOrTruncate.
type LayerParams struct {
	TotalLayers int
	Strategy    Curve

	LambdaStart float64
	LambdaEnd   float64
	DeltaStart  float64
	DeltaEnd    float64

	CustomLambda []float64
	CustomDelta  []float64
}

// ComputeLayerParams produces one λ value and one δ value per layer. It is a
// pure function: no state is carried between calls, and the same params
// always yield the same sequences.
//
// Valid strategies are CurveLinear, CurveUShaped, CurveBellCurve and
// CurveCustom; anything else fails with an InvalidArgumentError. CurveCustom
// requires both custom sequences to be non-empty.
func ComputeLayerParams(p LayerParams) (lambdas, deltas []float64, err error) {
	switch p.Strategy {
	case CurveCustom:
		// leer ist genauso unbrauchbar wie fehlend: PadOrTruncate wuerde
		// sonst eine Null-Sequenz liefern
		if len(p.CustomLambda) == 0 || len(p.CustomDelta) == 0 {
			return nil, nil, &errtypes.InvalidArgumentError{
				Argument: "strategy",
				Reason:   "custom strategy requires non-empty custom_lambda and custom_delta",
			}
		}
		lambdas = PadOrTruncate(p.CustomLambda, p.TotalLayers)
		deltas = PadOrTruncate(p.CustomDelta, p.TotalLayers)
	case CurveLinear, CurveUShaped, CurveBellCurve:
		lambdas = p.Strategy.Values(p.LambdaStart, p.LambdaEnd, p.TotalLayers)
		deltas = p.Strategy.Values(p.DeltaStart, p.DeltaEnd, p.TotalLayers)
	default:
		return nil, nil, &errtypes.InvalidArgumentError{
			Argument: "strategy",
			Reason:   "unknown layer strategy " + p.Strategy.String(),
		}
	}

	return lambdas, deltas, nil
}
