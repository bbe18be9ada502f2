// layers_test.go - Tests fuer die Per-Layer Verteilung
package schedule

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/archai3d/grag/errtypes"
)

func TestComputeLayerParamsLinear(t *testing.T) {
	lambdas, deltas, err := ComputeLayerParams(LayerParams{
		TotalLayers: 5,
		Strategy:    CurveLinear,
		LambdaStart: 0.9, LambdaEnd: 1.3,
		DeltaStart: 1.0, DeltaEnd: 1.2,
	})
	if err != nil {
		t.Fatal(err)
	}

	wantLambdas := []float64{0.9, 1.0, 1.1, 1.2, 1.3}
	wantDeltas := []float64{1.0, 1.05, 1.1, 1.15, 1.2}
	if diff := cmp.Diff(wantLambdas, lambdas, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("lambdas mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantDeltas, deltas, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("deltas mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeLayerParamsLength(t *testing.T) {
	for _, strategy := range []Curve{CurveLinear, CurveUShaped, CurveBellCurve} {
		for _, layers := range []int{1, 2, 28, 60} {
			lambdas, deltas, err := ComputeLayerParams(LayerParams{
				TotalLayers: layers,
				Strategy:    strategy,
				LambdaStart: 0.9, LambdaEnd: 1.3,
				DeltaStart: 0.9, DeltaEnd: 1.3,
			})
			if err != nil {
				t.Fatal(err)
			}
			if len(lambdas) != layers || len(deltas) != layers {
				t.Errorf("%s/%d: len(lambdas)=%d len(deltas)=%d", strategy, layers, len(lambdas), len(deltas))
			}
		}
	}
}

func TestComputeLayerParamsCustom(t *testing.T) {
	lambdas, deltas, err := ComputeLayerParams(LayerParams{
		TotalLayers:  4,
		Strategy:     CurveCustom,
		CustomLambda: []float64{1.0, 1.1},
		CustomDelta:  []float64{1.0, 1.1, 1.2, 1.3, 1.4},
	})
	if err != nil {
		t.Fatal(err)
	}

	// zu kurz wird mit dem letzten Wert aufgefuellt, zu lang abgeschnitten
	if diff := cmp.Diff([]float64{1.0, 1.1, 1.1, 1.1}, lambdas); diff != "" {
		t.Errorf("lambdas mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1.0, 1.1, 1.2, 1.3}, deltas); diff != "" {
		t.Errorf("deltas mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeLayerParamsCustomMissingSequences(t *testing.T) {
	cases := []struct {
		name   string
		params LayerParams
	}{
		{"delta nil", LayerParams{
			TotalLayers: 4, Strategy: CurveCustom,
			CustomLambda: []float64{1.0, 1.1},
		}},
		{"lambda nil", LayerParams{
			TotalLayers: 4, Strategy: CurveCustom,
			CustomDelta: []float64{1.0, 1.1},
		}},
		// leere Sequenzen sind genauso ungueltig wie fehlende, sonst
		// entstuende ein Null-Schedule
		{"lambda empty", LayerParams{
			TotalLayers: 4, Strategy: CurveCustom,
			CustomLambda: []float64{}, CustomDelta: []float64{1.0},
		}},
		{"delta empty", LayerParams{
			TotalLayers: 4, Strategy: CurveCustom,
			CustomLambda: []float64{1.0}, CustomDelta: []float64{},
		}},
	}

	for _, tc := range cases {
		_, _, err := ComputeLayerParams(tc.params)

		var invalid *errtypes.InvalidArgumentError
		if !errors.As(err, &invalid) {
			t.Fatalf("%s: erwartet InvalidArgumentError, bekommen %v", tc.name, err)
		}
		if invalid.Argument != "strategy" {
			t.Errorf("%s: Argument = %q, erwartet strategy", tc.name, invalid.Argument)
		}
	}
}

func TestComputeLayerParamsUnknownStrategy(t *testing.T) {
	for _, strategy := range []Curve{CurveExponential, CurveSine, CurveCosine, Curve(99)} {
		_, _, err := ComputeLayerParams(LayerParams{
			TotalLayers: 4,
			Strategy:    strategy,
			LambdaStart: 0.9, LambdaEnd: 1.3,
		})

		var invalid *errtypes.InvalidArgumentError
		if !errors.As(err, &invalid) {
			t.Errorf("%s: erwartet InvalidArgumentError, bekommen %v", strategy, err)
		}
	}
}

func TestLayerPresetByName(t *testing.T) {
	p := LayerPresetByName("structure_preserving")
	if p.Strategy != CurveLinear || p.LambdaStart != 0.9 || p.DeltaEnd != 1.3 {
		t.Errorf("structure_preserving unerwartet: %+v", p)
	}

	// unbekannte Namen fallen auf balanced_progressive zurueck
	fallback := LayerPresetByName("no_such_preset")
	if diff := cmp.Diff(LayerPresets["balanced_progressive"], fallback); diff != "" {
		t.Errorf("fallback mismatch (-want +got):\n%s", diff)
	}
}
