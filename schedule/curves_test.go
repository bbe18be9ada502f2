// curves_test.go - Tests fuer Kurvengenerierung und Sequenz-Normalisierung
package schedule

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var allCurves = []Curve{CurveLinear, CurveExponential, CurveSine, CurveCosine, CurveUShaped, CurveBellCurve}

func TestCurveLength(t *testing.T) {
	for _, curve := range allCurves {
		for _, n := range []int{1, 2, 3, 7, 24, 100} {
			values := curve.Values(0.8, 1.5, n)
			if len(values) != n {
				t.Errorf("%s: len = %d, erwartet %d", curve, len(values), n)
			}
		}
	}
}

func TestCurveSingleSampleIsMidpoint(t *testing.T) {
	for _, curve := range allCurves {
		values := curve.Values(0.8, 1.5, 1)
		want := (0.8 + 1.5) / 2
		if len(values) != 1 || math.Abs(values[0]-want) > 1e-12 {
			t.Errorf("%s: n=1 ergibt %v, erwartet [%v]", curve, values, want)
		}
	}
}

func TestCurveValuesWithoutGenerator(t *testing.T) {
	// custom hat keinen Generator, und unbekannte Werte duerfen nicht
	// stillschweigend als linear gerendert werden
	for _, curve := range []Curve{CurveCustom, Curve(99), Curve(-1)} {
		for _, n := range []int{1, 5} {
			if values := curve.Values(0.8, 1.5, n); values != nil {
				t.Errorf("%s: Values(n=%d) = %v, erwartet nil", curve, n, values)
			}
		}
	}
}

func TestCurveEndpoints(t *testing.T) {
	// Monotone Kurven treffen Start und Ende exakt
	for _, curve := range []Curve{CurveLinear, CurveExponential, CurveSine, CurveCosine} {
		values := curve.Values(0.8, 1.5, 9)
		if math.Abs(values[0]-0.8) > 1e-9 {
			t.Errorf("%s: values[0] = %v, erwartet 0.8", curve, values[0])
		}
		if math.Abs(values[8]-1.5) > 1e-9 {
			t.Errorf("%s: values[n-1] = %v, erwartet 1.5", curve, values[8])
		}
	}
}

func TestLinearCurveSamples(t *testing.T) {
	values := CurveLinear.Values(0, 1, 11)
	for i, v := range values {
		want := float64(i) / 10
		if math.Abs(v-want) > 1e-12 {
			t.Errorf("values[%d] = %v, erwartet %v", i, v, want)
		}
	}
}

func TestCosineCurveSymmetry(t *testing.T) {
	// Cosine-Annealing ist punktsymmetrisch um die Mitte:
	// values[i] + values[n-1-i] == start + end
	values := CurveCosine.Values(0.8, 1.5, 21)
	for i := range values {
		sum := values[i] + values[len(values)-1-i]
		if math.Abs(sum-(0.8+1.5)) > 1e-9 {
			t.Errorf("values[%d]+values[%d] = %v, erwartet %v", i, len(values)-1-i, sum, 0.8+1.5)
		}
	}
}

func TestUShapedCurveSamples(t *testing.T) {
	// Regression: u_shaped startet und endet am Maximum, Minimum in der Mitte
	values := CurveUShaped.Values(0.9, 1.3, 5)
	want := []float64{
		1.3,
		0.9 + 0.4*(1+math.Cos(math.Pi*0.25))/2,
		1.1,
		0.9 + 0.4*(1+math.Cos(math.Pi*0.75))/2,
		0.9,
	}
	if diff := cmp.Diff(want, values, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("u_shaped samples mismatch (-want +got):\n%s", diff)
	}
}

func TestBellCurveSamples(t *testing.T) {
	// Regression: bell_curve startet und endet am Minimum, Maximum in der Mitte
	values := CurveBellCurve.Values(0.9, 1.3, 5)
	want := []float64{
		0.9,
		0.9 + 0.4*math.Sin(math.Pi*0.25),
		1.3,
		0.9 + 0.4*math.Sin(math.Pi*0.75),
		0.9 + 0.4*math.Sin(math.Pi),
	}
	if diff := cmp.Diff(want, values, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("bell_curve samples mismatch (-want +got):\n%s", diff)
	}
}

func TestUShapedBellNotComplementary(t *testing.T) {
	// u[i] + bell[i] ist NICHT konstant: cos- und sin-Gewichte addieren sich
	// nicht zu 1. Der Test pinnt das beobachtete Verhalten fest, damit eine
	// spaetere "Vereinfachung" es nicht stillschweigend aendert.
	u := CurveUShaped.Values(0.9, 1.3, 5)
	bell := CurveBellCurve.Values(0.9, 1.3, 5)

	first := u[0] + bell[0]
	constant := true
	for i := range u {
		if math.Abs(u[i]+bell[i]-first) > 1e-9 {
			constant = false
			break
		}
	}
	if constant {
		t.Error("u_shaped + bell_curve unerwartet konstant ueber alle Stuetzstellen")
	}
}

func TestExponentialCurveShape(t *testing.T) {
	values := CurveExponential.Values(0.8, 1.5, 5)
	for i, v := range values {
		tt := float64(i) / 4
		want := 0.8 * math.Pow(1.5/0.8, tt*tt)
		if math.Abs(v-want) > 1e-9 {
			t.Errorf("values[%d] = %v, erwartet %v", i, v, want)
		}
	}

	// quadratischer Exponent: erste Haelfte waechst langsamer als lineare Kurve
	linear := CurveLinear.Values(0.8, 1.5, 5)
	if values[1] >= linear[1] {
		t.Errorf("exponential[1] = %v sollte unter linear[1] = %v liegen", values[1], linear[1])
	}
}

func TestSineCurveShape(t *testing.T) {
	values := CurveSine.Values(0.8, 1.5, 5)
	for i, v := range values {
		tt := float64(i) / 4
		want := 0.8 + 0.7*math.Sin(math.Pi*tt/2)
		if math.Abs(v-want) > 1e-9 {
			t.Errorf("values[%d] = %v, erwartet %v", i, v, want)
		}
	}
}

func TestPadOrTruncate(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
		n      int
		want   []float64
	}{
		{"exact", []float64{1, 2, 3}, 3, []float64{1, 2, 3}},
		{"pad", []float64{1, 2}, 5, []float64{1, 2, 2, 2, 2}},
		{"truncate", []float64{1, 2, 3, 4, 5}, 3, []float64{1, 2, 3}},
		{"single pad", []float64{7}, 4, []float64{7, 7, 7, 7}},
		{"zero target", []float64{1, 2}, 0, []float64{}},
	}

	for _, tc := range cases {
		got := PadOrTruncate(tc.values, tc.n)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestPadOrTruncateDoesNotMutateInput(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	PadOrTruncate(values, 2)
	if diff := cmp.Diff([]float64{1, 2, 3, 4}, values); diff != "" {
		t.Errorf("input mutiert (-want +got):\n%s", diff)
	}
}

func TestParseCurve(t *testing.T) {
	for _, curve := range append(allCurves, CurveCustom) {
		parsed, err := ParseCurve(curve.String())
		if err != nil {
			t.Fatalf("ParseCurve(%q): %v", curve.String(), err)
		}
		if parsed != curve {
			t.Errorf("ParseCurve(%q) = %v, erwartet %v", curve.String(), parsed, curve)
		}
	}

	if _, err := ParseCurve("sawtooth"); err == nil {
		t.Error("ParseCurve(sawtooth) sollte fehlschlagen")
	}
}
