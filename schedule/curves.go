// curves.go - Interpolationskurven fuer alle Scheduler
//
// Dieses Modul enthaelt:
// - Curve: geschlossener Kurventyp (linear, exponential, sine, cosine, u_shaped, bell_curve, custom)
// - Values: deterministische Kurvengenerierung ueber n Stuetzstellen
// - PadOrTruncate: Normalisierung extern gelieferter Sequenzen
package schedule

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/archai3d/grag/errtypes"
)

// Curve identifies one of the interpolation curves shared by the layer,
// timestep and tier schedulers. The zero value is CurveLinear.
type Curve int

const (
	CurveLinear Curve = iota
	CurveExponential
	CurveSine
	CurveCosine
	CurveUShaped
	CurveBellCurve
	// CurveCustom selects a caller-supplied sequence instead of a generator.
	CurveCustom
)

func (c Curve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveExponential:
		return "exponential"
	case CurveSine:
		return "sine"
	case CurveCosine:
		return "cosine"
	case CurveUShaped:
		return "u_shaped"
	case CurveBellCurve:
		return "bell_curve"
	case CurveCustom:
		return "custom"
	}
	return "unknown"
}

// ParseCurve maps a curve name from an API request or CLI flag to its Curve
// value. Unknown names fail instead of silently defaulting: guessing a curve
// shape would make results unreproducible.
func ParseCurve(name string) (Curve, error) {
	switch name {
	case "linear":
		return CurveLinear, nil
	case "exponential":
		return CurveExponential, nil
	case "sine":
		return CurveSine, nil
	case "cosine":
		return CurveCosine, nil
	case "u_shaped":
		return CurveUShaped, nil
	case "bell_curve":
		return CurveBellCurve, nil
	case "custom":
		return CurveCustom, nil
	}
	return 0, &errtypes.InvalidArgumentError{Argument: name, Reason: "unknown curve"}
}

// Values samples the curve at n evenly spaced points t_i = i/(n-1) between
// start and end. n == 1 always yields the midpoint (start+end)/2 so a
// single-sample schedule never degenerates to one of the endpoints.
//
// CurveCustom has no generator - callers supply the sequence themselves and
// normalize it with PadOrTruncate - so it yields nil, as does any value
// outside the declared curves. Guessing a shape here would contradict
// ParseCurve's refusal to default.
//
// The exponential curve assumes start > 0; schedules feed it multiplier
// ranges around 1.0.
func (c Curve) Values(start, end float64, n int) []float64 {
	switch c {
	case CurveLinear, CurveExponential, CurveSine, CurveCosine, CurveUShaped, CurveBellCurve:
	default:
		return nil
	}

	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float64{(start + end) / 2}
	}

	values := make([]float64, n)
	switch c {
	case CurveLinear:
		floats.Span(values, start, end)
	case CurveExponential:
		// y = start * (end/start)^(t^2): langsamer Beginn, schnelles Ende
		ratio := end / start
		for i := range values {
			t := float64(i) / float64(n-1)
			values[i] = start * math.Pow(ratio, t*t)
		}
	case CurveSine:
		// monotone Ease-Out S-Kurve
		for i := range values {
			t := float64(i) / float64(n-1)
			values[i] = start + (end-start)*math.Sin(math.Pi*t/2)
		}
	case CurveCosine:
		// Cosine-Annealing wie in Diffusions-Noise-Schedules
		for i := range values {
			t := float64(i) / float64(n-1)
			values[i] = start + (end-start)*(1-math.Cos(math.Pi*t))/2
		}
	case CurveUShaped:
		// hoch an den Raendern, Minimum in der Mitte
		lo, hi := math.Min(start, end), math.Max(start, end)
		for i := range values {
			t := float64(i) / float64(n-1)
			values[i] = lo + (hi-lo)*(1+math.Cos(math.Pi*t))/2
		}
	case CurveBellCurve:
		// niedrig an den Raendern, Maximum in der Mitte
		lo, hi := math.Min(start, end), math.Max(start, end)
		for i := range values {
			t := float64(i) / float64(n-1)
			values[i] = lo + (hi-lo)*math.Sin(math.Pi*t)
		}
	}

	return values
}

// PadOrTruncate normalizes an externally supplied coefficient sequence to
// exactly n values: shorter inputs repeat the last element, longer inputs are
// truncated from the tail. The input slice is never mutated.
func PadOrTruncate(values []float64, n int) []float64 {
	if n < 0 {
		n = 0
	}

	out := make([]float64, n)
	copied := copy(out, values)
	if copied < n && copied > 0 {
		last := out[copied-1]
		for i := copied; i < n; i++ {
			out[i] = last
		}
	}
	return out
}
