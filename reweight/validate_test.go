// validate_test.go - Tests fuer die Boundary-Validierung
package reweight

import (
	"errors"
	"strings"
	"testing"

	"github.com/archai3d/grag/errtypes"
)

func TestValidateStablePair(t *testing.T) {
	advisories, err := Validate(1.0, 1.05)
	if err != nil {
		t.Fatal(err)
	}
	if len(advisories) != 0 {
		t.Errorf("stabiles Paar sollte keine Advisories ergeben: %v", advisories)
	}
}

func TestValidateHardRange(t *testing.T) {
	cases := []struct {
		name          string
		lambda, delta float64
		argument      string
	}{
		{"lambda below", 0.05, 1.0, "lambda"},
		{"lambda above", 2.5, 1.0, "lambda"},
		{"delta below", 1.0, 0.0, "delta"},
		{"delta above", 1.0, 3.0, "delta"},
	}

	for _, tc := range cases {
		_, err := Validate(tc.lambda, tc.delta)
		var invalid *errtypes.InvalidArgumentError
		if !errors.As(err, &invalid) {
			t.Errorf("%s: erwartet InvalidArgumentError, bekommen %v", tc.name, err)
			continue
		}
		if invalid.Argument != tc.argument {
			t.Errorf("%s: Argument = %q, erwartet %q", tc.name, invalid.Argument, tc.argument)
		}
	}
}

func TestValidateHardBoundariesInclusive(t *testing.T) {
	for _, pair := range [][2]float64{{0.1, 0.1}, {2.0, 2.0}, {0.1, 2.0}} {
		if _, err := Validate(pair[0], pair[1]); err != nil {
			t.Errorf("Validate(%v, %v): %v, Grenzen sind inklusiv", pair[0], pair[1], err)
		}
	}
}

func TestValidateAdvisories(t *testing.T) {
	// legal, aber ausserhalb des stabilen Bands: nicht fatal
	advisories, err := Validate(1.3, 0.9)
	if err != nil {
		t.Fatal(err)
	}
	if len(advisories) != 2 {
		t.Fatalf("erwartet 2 Advisories, bekommen %d: %v", len(advisories), advisories)
	}
	if !strings.Contains(advisories[0], "lambda=1.300") {
		t.Errorf("advisories[0] = %q", advisories[0])
	}
	if !strings.Contains(advisories[1], "delta=0.900") {
		t.Errorf("advisories[1] = %q", advisories[1])
	}
}
