// validate.go - Boundary-Validierung der λ/δ Parameter
//
// Dieses Modul enthaelt:
// - Validate: harter Bereich [0.1, 2.0] plus Advisory-Band [0.95, 1.15]
//
// Die Validierung laeuft an der Grenze, bevor die Transformation aufgerufen
// wird - nie innerhalb von Apply.
package reweight

import (
	"fmt"
	"log/slog"

	"github.com/archai3d/grag/errtypes"
)

// Parameter ranges. The hard limits are the proven experimentation range; the
// stable band is the published recommendation for training-free editing.
const (
	HardMin   = 0.1
	HardMax   = 2.0
	StableMin = 0.95
	StableMax = 1.15
)

// Validate checks a (λ, δ) pair against the hard range and the stable band.
// Values outside [0.1, 2.0] fail with an InvalidArgumentError. Values that
// are legal but outside [0.95, 1.15] produce non-fatal advisories - they are
// returned for display and logged, and the pair remains usable.
func Validate(lambda, delta float64) (advisories []string, err error) {
	if lambda < HardMin || lambda > HardMax {
		return nil, &errtypes.InvalidArgumentError{
			Argument: "lambda",
			Reason:   fmt.Sprintf("%.3f outside range [%.1f, %.1f]", lambda, HardMin, HardMax),
		}
	}
	if delta < HardMin || delta > HardMax {
		return nil, &errtypes.InvalidArgumentError{
			Argument: "delta",
			Reason:   fmt.Sprintf("%.3f outside range [%.1f, %.1f]", delta, HardMin, HardMax),
		}
	}

	if lambda < StableMin || lambda > StableMax {
		advisories = append(advisories,
			fmt.Sprintf("lambda=%.3f outside stable range [%.2f, %.2f], expect strong visible effects", lambda, StableMin, StableMax))
	}
	if delta < StableMin || delta > StableMax {
		advisories = append(advisories,
			fmt.Sprintf("delta=%.3f outside stable range [%.2f, %.2f], expect strong visible effects", delta, StableMin, StableMax))
	}

	for _, advisory := range advisories {
		slog.Info("parameter advisory", "detail", advisory)
	}

	return advisories, nil
}
