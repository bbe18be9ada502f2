// errtypes.go - Typisierte Fehler fuer Scheduler und Transform
//
// Dieses Modul enthaelt:
// - InvalidArgumentError: unbekannte Strategie/Schedule oder fehlende Custom-Sequenz
// - ShapeMismatchError: Tensor-Form passt nicht zum Vertrag
//
// Beide Fehler sind synchron und ohne Seiteneffekte; ein Aufrufer kann sie
// mit errors.As abfangen und auf den unveraenderten Pfad zurueckfallen.
package errtypes

import "fmt"

// InvalidArgumentError reports a caller-supplied value the core refuses to
// guess around: an unknown strategy or schedule name, or a custom variant
// requested without its custom sequence.
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Argument, e.Reason)
}

// ShapeMismatchError reports a key tensor whose shape violates the transform
// contract, e.g. a channel count that is not divisible by the head count.
type ShapeMismatchError struct {
	Field string
	Got   int
	Want  string
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: %s is %d, want %s", e.Field, e.Got, e.Want)
}
