// apply.go - Gruppen-relative Reweighting-Transformation der Attention-Keys
//
// Dieses Modul enthaelt:
// - Apply: die Kern-Transformation ueber einen [B, S, C] Key-Tensor
// - reweightSegment: Kernel fuer ein Modalitaets-Segment
//
// Mathematische Form (pro Segment, pro Token i):
//
//	k_bias = mean(k_1 .. k_N) + eps
//	k̂_i   = λ * k_bias + δ * (k_i - k_bias)
//
// λ > 1 verstaerkt den gemeinsamen Anteil, δ > 1 verstaerkt die individuelle
// Abweichung der Tokens.
package reweight

import (
	"fmt"

	"github.com/archai3d/grag/errtypes"
)

// Apply reweights a joint attention-key tensor. The sequence axis is split at
// textLength into a text segment and an image segment; each segment is
// reweighted independently around its own group mean and the results are
// concatenated back in original order.
//
// Steps:
//  1. Resolve effective λ/δ from the config, indexed by LayerIndex.
//  2. If Timestep is set and StrengthMultiplier != 1.0, rescale both around
//     neutral: v = 1.0 + (v - 1.0) * multiplier.
//  3. Check that channels divide evenly by Heads (the head split is a view;
//     the group mean is taken per channel, which treats the flat and the
//     per-head layout identically).
//  4. Per batch and segment: group mean over the token axis plus Epsilon,
//     then λ·mean + δ·(key − mean) broadcast over tokens.
//
// A disabled config returns the input unchanged (the output aliases the
// input). Otherwise the output is freshly allocated with identical shape and
// dtype; the input is never mutated. An empty segment (textLength 0 or S) is
// passed through as a zero-length loop - callers are expected not to invoke
// the transform with an empty modality.
func Apply(keys *Tensor, textLength int, cfg Config) (*Tensor, error) {
	if !cfg.Enabled {
		return keys, nil
	}

	batch, seq, channels := keys.Shape()
	if textLength < 0 || textLength > seq {
		return nil, &errtypes.ShapeMismatchError{
			Field: "text_length", Got: textLength,
			Want: fmt.Sprintf("within [0, %d]", seq),
		}
	}
	if cfg.Heads < 1 {
		return nil, &errtypes.ShapeMismatchError{Field: "heads", Got: cfg.Heads, Want: "at least 1"}
	}
	if channels%cfg.Heads != 0 {
		return nil, &errtypes.ShapeMismatchError{
			Field: "channels", Got: channels,
			Want: fmt.Sprintf("divisible by %d heads", cfg.Heads),
		}
	}

	lambda := cfg.Lambda.Resolve(cfg.LayerIndex)
	delta := cfg.Delta.Resolve(cfg.LayerIndex)

	if cfg.Timestep != nil && cfg.StrengthMultiplier != 1.0 {
		lambda = 1.0 + (lambda-1.0)*cfg.StrengthMultiplier
		delta = 1.0 + (delta-1.0)*cfg.StrengthMultiplier
	}

	in := keys.values()
	out := make([]float32, len(in))
	mean := make([]float64, channels) // reused across batches and segments

	for b := 0; b < batch; b++ {
		base := b * seq * channels
		reweightSegment(in, out, base, 0, textLength, channels, mean, lambda, delta, cfg.Epsilon)
		reweightSegment(in, out, base, textLength, seq, channels, mean, lambda, delta, cfg.Epsilon)
	}

	return keys.fromKernel(out), nil
}

// reweightSegment reweights the tokens [s0, s1) of one batch element around
// their per-channel group mean. Epsilon biases only the shared component, not
// the deviation term.
func reweightSegment(in, out []float32, base, s0, s1, channels int, mean []float64, lambda, delta, eps float64) {
	n := s1 - s0
	if n == 0 {
		return
	}

	for c := range mean {
		mean[c] = 0
	}
	for s := s0; s < s1; s++ {
		row := base + s*channels
		for c := 0; c < channels; c++ {
			mean[c] += float64(in[row+c])
		}
	}

	inv := 1.0 / float64(n)
	for c := range mean {
		mean[c] = mean[c]*inv + eps
	}

	for s := s0; s < s1; s++ {
		row := base + s*channels
		for c := 0; c < channels; c++ {
			m := mean[c]
			out[row+c] = float32(lambda*m + delta*(float64(in[row+c])-m))
		}
	}
}
