// tensor.go - Key-Tensor Datentyp fuer die Reweighting-Transformation
//
// Dieses Modul enthaelt:
// - DType: unterstuetzte Element-Typen (F32, F16)
// - Tensor: dichter [B, S, C] Tensor in Row-Major-Ordnung
// - Konstruktoren und Zugriffs-Funktionen
//
// F16-Daten laufen fuer die Arithmetik durch einen F32-Scratch-Puffer und
// werden am Ende zurueckgerundet; Shape und DType bleiben dabei erhalten.
package reweight

import (
	"github.com/x448/float16"

	"github.com/archai3d/grag/errtypes"
)

// DType represents the element type of a key tensor.
type DType int

const (
	DTypeF32 DType = iota
	DTypeF16
)

func (t DType) String() string {
	switch t {
	case DTypeF32:
		return "float32"
	case DTypeF16:
		return "float16"
	}
	return "unknown"
}

// Tensor is a dense [batch, seq, channels] attention-key tensor. Exactly one
// of the two payload slices is populated, matching the dtype. Tensors are
// treated as immutable by the transform; Apply allocates its output.
type Tensor struct {
	dtype    DType
	batch    int
	seq      int
	channels int

	f32 []float32
	f16 []float16.Float16
}

// NewTensorF32 wraps a float32 payload as a [batch, seq, channels] tensor.
// The payload length must be exactly batch*seq*channels.
func NewTensorF32(batch, seq, channels int, data []float32) (*Tensor, error) {
	if err := checkShape(batch, seq, channels, len(data)); err != nil {
		return nil, err
	}
	return &Tensor{dtype: DTypeF32, batch: batch, seq: seq, channels: channels, f32: data}, nil
}

// NewTensorF16 wraps a float16 payload as a [batch, seq, channels] tensor.
func NewTensorF16(batch, seq, channels int, data []float16.Float16) (*Tensor, error) {
	if err := checkShape(batch, seq, channels, len(data)); err != nil {
		return nil, err
	}
	return &Tensor{dtype: DTypeF16, batch: batch, seq: seq, channels: channels, f16: data}, nil
}

func checkShape(batch, seq, channels, n int) error {
	if batch < 1 || seq < 0 || channels < 1 {
		return &errtypes.ShapeMismatchError{Field: "shape", Got: n, Want: "positive batch and channels"}
	}
	if want := batch * seq * channels; n != want {
		return &errtypes.ShapeMismatchError{Field: "data length", Got: n, Want: "batch*seq*channels elements"}
	}
	return nil
}

// DType returns the element type.
func (t *Tensor) DType() DType { return t.dtype }

// Shape returns (batch, seq, channels).
func (t *Tensor) Shape() (batch, seq, channels int) {
	return t.batch, t.seq, t.channels
}

// Float32s returns the raw float32 payload. Nil for F16 tensors.
func (t *Tensor) Float32s() []float32 { return t.f32 }

// Float16s returns the raw float16 payload. Nil for F32 tensors.
func (t *Tensor) Float16s() []float16.Float16 { return t.f16 }

// values returns the tensor's elements as float32. For F32 tensors this is
// the payload itself (no copy); F16 tensors are decoded into a fresh slice.
func (t *Tensor) values() []float32 {
	if t.dtype == DTypeF32 {
		return t.f32
	}

	f32s := make([]float32, len(t.f16))
	for i, v := range t.f16 {
		f32s[i] = v.Float32()
	}
	return f32s
}

// fromKernel wraps kernel output in a tensor of the same shape and dtype as
// the receiver, rounding back to float16 when needed.
func (t *Tensor) fromKernel(out []float32) *Tensor {
	result := &Tensor{dtype: t.dtype, batch: t.batch, seq: t.seq, channels: t.channels}
	if t.dtype == DTypeF32 {
		result.f32 = out
		return result
	}

	f16s := make([]float16.Float16, len(out))
	for i, v := range out {
		f16s[i] = float16.Fromfloat32(v)
	}
	result.f16 = f16s
	return result
}
