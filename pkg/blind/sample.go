package blind

import (
	"fmt"
	"io"

	"github.com/blindr-net/blindsig/pkg/math/curve"
	"github.com/cronokirby/saferith"
)

// maxSampleIterations bounds the rejection loop for nonzero scalars.
// Hitting the bound means the randomness source is broken.
const maxSampleIterations = 255

// sampleScalar draws a uniform nonzero scalar from rand.
//
// Unlike sample.Scalar, a failing reader is surfaced as ErrRngFailure
// instead of a panic: on the protocol surface randomness is a fallible
// call the caller decides how to recover from.
func sampleScalar(rand io.Reader, group curve.Curve) (curve.Scalar, error) {
	buf := make([]byte, group.SafeScalarBytes())
	defer wipe(buf)
	for i := 0; i < maxSampleIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRngFailure, err)
		}
		n := new(saferith.Nat).SetBytes(buf)
		s := group.NewScalar().SetNat(n)
		if !s.IsZero() {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: exhausted sampling iterations", ErrRngFailure)
}

// scalarSize returns the width of the fixed scalar encoding.
func scalarSize(group curve.Curve) int {
	return (group.ScalarBits() + 7) / 8
}

func wipe(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
