package sample

import (
	"fmt"
	"io"

	"github.com/blindr-net/blindsig/pkg/math/curve"
	"github.com/cronokirby/saferith"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// Scalar returns a new scalar of the given group, sampled uniformly from
// rand.
//
// The sample is taken twice as wide as the group order and then reduced,
// so the result carries no measurable bias. The reduction itself runs in
// constant time.
//
// This is intended for infallible randomness sources, like the output of
// a hash; it panics if rand keeps failing. Use it with crypto/rand only
// where a panic on a broken system source is acceptable.
func Scalar(rand io.Reader, group curve.Curve) curve.Scalar {
	buf := make([]byte, group.SafeScalarBytes())
	mustReadBits(rand, buf)
	n := new(saferith.Nat).SetBytes(buf)
	out := group.NewScalar().SetNat(n)
	wipe(buf)
	return out
}

func wipe(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
