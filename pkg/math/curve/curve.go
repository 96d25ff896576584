package curve

import (
	"encoding"

	"github.com/cronokirby/saferith"
)

// Curve represents the starting point for working with an elliptic curve
// group of prime order.
//
// The expectation is that this interface will be implemented by a small
// struct, and passed around by value to parameterize the rest of the
// protocol.
type Curve interface {
	// NewPoint returns a new point initialized to the identity element.
	NewPoint() Point
	// NewBasePoint returns a new point initialized to the canonical generator.
	NewBasePoint() Point
	// NewScalar returns a new scalar initialized to zero.
	NewScalar() Scalar
	// Name returns the name of this curve.
	//
	// This should be unique between curves.
	Name() string
	// ScalarBits returns the number of significant bits in a scalar.
	ScalarBits() int
	// SafeScalarBytes returns the number of random bytes needed to sample
	// a scalar through modular reduction without bias.
	//
	// This is 2x the size of the group order, so that the reduced result
	// is statistically indistinguishable from uniform.
	SafeScalarBytes() int
	// Order returns the group order as a saferith modulus, allowing
	// constant-time reductions into the scalar field.
	Order() *saferith.Modulus
	// PointBytes returns the length of the canonical compressed encoding
	// of a point.
	PointBytes() int
}

// Scalar represents an element of the field of integers modulo the group
// order.
//
// Secrets held by the protocol are always of this type. Implementations
// must perform arithmetic on secret values in constant time, and must not
// include scalar values in error messages.
//
// The arithmetic methods mutate their receiver, and return it for chaining.
type Scalar interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	// Curve returns the curve this scalar is associated with.
	Curve() Curve
	// Add sets s += that, returning s.
	Add(that Scalar) Scalar
	// Sub sets s -= that, returning s.
	Sub(that Scalar) Scalar
	// Negate sets s = -s, returning s.
	Negate() Scalar
	// Mul sets s *= that, returning s.
	Mul(that Scalar) Scalar
	// Invert sets s = 1/s, returning s. Inverting zero is undefined.
	Invert() Scalar
	// Equal checks if two scalars hold the same value, in constant time.
	Equal(that Scalar) bool
	// IsZero checks if the scalar is zero, in constant time.
	IsZero() bool
	// Set sets s = that, returning s.
	Set(that Scalar) Scalar
	// SetNat reduces x modulo the group order, setting s to the result.
	SetNat(x *saferith.Nat) Scalar
	// Zero wipes the value, setting s to zero. Used to clear secrets.
	Zero() Scalar
	// Act returns s * that, leaving both operands untouched.
	Act(that Point) Point
	// ActOnBase returns s * G, with G the canonical generator.
	ActOnBase() Point
}

// Point represents an element of our elliptic curve group.
//
// The methods on Point return fresh values, leaving the receiver untouched,
// with the exception of Set and UnmarshalBinary.
type Point interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	// Curve returns the curve this point is associated with.
	Curve() Curve
	// Add returns p + that.
	Add(that Point) Point
	// Sub returns p - that.
	Sub(that Point) Point
	// Negate returns -p.
	Negate() Point
	// Set sets p = that, returning p.
	Set(that Point) Point
	// Equal checks if two points are equal.
	Equal(that Point) bool
	// IsIdentity checks if this is the identity element of the group.
	IsIdentity() bool
}

// FromHash reduces a wide hash output into a scalar of the given group.
//
// The input must be at least SafeScalarBytes long; the reduction modulo
// the group order is done in constant time through saferith, so the
// result carries no bias a verifier could measure.
func FromHash(group Curve, h []byte) Scalar {
	n := new(saferith.Nat).SetBytes(h)
	return group.NewScalar().SetNat(n)
}
