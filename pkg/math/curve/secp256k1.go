package curve

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Secp256k1 is an implementation of Curve for the secp256k1 group.
//
// The group has prime order, so every decoded point that is on the curve
// is automatically a member of the right subgroup.
type Secp256k1 struct{}

func (Secp256k1) NewPoint() Point {
	return new(Secp256k1Point)
}

func (Secp256k1) NewBasePoint() Point {
	out := new(Secp256k1Point)
	out.value.X.Set(&secp256k1BaseX)
	out.value.Y.Set(&secp256k1BaseY)
	out.value.Z.SetInt(1)
	return out
}

func (Secp256k1) NewScalar() Scalar {
	return new(Secp256k1Scalar)
}

func (Secp256k1) Name() string {
	return "secp256k1"
}

func (Secp256k1) ScalarBits() int {
	return 256
}

func (Secp256k1) SafeScalarBytes() int {
	return 64
}

func (Secp256k1) PointBytes() int {
	return 33
}

func (Secp256k1) Order() *saferith.Modulus {
	return secp256k1Order
}

var (
	secp256k1Order *saferith.Modulus
	secp256k1BaseX secp256k1.FieldVal
	secp256k1BaseY secp256k1.FieldVal
)

func init() {
	orderBytes, _ := hex.DecodeString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	secp256k1Order = saferith.ModulusFromBytes(orderBytes)

	gx, _ := hex.DecodeString("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	gy, _ := hex.DecodeString("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	secp256k1BaseX.SetByteSlice(gx)
	secp256k1BaseY.SetByteSlice(gy)
}

// Secp256k1Scalar is a scalar modulo the order of the secp256k1 group.
//
// Arithmetic is delegated to decred's ModNScalar, whose operations run in
// constant time.
type Secp256k1Scalar struct {
	value secp256k1.ModNScalar
}

func secp256k1CastScalar(generic Scalar) *Secp256k1Scalar {
	out, ok := generic.(*Secp256k1Scalar)
	if !ok {
		panic(fmt.Sprintf("failed to convert to secp256k1Scalar: %v", generic))
	}
	return out
}

func (*Secp256k1Scalar) Curve() Curve {
	return Secp256k1{}
}

func (s *Secp256k1Scalar) MarshalBinary() ([]byte, error) {
	data := s.value.Bytes()
	return data[:], nil
}

func (s *Secp256k1Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != 32 {
		return fmt.Errorf("invalid length for secp256k1 scalar: %d", len(data))
	}
	var exactData [32]byte
	copy(exactData[:], data)
	if s.value.SetBytes(&exactData) != 0 {
		return errors.New("invalid bytes for secp256k1 scalar")
	}
	return nil
}

func (s *Secp256k1Scalar) Add(that Scalar) Scalar {
	other := secp256k1CastScalar(that)

	s.value.Add(&other.value)
	return s
}

func (s *Secp256k1Scalar) Sub(that Scalar) Scalar {
	other := secp256k1CastScalar(that)

	negated := new(secp256k1.ModNScalar).Set(&other.value)
	negated.Negate()
	s.value.Add(negated)
	return s
}

func (s *Secp256k1Scalar) Negate() Scalar {
	s.value.Negate()
	return s
}

func (s *Secp256k1Scalar) Mul(that Scalar) Scalar {
	other := secp256k1CastScalar(that)

	s.value.Mul(&other.value)
	return s
}

func (s *Secp256k1Scalar) Invert() Scalar {
	s.value.InverseNonConst()
	return s
}

func (s *Secp256k1Scalar) Equal(that Scalar) bool {
	other := secp256k1CastScalar(that)

	return s.value.Equals(&other.value)
}

func (s *Secp256k1Scalar) IsZero() bool {
	return s.value.IsZero()
}

func (s *Secp256k1Scalar) Set(that Scalar) Scalar {
	other := secp256k1CastScalar(that)

	s.value.Set(&other.value)
	return s
}

func (s *Secp256k1Scalar) SetNat(x *saferith.Nat) Scalar {
	reduced := new(saferith.Nat).Mod(x, secp256k1Order)
	var buf [32]byte
	reduced.FillBytes(buf[:])
	s.value.SetBytes(&buf)
	return s
}

func (s *Secp256k1Scalar) Zero() Scalar {
	s.value.Zero()
	return s
}

func (s *Secp256k1Scalar) Act(that Point) Point {
	other := secp256k1CastPoint(that)

	// ScalarMultNonConst expects a normalized point; work on a copy so
	// the operand stays untouched.
	var p secp256k1.JacobianPoint
	p.Set(&other.value)
	p.ToAffine()

	out := new(Secp256k1Point)
	secp256k1.ScalarMultNonConst(&s.value, &p, &out.value)
	return out
}

func (s *Secp256k1Scalar) ActOnBase() Point {
	out := new(Secp256k1Point)
	secp256k1.ScalarBaseMultNonConst(&s.value, &out.value)
	return out
}

// Secp256k1Point is a point on the secp256k1 curve, or the identity.
type Secp256k1Point struct {
	value secp256k1.JacobianPoint
}

func secp256k1CastPoint(generic Point) *Secp256k1Point {
	out, ok := generic.(*Secp256k1Point)
	if !ok {
		panic(fmt.Sprintf("failed to convert to secp256k1Point: %v", generic))
	}
	return out
}

func (*Secp256k1Point) Curve() Curve {
	return Secp256k1{}
}

// MarshalBinary returns the canonical 33 byte compressed encoding.
//
// The identity element has no compressed encoding, and marshaling it is
// an error. The receiver is left untouched, so encoding is safe to do
// concurrently.
func (p *Secp256k1Point) MarshalBinary() ([]byte, error) {
	if p.IsIdentity() {
		return nil, errors.New("tried to marshal identity point")
	}
	var affine secp256k1.JacobianPoint
	affine.Set(&p.value)
	affine.ToAffine()

	out := make([]byte, 33)
	// Compatible with Bitcoin's compressed encoding.
	out[0] = secp256k1.PubKeyFormatCompressedEven
	if affine.Y.IsOdd() {
		out[0] = secp256k1.PubKeyFormatCompressedOdd
	}
	data := affine.X.Bytes()
	copy(out[1:], data[:])
	return out, nil
}

// UnmarshalBinary decodes a compressed point, checking that the encoding
// is canonical and the result lies on the curve.
//
// Since the identity has no compressed encoding, a successful decode is
// always a usable group element.
func (p *Secp256k1Point) UnmarshalBinary(data []byte) error {
	if len(data) != 33 {
		return fmt.Errorf("invalid length for secp256k1 point: %d", len(data))
	}
	if data[0] != secp256k1.PubKeyFormatCompressedEven && data[0] != secp256k1.PubKeyFormatCompressedOdd {
		return errors.New("invalid format byte for secp256k1 point")
	}
	var x, y secp256k1.FieldVal
	if x.SetByteSlice(data[1:]) {
		return errors.New("secp256k1 point: x coordinate out of range")
	}
	wantOddY := data[0] == secp256k1.PubKeyFormatCompressedOdd
	if !secp256k1.DecompressY(&x, wantOddY, &y) {
		return errors.New("secp256k1 point: x coordinate not on curve")
	}
	y.Normalize()
	p.value.X.Set(&x)
	p.value.Y.Set(&y)
	p.value.Z.SetInt(1)
	return nil
}

func (p *Secp256k1Point) Add(that Point) Point {
	other := secp256k1CastPoint(that)

	out := new(Secp256k1Point)
	secp256k1.AddNonConst(&p.value, &other.value, &out.value)
	return out
}

func (p *Secp256k1Point) Sub(that Point) Point {
	return p.Add(that.Negate())
}

func (p *Secp256k1Point) Negate() Point {
	out := new(Secp256k1Point)
	out.value.Set(&p.value)
	out.value.Y.Negate(1)
	out.value.Y.Normalize()
	return out
}

func (p *Secp256k1Point) Set(that Point) Point {
	other := secp256k1CastPoint(that)

	p.value.Set(&other.value)
	return p
}

// Equal checks if two points are equal, comparing normalized copies so
// that neither operand is modified.
func (p *Secp256k1Point) Equal(that Point) bool {
	other := secp256k1CastPoint(that)

	var lhs, rhs secp256k1.JacobianPoint
	lhs.Set(&p.value)
	rhs.Set(&other.value)
	lhs.ToAffine()
	rhs.ToAffine()
	return lhs.X.Equals(&rhs.X) && lhs.Y.Equals(&rhs.Y) && lhs.Z.Equals(&rhs.Z)
}

func (p *Secp256k1Point) IsIdentity() bool {
	return (p.value.X.IsZero() && p.value.Y.IsZero()) || p.value.Z.IsZero()
}
