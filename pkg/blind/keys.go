package blind

import (
	"fmt"
	"io"

	"github.com/blindr-net/blindsig/pkg/math/curve"
)

// PublicKey is a signer's long-term public key: a validated, non-identity
// point of the group.
//
// A PublicKey is immutable once constructed and safe for concurrent use.
type PublicKey struct {
	group curve.Curve
	point curve.Point
	// encoded caches the compressed encoding, so that hashing and
	// serializing a key never touches the point again.
	encoded []byte
}

// NewPublicKey validates p and wraps it as a public key.
//
// The identity element is never a valid public key, and is rejected with
// ErrInvalidEncoding.
func NewPublicKey(p curve.Point) (*PublicKey, error) {
	if p == nil || p.IsIdentity() {
		return nil, fmt.Errorf("blind.NewPublicKey: identity point: %w", ErrInvalidEncoding)
	}
	group := p.Curve()
	own := group.NewPoint().Set(p)
	encoded, err := own.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("blind.NewPublicKey: %w", ErrInvalidEncoding)
	}
	return &PublicKey{group: group, point: own, encoded: encoded}, nil
}

// PublicKeyFromBytes decodes a compressed public key, checking that it is
// a proper member of the group.
func PublicKeyFromBytes(group curve.Curve, data []byte) (*PublicKey, error) {
	p := group.NewPoint()
	if err := p.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("blind.PublicKeyFromBytes: %w", ErrInvalidEncoding)
	}
	return NewPublicKey(p)
}

// Bytes returns the canonical compressed encoding of the key.
func (pk *PublicKey) Bytes() []byte {
	out := make([]byte, len(pk.encoded))
	copy(out, pk.encoded)
	return out
}

// Point returns a copy of the underlying group element.
func (pk *PublicKey) Point() curve.Point {
	return pk.group.NewPoint().Set(pk.point)
}

// Group returns the curve this key belongs to.
func (pk *PublicKey) Group() curve.Curve {
	return pk.group
}

// Equal reports whether two public keys encode the same point.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if other == nil {
		return false
	}
	return pk.group.Name() == other.group.Name() && pk.point.Equal(other.point)
}

// WriteTo implements io.WriterTo, writing the compressed encoding.
func (pk *PublicKey) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(pk.encoded)
	return int64(n), err
}

// Domain separates public keys from other data within a hash transcript.
func (*PublicKey) Domain() string {
	return "PublicKey"
}

// SecretKey is a signer's long-term secret key.
//
// The scalar never appears in any encoding, error message, or log output
// produced by this package. Callers own the key exclusively and should
// call Zero once it is no longer needed.
type SecretKey struct {
	scalar curve.Scalar
	public *PublicKey
}

// GenKey samples a fresh key pair from rand.
//
// The secret scalar is rejected and resampled if zero. A failing rand is
// reported as ErrRngFailure.
func GenKey(rand io.Reader, group curve.Curve) (*SecretKey, error) {
	x, err := sampleScalar(rand, group)
	if err != nil {
		return nil, fmt.Errorf("blind.GenKey: %w", err)
	}
	sk, err := NewSecretKey(x)
	x.Zero()
	if err != nil {
		return nil, fmt.Errorf("blind.GenKey: %w", err)
	}
	return sk, nil
}

// NewSecretKey wraps an existing secret scalar, computing the matching
// public key. The zero scalar is rejected with ErrInvalidEncoding.
//
// The scalar is copied; the caller keeps ownership of its own value.
func NewSecretKey(x curve.Scalar) (*SecretKey, error) {
	if x == nil || x.IsZero() {
		return nil, fmt.Errorf("blind.NewSecretKey: zero scalar: %w", ErrInvalidEncoding)
	}
	group := x.Curve()
	own := group.NewScalar().Set(x)
	public, err := NewPublicKey(own.ActOnBase())
	if err != nil {
		own.Zero()
		return nil, fmt.Errorf("blind.NewSecretKey: %w", err)
	}
	return &SecretKey{scalar: own, public: public}, nil
}

// Public returns the public key matching this secret key.
func (sk *SecretKey) Public() *PublicKey {
	return sk.public
}

// Zero wipes the secret scalar. The key is unusable afterwards.
func (sk *SecretKey) Zero() {
	sk.scalar.Zero()
}

// String implements fmt.Stringer, redacting the scalar.
func (sk *SecretKey) String() string {
	return "SecretKey{" + sk.public.group.Name() + "}"
}
