package blind

import (
	"fmt"

	"github.com/blindr-net/blindsig/internal/hash"
	"github.com/blindr-net/blindsig/pkg/math/curve"
	"github.com/blindr-net/blindsig/pkg/math/sample"
)

// challenge derives the scalar e = H("challenge", R' ‖ message ‖ X).
//
// Both the requester and every verifier recompute this from the same
// inputs, so the derivation must stay deterministic: the digest is wide
// (2x the order) and reduced in constant time, never truncated.
func challenge(group curve.Curve, rPrimeBytes, message []byte, pk *PublicKey) curve.Scalar {
	h := hash.New("challenge")
	_ = h.WriteAny(hash.BytesWithDomain{TheDomain: "Commitment", Bytes: rPrimeBytes}, message, pk)
	return sample.Scalar(h.Digest(), group)
}

// Verify checks a signature produced by Unblind against a message and
// the signer's public key: s'·G == R' + e·X.
//
// A signature that decodes but does not pass the check is a rejection,
// reported as a plain false. ErrInvalidEncoding is returned only when
// the signature bytes cannot be decoded at all; the result is false in
// that case too.
func Verify(pk *PublicKey, message []byte, sig Signature) (bool, error) {
	group := pk.group
	pointLen := group.PointBytes()
	if len(sig) != pointLen+scalarSize(group) {
		return false, fmt.Errorf("blind.Verify: signature length %d: %w", len(sig), ErrInvalidEncoding)
	}

	rPrime := group.NewPoint()
	if err := rPrime.UnmarshalBinary(sig[:pointLen]); err != nil {
		return false, fmt.Errorf("blind.Verify: commitment: %w", ErrInvalidEncoding)
	}
	sPrime := group.NewScalar()
	if err := sPrime.UnmarshalBinary(sig[pointLen:]); err != nil {
		return false, fmt.Errorf("blind.Verify: scalar: %w", ErrInvalidEncoding)
	}

	e := challenge(group, sig[:pointLen], message, pk)

	lhs := sPrime.ActOnBase()
	rhs := e.Act(pk.point).Add(rPrime)
	return lhs.Equal(rhs), nil
}
