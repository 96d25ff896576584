package blind

import (
	"fmt"
	"io"

	"github.com/blindr-net/blindsig/pkg/math/curve"
)

// SignerSession holds the signer's ephemeral state for a single signing
// session: the nonce k behind the commitment R = k•G.
//
// A session is consumed by its first call to Sign, whatever the outcome.
// Reusing the same nonce for two different challenges would hand the
// requester the secret key, so single use is enforced by construction
// rather than by convention: the nonce is wiped before Sign returns, on
// every path, and any further call fails with ErrProtocolMisuse.
//
// Sessions are not safe for concurrent use; each protocol run owns its
// own session.
type SignerSession struct {
	group curve.Curve
	k     curve.Scalar
	used  bool
}

// Commit starts a signing session, sending the commitment to the
// requester and keeping the nonce in the returned session.
//
// A failing rand is reported as ErrRngFailure, and no session is created.
func Commit(rand io.Reader, group curve.Curve) (Commitment, *SignerSession, error) {
	k, err := sampleScalar(rand, group)
	if err != nil {
		return nil, nil, fmt.Errorf("blind.Commit: %w", err)
	}
	data, err := k.ActOnBase().MarshalBinary()
	if err != nil {
		// Unreachable for a nonzero nonce, but never leave k behind.
		k.Zero()
		return nil, nil, fmt.Errorf("blind.Commit: marshal commitment: %w", err)
	}
	return Commitment(data), &SignerSession{group: group, k: k}, nil
}

// Sign computes the blind signature s = k + e'·x over the blinded
// challenge e'.
//
// The session is consumed: a second call fails with ErrProtocolMisuse,
// and the nonce is wiped even when the challenge fails to decode. A
// session that failed must be abandoned, not retried.
func (sess *SignerSession) Sign(challenge BlindedChallenge, sk *SecretKey) (BlindSignature, error) {
	if sess.used || sess.k == nil {
		return nil, fmt.Errorf("blind.Sign: session already consumed: %w", ErrProtocolMisuse)
	}
	defer sess.consume()

	if sk == nil || sk.scalar == nil || sk.scalar.IsZero() {
		return nil, fmt.Errorf("blind.Sign: unusable secret key: %w", ErrProtocolMisuse)
	}
	if sk.public.group.Name() != sess.group.Name() {
		return nil, fmt.Errorf("blind.Sign: key group %q does not match session group %q: %w",
			sk.public.group.Name(), sess.group.Name(), ErrProtocolMisuse)
	}
	if len(challenge) != scalarSize(sess.group) {
		return nil, fmt.Errorf("blind.Sign: challenge length %d: %w", len(challenge), ErrInvalidEncoding)
	}
	ePrime := sess.group.NewScalar()
	if err := ePrime.UnmarshalBinary(challenge); err != nil {
		return nil, fmt.Errorf("blind.Sign: challenge: %w", ErrInvalidEncoding)
	}

	// s = k + e'·x
	s := sess.group.NewScalar().Set(sk.scalar).Mul(ePrime).Add(sess.k)
	data, err := s.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("blind.Sign: %w", err)
	}
	return BlindSignature(data), nil
}

func (sess *SignerSession) consume() {
	sess.k.Zero()
	sess.used = true
}
