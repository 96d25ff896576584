package blind

import (
	"fmt"
	"io"

	"github.com/blindr-net/blindsig/pkg/math/curve"
)

// RequesterSession holds the requester's ephemeral state for a single
// signing session: the blinding factor α and the blinded commitment R'.
//
// Like SignerSession, a session is consumed by its first call to Unblind.
// Blinding factors are never reused across sessions; reuse would let the
// signer link the published signature back to its transcript.
type RequesterSession struct {
	group       curve.Curve
	alpha       curve.Scalar
	rPrimeBytes []byte
	used        bool
}

// Blind takes the signer's commitment R and the message to be signed,
// and produces the blinded challenge to send back.
//
// Fresh blinding scalars α and β mask the commitment as
// R' = R + α·G + β·X, the challenge is derived as
// e = H(R' ‖ message ‖ X), and the signer only ever sees e' = e + β.
// β has served its purpose once e' exists and is wiped here; α stays in
// the session until Unblind.
//
// A commitment or public key failing validation is reported as
// ErrInvalidEncoding, a failing rand as ErrRngFailure.
func Blind(rand io.Reader, commitment Commitment, message []byte, pk *PublicKey) (BlindedChallenge, *RequesterSession, error) {
	group := pk.group
	R := group.NewPoint()
	if err := R.UnmarshalBinary(commitment); err != nil {
		return nil, nil, fmt.Errorf("blind.Blind: commitment: %w", ErrInvalidEncoding)
	}

	alpha, err := sampleScalar(rand, group)
	if err != nil {
		return nil, nil, fmt.Errorf("blind.Blind: %w", err)
	}
	beta, err := sampleScalar(rand, group)
	if err != nil {
		alpha.Zero()
		return nil, nil, fmt.Errorf("blind.Blind: %w", err)
	}

	// R' = R + α·G + β·X
	rPrime := R.Add(alpha.ActOnBase()).Add(beta.Act(pk.point))
	rPrimeBytes, err := rPrime.MarshalBinary()
	if err != nil {
		// R' is the identity, which only happens when the signer chose R
		// as a function of our public key to force it. Refuse to continue.
		alpha.Zero()
		beta.Zero()
		return nil, nil, fmt.Errorf("blind.Blind: degenerate commitment: %w", ErrInvalidEncoding)
	}

	// e' = e + β
	ePrime := challenge(group, rPrimeBytes, message, pk).Add(beta)
	beta.Zero()

	data, err := ePrime.MarshalBinary()
	if err != nil {
		alpha.Zero()
		return nil, nil, fmt.Errorf("blind.Blind: %w", err)
	}
	sess := &RequesterSession{
		group:       group,
		alpha:       alpha,
		rPrimeBytes: rPrimeBytes,
	}
	return BlindedChallenge(data), sess, nil
}

// Unblind removes the blinding factor from the signer's response,
// yielding the final signature (R', s') with s' = s + α.
//
// The session is consumed: α is wiped before returning, on every path,
// and a second call fails with ErrProtocolMisuse. A malformed response
// also consumes the session; the whole run must be restarted from a
// fresh commitment, never resumed.
func (sess *RequesterSession) Unblind(sig BlindSignature) (Signature, error) {
	if sess.used || sess.alpha == nil {
		return nil, fmt.Errorf("blind.Unblind: session already consumed: %w", ErrProtocolMisuse)
	}
	defer sess.consume()

	if len(sig) != scalarSize(sess.group) {
		return nil, fmt.Errorf("blind.Unblind: signature length %d: %w", len(sig), ErrInvalidEncoding)
	}
	sPrime := sess.group.NewScalar()
	if err := sPrime.UnmarshalBinary(sig); err != nil {
		return nil, fmt.Errorf("blind.Unblind: %w", ErrInvalidEncoding)
	}

	// s' = s + α
	sPrime.Add(sess.alpha)
	sPrimeBytes, err := sPrime.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("blind.Unblind: %w", err)
	}

	out := make([]byte, 0, len(sess.rPrimeBytes)+len(sPrimeBytes))
	out = append(out, sess.rPrimeBytes...)
	out = append(out, sPrimeBytes...)
	return Signature(out), nil
}

func (sess *RequesterSession) consume() {
	sess.alpha.Zero()
	sess.used = true
}
