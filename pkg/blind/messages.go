package blind

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// The values exchanged during a protocol run, as fixed-width byte
// strings. Scalars are the group-order byte length, points the
// compressed-point byte length; framing and transport are the caller's
// concern.
type (
	// Commitment is the signer's nonce commitment R = k•G.
	Commitment []byte
	// BlindedChallenge is the challenge e' = e + β the signer operates
	// on. It reveals nothing about the message being signed.
	BlindedChallenge []byte
	// BlindSignature is the signer's response s = k + e'·x, still masked
	// by the requester's blinding factor.
	BlindSignature []byte
	// Signature is the final unblinded signature R' ‖ s', verifiable by
	// anyone holding the message and the signer's public key.
	Signature []byte
)

// Phase identifies which protocol value a Message carries.
type Phase string

const (
	PhaseCommitment Phase = "commitment"
	PhaseChallenge  Phase = "challenge"
	PhaseSignature  Phase = "signature"
)

// Message is the envelope for one protocol value in transit between a
// requester and a signer.
//
// SID identifies the session both sides are running, so that an
// out-of-order or replayed envelope is never correlated to the wrong
// session.
type Message struct {
	SID   []byte `cbor:"sid"`
	Phase Phase  `cbor:"phase"`
	Data  []byte `cbor:"data"`
}

// EncodeMessage serializes the envelope with CBOR.
func EncodeMessage(m *Message) ([]byte, error) {
	data, err := cbor.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("blind.EncodeMessage: %w", err)
	}
	return data, nil
}

// DecodeMessage parses a CBOR envelope, checking the phase tag.
func DecodeMessage(data []byte) (*Message, error) {
	var m Message
	if err := cbor.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("blind.DecodeMessage: %w", ErrInvalidEncoding)
	}
	switch m.Phase {
	case PhaseCommitment, PhaseChallenge, PhaseSignature:
	default:
		return nil, fmt.Errorf("blind.DecodeMessage: unknown phase %q: %w", m.Phase, ErrInvalidEncoding)
	}
	return &m, nil
}
