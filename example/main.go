// A complete blind-signing exchange between a requester and a signer,
// with every value crossing the trust boundary carried in a CBOR
// envelope the way a transport layer would.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/blindr-net/blindsig/pkg/blind"
	"github.com/blindr-net/blindsig/pkg/math/curve"
)

func main() {
	group := curve.Secp256k1{}

	// The signer's long-term identity.
	sk, err := blind.GenKey(rand.Reader, group)
	if err != nil {
		log.Fatal(err)
	}
	pk := sk.Public()
	fmt.Printf("signer public key: %s\n", hex.EncodeToString(pk.Bytes()))

	sid := make([]byte, 16)
	if _, err := rand.Read(sid); err != nil {
		log.Fatal(err)
	}

	// Signer: open a session and send the nonce commitment.
	commitment, signerSess, err := blind.Commit(rand.Reader, group)
	if err != nil {
		log.Fatal(err)
	}
	toRequester := send(&blind.Message{SID: sid, Phase: blind.PhaseCommitment, Data: commitment})

	// Requester: blind the message and send back the challenge. The
	// message itself never leaves this side of the exchange.
	message := []byte("the signer never sees this")
	in, err := blind.DecodeMessage(toRequester)
	if err != nil {
		log.Fatal(err)
	}
	ePrime, reqSess, err := blind.Blind(rand.Reader, blind.Commitment(in.Data), message, pk)
	if err != nil {
		log.Fatal(err)
	}
	toSigner := send(&blind.Message{SID: sid, Phase: blind.PhaseChallenge, Data: ePrime})

	// Signer: issue the blind signature over the challenge.
	in, err = blind.DecodeMessage(toSigner)
	if err != nil {
		log.Fatal(err)
	}
	blindSig, err := signerSess.Sign(blind.BlindedChallenge(in.Data), sk)
	if err != nil {
		log.Fatal(err)
	}
	toRequester = send(&blind.Message{SID: sid, Phase: blind.PhaseSignature, Data: blindSig})

	// Requester: unblind into the final signature.
	in, err = blind.DecodeMessage(toRequester)
	if err != nil {
		log.Fatal(err)
	}
	sig, err := reqSess.Unblind(blind.BlindSignature(in.Data))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("signature:         %s\n", hex.EncodeToString(sig))

	// Anyone holding the message, signature, and public key can verify.
	ok, err := blind.Verify(pk, message, sig)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("verified:          %t\n", ok)
}

// send stands in for a transport layer: serialize on one side, hand the
// bytes to the other.
func send(m *blind.Message) []byte {
	data, err := blind.EncodeMessage(m)
	if err != nil {
		log.Fatal(err)
	}
	return data
}
