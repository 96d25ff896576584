// Package blind implements blind Schnorr signatures over a prime-order
// curve group.
//
// A requester obtains a signature on a message without the signer seeing
// the message, and the signer cannot later link a published signature to
// the session that issued it. One run of the protocol:
//
//	signer:    R, signerSess  = Commit(rand, group)
//	requester: e', reqSess    = Blind(rand, R, message, publicKey)
//	signer:    s              = signerSess.Sign(e', secretKey)
//	requester: sig            = reqSess.Unblind(s)
//	anyone:    ok, _          = Verify(publicKey, message, sig)
//
// Each session covers exactly one run. Sessions are consumed by their
// final operation and cannot be reused; a failed run is abandoned and a
// new one started from Commit.
package blind
