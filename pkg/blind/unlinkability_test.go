package blind

import (
	"crypto/rand"
	"testing"

	"github.com/blindr-net/blindsig/pkg/math/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signerView is everything the signer observes during one session.
type signerView struct {
	commitment Commitment
	ePrime     BlindedChallenge
	s          BlindSignature
}

// published is what eventually becomes public.
type publishedSig struct {
	message []byte
	sig     Signature
}

// TestUnlinkability checks the perfect-blindness property: for every
// signer transcript and every published signature, there is exactly one
// pair of blinding factors (α, β) that connects them, and the connecting
// equation holds for matched and crossed pairings alike. A signer trying
// to correlate transcripts to signatures gets no information from its
// records.
func TestUnlinkability(t *testing.T) {
	group := curve.Secp256k1{}
	sk, err := GenKey(rand.Reader, group)
	require.NoError(t, err)
	pk := sk.Public()

	messages := [][]byte{[]byte("first message"), []byte("second message")}
	views := make([]signerView, len(messages))
	sigs := make([]publishedSig, len(messages))

	for i, message := range messages {
		commitment, signerSess, err := Commit(rand.Reader, group)
		require.NoError(t, err)

		ePrime, reqSess, err := Blind(rand.Reader, commitment, message, pk)
		require.NoError(t, err)

		blindSig, err := signerSess.Sign(ePrime, sk)
		require.NoError(t, err)

		sig, err := reqSess.Unblind(blindSig)
		require.NoError(t, err)

		ok, err := Verify(pk, message, sig)
		require.NoError(t, err)
		require.True(t, ok)

		views[i] = signerView{commitment: commitment, ePrime: ePrime, s: blindSig}
		sigs[i] = publishedSig{message: message, sig: sig}
	}

	pointLen := group.PointBytes()
	for i, view := range views {
		R := group.NewPoint()
		require.NoError(t, R.UnmarshalBinary(view.commitment))
		sI := group.NewScalar()
		require.NoError(t, sI.UnmarshalBinary(view.s))
		ePrimeI := group.NewScalar()
		require.NoError(t, ePrimeI.UnmarshalBinary(view.ePrime))

		for j, pub := range sigs {
			rPrime := group.NewPoint()
			require.NoError(t, rPrime.UnmarshalBinary(pub.sig[:pointLen]))
			sPrime := group.NewScalar()
			require.NoError(t, sPrime.UnmarshalBinary(pub.sig[pointLen:]))

			// The only blinding factors that could connect transcript i
			// to signature j.
			e := challenge(group, pub.sig[:pointLen], pub.message, pk)
			alpha := group.NewScalar().Set(sPrime).Sub(sI)
			beta := group.NewScalar().Set(ePrimeI).Sub(e)

			// R' == R + α·G + β·X holds whether or not i and j actually
			// belong to the same session, so the transcript alone never
			// identifies the published signature.
			reconstructed := R.Add(alpha.ActOnBase()).Add(beta.Act(pk.point))
			assert.True(t, rPrime.Equal(reconstructed),
				"pairing transcript %d with signature %d should be consistent", i, j)
		}
	}
}
