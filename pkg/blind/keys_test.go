package blind

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/blindr-net/blindsig/pkg/math/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenKey(t *testing.T) {
	group := curve.Secp256k1{}
	sk, err := GenKey(rand.Reader, group)
	require.NoError(t, err)

	assert.False(t, sk.scalar.IsZero())
	assert.True(t, sk.scalar.ActOnBase().Equal(sk.Public().point), "public point should be x•G")
	assert.Len(t, sk.Public().Bytes(), group.PointBytes())
}

func TestPublicKeyRoundTrip(t *testing.T) {
	group := curve.Secp256k1{}
	sk, err := GenKey(rand.Reader, group)
	require.NoError(t, err)

	pk2, err := PublicKeyFromBytes(group, sk.Public().Bytes())
	require.NoError(t, err)
	assert.True(t, sk.Public().Equal(pk2))
}

func TestPublicKeyRejectsIdentity(t *testing.T) {
	group := curve.Secp256k1{}
	_, err := NewPublicKey(group.NewPoint())
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestPublicKeyRejectsInvalidBytes(t *testing.T) {
	group := curve.Secp256k1{}
	offCurve := make([]byte, 33)
	offCurve[0] = 0x02

	for name, data := range map[string][]byte{
		"off curve": offCurve,
		"short":     {0x02},
		"empty":     nil,
	} {
		_, err := PublicKeyFromBytes(group, data)
		assert.ErrorIs(t, err, ErrInvalidEncoding, name)
	}
}

func TestNewSecretKeyRejectsZero(t *testing.T) {
	group := curve.Secp256k1{}
	_, err := NewSecretKey(group.NewScalar())
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestSecretKeyStringRedacted(t *testing.T) {
	group := curve.Secp256k1{}
	sk, err := GenKey(rand.Reader, group)
	require.NoError(t, err)

	scalarBytes, err := sk.scalar.MarshalBinary()
	require.NoError(t, err)

	out := sk.String()
	assert.Equal(t, "SecretKey{secp256k1}", out)
	assert.NotContains(t, out, hex.EncodeToString(scalarBytes))
}

func TestSecretKeyZero(t *testing.T) {
	group := curve.Secp256k1{}
	sk, err := GenKey(rand.Reader, group)
	require.NoError(t, err)

	sk.Zero()
	assert.True(t, sk.scalar.IsZero())

	_, sess, err := Commit(rand.Reader, group)
	require.NoError(t, err)
	_, err = sess.Sign(make(BlindedChallenge, scalarSize(group)), sk)
	assert.ErrorIs(t, err, ErrProtocolMisuse, "a wiped key must not sign")
}
