package blind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRoundTrip(t *testing.T) {
	m := &Message{
		SID:   []byte{1, 2, 3, 4},
		Phase: PhaseChallenge,
		Data:  []byte{0xAA, 0xBB},
	}
	data, err := EncodeMessage(m)
	require.NoError(t, err)

	m2, err := DecodeMessage(data)
	require.NoError(t, err)
	assert.Equal(t, m, m2)
}

func TestDecodeMessageRejectsUnknownPhase(t *testing.T) {
	data, err := EncodeMessage(&Message{Phase: Phase("handshake")})
	require.NoError(t, err)

	_, err = DecodeMessage(data)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestDecodeMessageRejectsGarbage(t *testing.T) {
	_, err := DecodeMessage([]byte{0xFF, 0x00, 0x01})
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}
