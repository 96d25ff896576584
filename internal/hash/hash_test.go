package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashDeterministic(t *testing.T) {
	h1 := New("challenge")
	h2 := New("challenge")
	require.NoError(t, h1.WriteAny([]byte("hello")))
	require.NoError(t, h2.WriteAny([]byte("hello")))
	assert.Equal(t, h1.Sum(), h2.Sum(), "same domain and data should give the same digest")
}

func TestHashDomainSeparation(t *testing.T) {
	h1 := New("challenge")
	h2 := New("commitment")
	require.NoError(t, h1.WriteAny([]byte("hello")))
	require.NoError(t, h2.WriteAny([]byte("hello")))
	assert.NotEqual(t, h1.Sum(), h2.Sum(), "different domains should give different digests")
}

func TestHashFraming(t *testing.T) {
	// Without framing, ("ab", "c") and ("a", "bc") would collide.
	h1 := New("test")
	h2 := New("test")
	require.NoError(t, h1.WriteAny([]byte("ab"), []byte("c")))
	require.NoError(t, h2.WriteAny([]byte("a"), []byte("bc")))
	assert.NotEqual(t, h1.Sum(), h2.Sum())
}

func TestHashWriterToWithDomain(t *testing.T) {
	h1 := New("test")
	h2 := New("test")
	require.NoError(t, h1.WriteAny(BytesWithDomain{TheDomain: "A", Bytes: []byte("x")}))
	require.NoError(t, h2.WriteAny(BytesWithDomain{TheDomain: "B", Bytes: []byte("x")}))
	assert.NotEqual(t, h1.Sum(), h2.Sum(), "the wrapper's domain should separate identical bytes")
}

// binaryValue is a stand-in for curve types, which write themselves into
// the transcript through their canonical binary encoding.
type binaryValue []byte

func (v binaryValue) MarshalBinary() ([]byte, error) {
	return v, nil
}

func TestHashBinaryMarshaler(t *testing.T) {
	h1 := New("test")
	h2 := New("test")
	require.NoError(t, h1.WriteAny(binaryValue("payload")))
	require.NoError(t, h2.WriteAny(binaryValue("payload")))
	assert.Equal(t, h1.Sum(), h2.Sum())

	h3 := New("test")
	require.NoError(t, h3.WriteAny([]byte("payload")))
	assert.NotEqual(t, h1.Sum(), h3.Sum(), "the concrete type should separate identical bytes")
}

func TestHashSumLength(t *testing.T) {
	assert.Len(t, New("test").Sum(), DigestLengthBytes)
}

func TestHashClone(t *testing.T) {
	h := New("test")
	require.NoError(t, h.WriteAny([]byte("shared prefix")))

	clone := h.Clone()
	require.NoError(t, clone.WriteAny([]byte("diverges")))

	assert.NotEqual(t, h.Sum(), clone.Sum())

	clone2 := h.Clone()
	assert.Equal(t, h.Sum(), clone2.Sum(), "an untouched clone should agree with the original")
}
