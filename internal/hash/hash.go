package hash

import (
	"encoding"
	"fmt"
	"io"

	"github.com/blindr-net/blindsig/internal/params"
	"github.com/zeebo/blake3"
)

// DigestLengthBytes is the length of a full digest, wide enough to be
// reduced modulo a 256 bit group order without bias.
const DigestLengthBytes = params.HashBytes

// protocolTag separates this protocol's hashes from any other use of the
// same hash function.
const protocolTag = "blindsig"

// Hash is the hash function we use for deriving challenges and mapping
// messages to scalars.
//
// Internally, this is a wrapper around blake3, but any hash function with
// an easily extendable output would work as well.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash whose state is bound to the protocol tag and the
// given use-specific domain, e.g. "challenge".
//
// Two hashes with different domains never produce related output, no
// matter what data is written afterwards.
func New(domain string) *Hash {
	hash := &Hash{h: blake3.New()}
	_ = writeWithDomain(hash.h, BytesWithDomain{
		TheDomain: protocolTag,
		Bytes:     []byte(domain),
	})
	return hash
}

// Digest returns a reader for the current output of the function.
//
// This finalizes the current state of the hash, and returns what's
// essentially a stream of random bytes.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns a slice of length DigestLengthBytes resulting from the
// current hash state. If a different length is required, use
// io.ReadFull(hash.Digest(), out) instead.
func (hash *Hash) Sum() []byte {
	out := make([]byte, DigestLengthBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// WriteAny takes many different data types and writes them to the hash state.
//
// Currently supported types:
//
//   - []byte
//   - hash.WriterToWithDomain
//   - encoding.BinaryMarshaler
//
// This function applies its own domain separation for the first and last
// types. The middle type already suggests which domain to use, and this
// function respects it.
func (hash *Hash) WriteAny(data ...interface{}) error {
	var err error
	for _, d := range data {
		switch t := d.(type) {
		case []byte:
			err = writeWithDomain(hash.h, BytesWithDomain{
				TheDomain: "[]byte",
				Bytes:     t,
			})
			if err != nil {
				return fmt.Errorf("hash.Hash: write []byte: %w", err)
			}
		case WriterToWithDomain:
			if err = writeWithDomain(hash.h, t); err != nil {
				return fmt.Errorf("hash.Hash: write %s: %w", t.Domain(), err)
			}
		case encoding.BinaryMarshaler:
			bytes, err := t.MarshalBinary()
			if err != nil {
				return fmt.Errorf("hash.Hash: marshal %T: %w", t, err)
			}
			err = writeWithDomain(hash.h, BytesWithDomain{
				TheDomain: fmt.Sprintf("%T", t),
				Bytes:     bytes,
			})
			if err != nil {
				return fmt.Errorf("hash.Hash: write %T: %w", t, err)
			}
		default:
			panic("hash.Hash: unsupported type")
		}
	}
	return nil
}

// Clone returns a copy of the Hash in its current state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}
