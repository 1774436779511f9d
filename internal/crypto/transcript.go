package crypto

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/MKhiriev/go-custody/models"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/sha3"
)

// transcript derives Fiat-Shamir challenges. Every appended item is length
// prefixed so that distinct sequences never hash to the same input.
type transcript struct {
	h hash.Hash
}

func newTranscript(label string) *transcript {
	t := &transcript{h: sha3.New256()}
	t.appendBytes([]byte(label))
	return t
}

func (t *transcript) appendBytes(b []byte) {
	var l [8]byte
	binary.BigEndian.PutUint64(l[:], uint64(len(b)))
	t.h.Write(l[:])
	t.h.Write(b)
}

func (t *transcript) appendUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	t.appendBytes(b[:])
}

func (t *transcript) appendCommitment(c models.Commitment) {
	t.appendBytes(c[:])
}

func (t *transcript) appendPoint(p *bn254.G1Jac) {
	c := encodePoint(p)
	t.appendBytes(c[:])
}

func (t *transcript) challenge() fr.Element {
	var e fr.Element
	e.SetBytes(t.h.Sum(nil))
	return e
}

func hexEncode(b []byte) string {
	return hex.EncodeToString(b)
}

func hexDecode(s string, size int) ([]byte, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedProof, err)
	}
	if len(raw) != size {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedProof, size, len(raw))
	}
	return raw, nil
}
