package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// MatrixFingerprint hashes a numeric matrix together with a scope tag
// (linkage rule plus axis). Two calls with the same values, shape, tag and
// NaN placement produce the same key; NaN has a single bit pattern here
// because every missing cell is written as the canonical quiet NaN.
func MatrixFingerprint(matrix [][]float64, tag string) Hash {
	h := sha256.New()
	h.Write([]byte(tag))

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(matrix)))
	h.Write(buf[:])

	for _, row := range matrix {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(row)))
		h.Write(buf[:])
		for _, v := range row {
			bits := math.Float64bits(v)
			if math.IsNaN(v) {
				bits = math.Float64bits(math.NaN())
			}
			binary.LittleEndian.PutUint64(buf[:], bits)
			h.Write(buf[:])
		}
	}

	return Hash(hex.EncodeToString(h.Sum(nil)))
}
