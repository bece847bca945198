// Package readers provides reproducible pseudo-random input for tests.
package readers

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"io"

	"hop.computer/seqs/pkg"
	"hop.computer/seqs/pkg/must"
)

var iv = [aes.BlockSize]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

type ctrReader struct {
	stream cipher.Stream
}

// Read implements io.Reader. It returns a deterministic byte sequence based on
// the seed and the total number of bytes read. The number of calls does not
// matter. It cannot fail.
func (c *ctrReader) Read(p []byte) (n int, err error) {
	clear(p)
	c.stream.XORKeyStream(p, p)
	return len(p), nil
}

var _ io.Reader = &ctrReader{}

// DeterministicRandomReader returns a "random" reader based on the seed
// provided, using the AES-CTR key stream. The key is derived from the seed and
// the IV is static.
func DeterministicRandomReader(seed uint64) io.Reader {
	key := [16]byte{}
	binary.LittleEndian.PutUint64(key[:], seed)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		pkg.Panicf("unable to create new aes: %s", err)
	}
	return &ctrReader{
		stream: cipher.NewCTR(block, iv[:]),
	}
}

// Source draws small integers from a DeterministicRandomReader. Two sources
// with the same seed return the same sequence.
type Source struct {
	r   io.Reader
	buf [8]byte
}

// NewSource returns a Source seeded with seed.
func NewSource(seed uint64) *Source {
	return &Source{r: DeterministicRandomReader(seed)}
}

// Intn returns a value in [0, n). It panics if n <= 0. The result carries a
// slight modulo bias, which is fine for test input.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		pkg.Panicf("Intn: n must be positive, got %d", n)
	}
	_ = must.Do(s.r.Read(s.buf[:]))
	return int(binary.LittleEndian.Uint64(s.buf[:]) % uint64(n))
}

// Flip returns true with probability 1/2^bits. bits must be in the range 0-7.
func (s *Source) Flip(bits int) bool {
	if bits > 7 || bits < 0 {
		pkg.Panicf("bits must be in the range 0-7, got %d", bits)
	}
	_ = must.Do(s.r.Read(s.buf[:1]))
	return s.buf[0]&byte((1<<bits)-1) == 0
}
