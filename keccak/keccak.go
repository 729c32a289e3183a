/*
Package keccak implements the original Keccak-256 hash used by Ethereum.

This is not SHA3-256: Keccak-256 pads the final block with 0x01 ... 0x80,
where FIPS-202 SHA-3 uses 0x06 ... 0x80, so the two produce different digests
for every input.

	sum := keccak.Sum256([]byte("transfer(address,uint256)"))
	fmt.Printf("%x\n", sum[:4])
	// Output: a9059cbb
*/
package keccak

import (
	"encoding/binary"
	"hash"
)

const (
	// Size is the size of a Keccak-256 digest in bytes.
	Size = 32

	// Rate is the number of bytes absorbed per permutation: 1600 bits of
	// state minus 512 bits of capacity.
	Rate = 136

	lanes = 25
)

// Sum256 returns the Keccak-256 digest of data. It does not allocate.
func Sum256(data []byte) (out [Size]byte) {
	var a [lanes]uint64
	for len(data) >= Rate {
		absorb(&a, data[:Rate])
		permute(&a)
		data = data[Rate:]
	}

	var last [Rate]byte
	copy(last[:], data)
	last[len(data)] ^= 0x01
	last[Rate-1] ^= 0x80
	absorb(&a, last[:])
	permute(&a)

	squeeze(&a, &out)
	return out
}

func absorb(a *[lanes]uint64, block []byte) {
	for i := 0; i < Rate/8; i++ {
		a[i] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
}

func squeeze(a *[lanes]uint64, out *[Size]byte) {
	for i := 0; i < Size/8; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], a[i])
	}
}

// Hasher is a streaming Keccak-256 hash.Hash. The zero value is ready to use.
type Hasher struct {
	a   [lanes]uint64
	buf [Rate]byte
	n   int
}

var _ hash.Hash = (*Hasher)(nil)

func New() *Hasher { return &Hasher{} }

func (h *Hasher) Write(p []byte) (int, error) {
	written := len(p)
	if h.n > 0 {
		c := copy(h.buf[h.n:], p)
		h.n += c
		p = p[c:]
		if h.n < Rate {
			return written, nil
		}
		absorb(&h.a, h.buf[:])
		permute(&h.a)
		h.n = 0
	}
	for len(p) >= Rate {
		absorb(&h.a, p[:Rate])
		permute(&h.a)
		p = p[Rate:]
	}
	h.n = copy(h.buf[:], p)
	return written, nil
}

// Sum256 returns the digest of everything written so far. It does not change
// the underlying hash state.
func (h *Hasher) Sum256() (out [Size]byte) {
	a := h.a
	var last [Rate]byte
	copy(last[:], h.buf[:h.n])
	last[h.n] ^= 0x01
	last[Rate-1] ^= 0x80
	absorb(&a, last[:])
	permute(&a)
	squeeze(&a, &out)
	return out
}

// Sum appends the current digest to b.
func (h *Hasher) Sum(b []byte) []byte {
	sum := h.Sum256()
	return append(b, sum[:]...)
}

func (h *Hasher) Reset() { *h = Hasher{} }

func (h *Hasher) Size() int      { return Size }
func (h *Hasher) BlockSize() int { return Rate }
