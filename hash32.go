package chainnum

import (
	"encoding/binary"
)

// Hash32 is a 32-byte identifier such as a transaction or block hash.
//
// Unlike U256, the words are held most significant first: w[0] is the first
// 8 bytes of the big-endian form. Hashes are compared and sorted as byte
// strings, so this order makes Cmp a straight word-by-word comparison.
type Hash32 struct {
	w [4]uint64
}

func Hash32FromBytes(b [32]byte) Hash32 {
	return Hash32{w: [4]uint64{
		binary.BigEndian.Uint64(b[0:]),
		binary.BigEndian.Uint64(b[8:]),
		binary.BigEndian.Uint64(b[16:]),
		binary.BigEndian.Uint64(b[24:]),
	}}
}

// Hash32FromSlice reads exactly 32 bytes.
func Hash32FromSlice(b []byte) (Hash32, error) {
	if len(b) != 32 {
		return Hash32{}, ErrInvalidLength
	}
	return Hash32FromBytes([32]byte(b)), nil
}

// Hash32FromU256 reinterprets the 32-byte big-endian form of u as a hash.
func Hash32FromU256(u U256) Hash32 {
	return Hash32{w: [4]uint64{u.hi, u.hm, u.lm, u.lo}}
}

func (h Hash32) U256() U256 {
	return U256{hi: h.w[0], hm: h.w[1], lm: h.w[2], lo: h.w[3]}
}

func (h Hash32) Bytes() (b [32]byte) {
	binary.BigEndian.PutUint64(b[0:], h.w[0])
	binary.BigEndian.PutUint64(b[8:], h.w[1])
	binary.BigEndian.PutUint64(b[16:], h.w[2])
	binary.BigEndian.PutUint64(b[24:], h.w[3])
	return b
}

// PutBigEndian writes the 32 bytes of h to the start of dst.
func (h Hash32) PutBigEndian(dst []byte) error {
	if len(dst) < 32 {
		return ErrDestinationTooSmall
	}
	b := h.Bytes()
	copy(dst, b[:])
	return nil
}

func (h Hash32) IsZero() bool { return h.w == [4]uint64{} }

// Cmp compares h and o as big-endian byte strings.
func (h Hash32) Cmp(o Hash32) int {
	for i := 0; i < 4; i++ {
		if h.w[i] < o.w[i] {
			return -1
		} else if h.w[i] > o.w[i] {
			return 1
		}
	}
	return 0
}

func (h Hash32) Equal(o Hash32) bool { return h == o }
func (h Hash32) Less(o Hash32) bool  { return h.Cmp(o) < 0 }

// Hash returns a 64-bit digest of all four words, for use as a hash table
// bucket key.
func (h Hash32) Hash() uint64 {
	return mixWords(0, &h.w)
}

// ParseHash32 accepts 64 hex digits with or without a 0x prefix, or the
// canonical Base58 encoding of the 32 bytes.
func ParseHash32(s string) (Hash32, error) {
	h, err := parseHash32(unframe(s))
	if err != nil {
		return Hash32{}, parseError("ParseHash32", s, err)
	}
	return h, nil
}

func MustParseHash32(s string) Hash32 {
	h, err := ParseHash32(s)
	if err != nil {
		panic(err)
	}
	return h
}

func parseHash32(s string) (Hash32, error) {
	var b [32]byte
	if hasHexPrefix(s) {
		if err := decodeHexBytes(b[:], s[2:]); err != nil {
			return Hash32{}, err
		}
		return Hash32FromBytes(b), nil
	}
	if len(s) == 64 {
		if err := decodeHexBytes(b[:], s); err != nil {
			return Hash32{}, err
		}
		return Hash32FromBytes(b), nil
	}
	if err := decodeBase58(b[:], s); err != nil {
		return Hash32{}, err
	}
	return Hash32FromBytes(b), nil
}

// String returns "0x" followed by 64 lowercase hex digits.
func (h Hash32) String() string {
	var buf [66]byte
	return string(h.AppendHex(buf[:0]))
}

func (h Hash32) AppendHex(dst []byte) []byte {
	b := h.Bytes()
	dst = append(dst, '0', 'x')
	return appendHexBytes(dst, b[:], lowerHex)
}

func (h Hash32) Base58() string {
	b := h.Bytes()
	return EncodeBase58(b[:])
}

func (h Hash32) MarshalText() ([]byte, error) {
	return h.AppendHex(make([]byte, 0, 66)), nil
}

func (h *Hash32) UnmarshalText(bts []byte) error {
	v, err := ParseHash32(bytesString(bts))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

func (h Hash32) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 68)
	b = append(b, '"')
	b = h.AppendHex(b)
	return append(b, '"'), nil
}

func (h *Hash32) UnmarshalJSON(bts []byte) error {
	return h.UnmarshalText(bts)
}

func (h Hash32) MarshalBinary() ([]byte, error) {
	b := h.Bytes()
	return b[:], nil
}

func (h *Hash32) UnmarshalBinary(data []byte) error {
	v, err := Hash32FromSlice(data)
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// mixWords folds the words into seed with the MurmurHash3 finalizer.
func mixWords(seed uint64, w *[4]uint64) uint64 {
	h := seed
	for _, x := range w {
		h = fmix64(h ^ x)
	}
	return h
}

func fmix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}
