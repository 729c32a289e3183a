package chainnum

import "encoding/binary"

// Bytes32 returns u as a 32-byte big-endian array.
func (u U256) Bytes32() (b [32]byte) {
	binary.BigEndian.PutUint64(b[0:], u.hi)
	binary.BigEndian.PutUint64(b[8:], u.hm)
	binary.BigEndian.PutUint64(b[16:], u.lm)
	binary.BigEndian.PutUint64(b[24:], u.lo)
	return b
}

// PutBigEndian writes u to the first 32 bytes of dst.
func (u U256) PutBigEndian(dst []byte) error {
	if len(dst) < 32 {
		return ErrDestinationTooSmall
	}
	binary.BigEndian.PutUint64(dst[0:], u.hi)
	binary.BigEndian.PutUint64(dst[8:], u.hm)
	binary.BigEndian.PutUint64(dst[16:], u.lm)
	binary.BigEndian.PutUint64(dst[24:], u.lo)
	return nil
}

// PutLittleEndian writes u to the first 32 bytes of dst, least significant
// byte first.
func (u U256) PutLittleEndian(dst []byte) error {
	if len(dst) < 32 {
		return ErrDestinationTooSmall
	}
	binary.LittleEndian.PutUint64(dst[0:], u.lo)
	binary.LittleEndian.PutUint64(dst[8:], u.lm)
	binary.LittleEndian.PutUint64(dst[16:], u.hm)
	binary.LittleEndian.PutUint64(dst[24:], u.hi)
	return nil
}

func U256FromBytes32(b [32]byte) U256 {
	return U256{
		hi: binary.BigEndian.Uint64(b[0:]),
		hm: binary.BigEndian.Uint64(b[8:]),
		lm: binary.BigEndian.Uint64(b[16:]),
		lo: binary.BigEndian.Uint64(b[24:]),
	}
}

// U256FromBigEndian reads exactly 32 big-endian bytes.
func U256FromBigEndian(b []byte) (U256, error) {
	if len(b) != 32 {
		return U256{}, ErrInvalidLength
	}
	return U256FromBytes32([32]byte(b)), nil
}

// U256FromLittleEndian reads exactly 32 little-endian bytes.
func U256FromLittleEndian(b []byte) (U256, error) {
	if len(b) != 32 {
		return U256{}, ErrInvalidLength
	}
	return U256{
		lo: binary.LittleEndian.Uint64(b[0:]),
		lm: binary.LittleEndian.Uint64(b[8:]),
		hm: binary.LittleEndian.Uint64(b[16:]),
		hi: binary.LittleEndian.Uint64(b[24:]),
	}, nil
}

// MinimalLen is the length of the minimal big-endian encoding of u. Zero
// encodes as a single zero byte.
func (u U256) MinimalLen() int {
	n := (u.BitLen() + 7) / 8
	if n == 0 {
		return 1
	}
	return n
}

// AppendMinimal appends the big-endian bytes of u with leading zero bytes
// stripped. Zero is written as a single zero byte.
func (u U256) AppendMinimal(dst []byte) []byte {
	b := u.Bytes32()
	return append(dst, b[32-u.MinimalLen():]...)
}

func (u U256) MinimalBytes() []byte {
	return u.AppendMinimal(make([]byte, 0, u.MinimalLen()))
}

// U256FromMinimal is the inverse of AppendMinimal. It rejects empty input,
// more than 32 bytes, and any leading zero byte other than the lone zero
// byte that encodes zero.
func U256FromMinimal(b []byte) (U256, error) {
	switch {
	case len(b) == 0:
		return U256{}, ErrInvalidLength
	case len(b) > 32:
		return U256{}, ErrOverflow
	case len(b) > 1 && b[0] == 0:
		return U256{}, ErrNonCanonical
	}
	var buf [32]byte
	copy(buf[32-len(b):], b)
	return U256FromBytes32(buf), nil
}

// Bytes32 returns the 32-byte big-endian two's complement form of i.
func (i I256) Bytes32() [32]byte { return i.AsU256().Bytes32() }

func (i I256) PutBigEndian(dst []byte) error    { return i.AsU256().PutBigEndian(dst) }
func (i I256) PutLittleEndian(dst []byte) error { return i.AsU256().PutLittleEndian(dst) }

func I256FromBytes32(b [32]byte) I256 { return U256FromBytes32(b).AsI256() }

func I256FromBigEndian(b []byte) (I256, error) {
	u, err := U256FromBigEndian(b)
	return u.AsI256(), err
}

func I256FromLittleEndian(b []byte) (I256, error) {
	u, err := U256FromLittleEndian(b)
	return u.AsI256(), err
}
