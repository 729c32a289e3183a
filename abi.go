package chainnum

// ABIWordSize is the size of a single value in the Ethereum contract ABI.
const ABIWordSize = 32

// ABIWord returns u as a big-endian ABI word.
func (u U256) ABIWord() [ABIWordSize]byte { return u.Bytes32() }

// ABIWord returns i as a big-endian two's complement ABI word.
func (i I256) ABIWord() [ABIWordSize]byte { return i.Bytes32() }

func (u U256) PutABIWord(dst []byte) error { return u.PutBigEndian(dst) }
func (i I256) PutABIWord(dst []byte) error { return i.PutBigEndian(dst) }

// AppendABIWord appends the 32-byte ABI word for u to dst.
func (u U256) AppendABIWord(dst []byte) []byte {
	w := u.Bytes32()
	return append(dst, w[:]...)
}

func (i I256) AppendABIWord(dst []byte) []byte {
	w := i.Bytes32()
	return append(dst, w[:]...)
}

// DecodeABIWordU256 reads the first word of b. b may be longer than one word,
// as when reading a single value out of encoded call data; only a buffer
// shorter than a word is an error.
func DecodeABIWordU256(b []byte) (U256, error) {
	if len(b) < ABIWordSize {
		return U256{}, ErrInvalidLength
	}
	return U256FromBytes32([32]byte(b[:ABIWordSize])), nil
}

func DecodeABIWordI256(b []byte) (I256, error) {
	u, err := DecodeABIWordU256(b)
	return u.AsI256(), err
}
