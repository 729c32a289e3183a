package chainnum

const (
	lowerHex = "0123456789abcdef"
	upperHex = "0123456789ABCDEF"

	badNibble = 0xFF
)

var nibbleTable = func() (t [256]byte) {
	for i := range t {
		t[i] = badNibble
	}
	for i := byte(0); i < 10; i++ {
		t['0'+i] = i
	}
	for i := byte(0); i < 6; i++ {
		t['a'+i] = 10 + i
		t['A'+i] = 10 + i
	}
	return t
}()

// hexLimbs decodes up to 64 hex digits into limbs in ascending significance.
// Each digit is placed directly at its final bit position.
func hexLimbs(digits string) (l [4]uint64, err error) {
	n := len(digits)
	for i := 0; i < n; i++ {
		nib := nibbleTable[digits[i]]
		if nib == badNibble {
			return l, ErrInvalidDigit
		}
		pos := uint(n - 1 - i)
		l[pos/16] |= uint64(nib) << ((pos % 16) * 4)
	}
	return l, nil
}

// ParseU256Hex parses between 1 and 64 hex digits with an optional 0x or 0X
// prefix. Leading zeros are permitted.
func ParseU256Hex(s string) (U256, error) {
	v, err := parseU256Hex(unframe(s), false)
	if err != nil {
		return U256{}, parseError("ParseU256Hex", s, err)
	}
	return v, nil
}

// ParseQuantity parses an interchange-format quantity: hex with an optional
// prefix, where a bare prefix ("0x") is zero. More than 64 digits is
// ErrOverflow.
func ParseQuantity(s string) (U256, error) {
	v, err := parseU256Hex(unframe(s), true)
	if err != nil {
		return U256{}, parseError("ParseQuantity", s, err)
	}
	return v, nil
}

func parseU256Hex(s string, quantity bool) (U256, error) {
	prefixed := hasHexPrefix(s)
	if prefixed {
		s = s[2:]
	}
	if len(s) == 0 {
		if quantity && prefixed {
			return U256{}, nil
		}
		return U256{}, ErrInvalidLength
	}
	if len(s) > 64 {
		return U256{}, ErrOverflow
	}
	l, err := hexLimbs(s)
	if err != nil {
		return U256{}, err
	}
	return U256FromLimbs(l), nil
}

// ParseU256HexFixed parses exactly nibbles hex digits, with an optional
// prefix. nibbles must be 16, 32 or 64.
func ParseU256HexFixed(s string, nibbles int) (U256, error) {
	in := unframe(s)
	if hasHexPrefix(in) {
		in = in[2:]
	}
	switch {
	case nibbles != 16 && nibbles != 32 && nibbles != 64:
		return U256{}, parseError("ParseU256HexFixed", s, ErrInvalidLength)
	case len(in) != nibbles:
		return U256{}, parseError("ParseU256HexFixed", s, ErrInvalidLength)
	}
	l, err := hexLimbs(in)
	if err != nil {
		return U256{}, parseError("ParseU256HexFixed", s, err)
	}
	return U256FromLimbs(l), nil
}

// appendHexLimbs writes the low n nibbles of l, most significant first.
func appendHexLimbs(dst []byte, l *[4]uint64, n int, digits string) []byte {
	for i := n - 1; i >= 0; i-- {
		nib := (l[i/16] >> (uint(i%16) * 4)) & 0xF
		dst = append(dst, digits[nib])
	}
	return dst
}

func minimalNibbles(u U256) int {
	n := (u.BitLen() + 3) / 4
	if n == 0 {
		return 1
	}
	return n
}

// decodeHexBytes decodes exactly len(dst)*2 hex digits into dst.
func decodeHexBytes(dst []byte, s string) error {
	if len(s) != len(dst)*2 {
		return ErrInvalidLength
	}
	for i := range dst {
		hi, lo := nibbleTable[s[2*i]], nibbleTable[s[2*i+1]]
		if hi == badNibble || lo == badNibble {
			return ErrInvalidDigit
		}
		dst[i] = hi<<4 | lo
	}
	return nil
}

func appendHexBytes(dst []byte, src []byte, digits string) []byte {
	for _, b := range src {
		dst = append(dst, digits[b>>4], digits[b&0xF])
	}
	return dst
}
