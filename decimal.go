package chainnum

import (
	"math/bits"
	"strconv"
)

// decimalChunk is the largest number of decimal digits that always fits in a
// uint64.
const decimalChunk = 19

// decimalLimbs parses a non-empty run of ASCII digits, 19 at a time, into
// limbs. It fails with ErrOverflow rather than wrapping.
func decimalLimbs(s string) (l [4]uint64, err error) {
	if len(s) == 0 {
		return l, ErrInvalidLength
	}
	for len(s) > 0 {
		n := len(s) % decimalChunk
		if n == 0 {
			n = decimalChunk
		}
		// Only the first chunk can be short, so every later chunk scales
		// the accumulator by the full 10^19.
		var chunk uint64
		for i := 0; i < n; i++ {
			c := s[i] - '0'
			if c > 9 {
				return l, ErrInvalidDigit
			}
			chunk = chunk*10 + uint64(c)
		}
		s = s[n:]

		var spill, carry uint64
		l, spill = mul256by64(&l, pow10Table[n])
		if spill != 0 {
			return l, ErrOverflow
		}
		l[0], carry = bits.Add64(l[0], chunk, 0)
		l[1], carry = bits.Add64(l[1], 0, carry)
		l[2], carry = bits.Add64(l[2], 0, carry)
		l[3], carry = bits.Add64(l[3], 0, carry)
		if carry != 0 {
			return l, ErrOverflow
		}
	}
	return l, nil
}

// ParseU256Decimal parses an unsigned decimal integer. Signs are not
// accepted.
func ParseU256Decimal(s string) (U256, error) {
	l, err := decimalLimbs(unframe(s))
	if err != nil {
		return U256{}, parseError("ParseU256Decimal", s, err)
	}
	return U256FromLimbs(l), nil
}

// ParseI256Decimal parses a signed decimal integer with an optional leading
// '+' or '-'. "-0" is zero.
func ParseI256Decimal(s string) (I256, error) {
	in := unframe(s)
	neg, in := cutSign(in)
	l, err := decimalLimbs(in)
	if err == nil {
		var v I256
		v, err = signedFromMagnitude(U256FromLimbs(l), neg)
		if err == nil {
			return v, nil
		}
	}
	return I256{}, parseError("ParseI256Decimal", s, err)
}

func cutSign(s string) (neg bool, rest string) {
	if len(s) > 0 {
		switch s[0] {
		case '-':
			return true, s[1:]
		case '+':
			return false, s[1:]
		}
	}
	return false, s
}

// signedFromMagnitude applies a sign to a parsed magnitude. A negative
// magnitude may reach 2^255; a positive one must stay below it.
func signedFromMagnitude(mag U256, neg bool) (I256, error) {
	if neg {
		if mag.GreaterThan(minI256Magnitude) {
			return I256{}, ErrOverflow
		}
		return mag.Neg().AsI256(), nil
	}
	if !mag.IsI256() {
		return I256{}, ErrOverflow
	}
	return mag.AsI256(), nil
}

// appendDecimal writes u in decimal. Values wider than 64 bits are split into
// base-10^19 chunks with the single-limb division, so no big.Int is needed.
func appendDecimal(dst []byte, u U256) []byte {
	if u.IsUint64() {
		return strconv.AppendUint(dst, u.lo, 10)
	}

	var chunks [5]uint64
	n := 0
	for !u.IsUint64() {
		q, r := quoRemBy64(u.limbs(), pow10Table[decimalChunk])
		chunks[n] = r
		n++
		u = U256FromLimbs(q)
	}
	dst = strconv.AppendUint(dst, u.lo, 10)

	var buf [decimalChunk]byte
	for n > 0 {
		n--
		c := chunks[n]
		for i := decimalChunk - 1; i >= 0; i-- {
			buf[i] = byte('0' + c%10)
			c /= 10
		}
		dst = append(dst, buf[:]...)
	}
	return dst
}

func decimalLen(u U256) int {
	var buf [maxDecimalDigits]byte
	return len(appendDecimal(buf[:0], u))
}

// maxDecimalDigits is the length of MaxU256 in decimal.
const maxDecimalDigits = 78
