package chainnum

import (
	"github.com/shopspring/decimal"
)

// pow10Table holds 10^0 through 10^19, every power of ten that fits in a
// uint64.
var pow10Table = [20]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000,
}

const (
	maxPow10Fast = len(pow10Table) - 1

	// maxPow10 is the largest exponent for which 10^exp fits in a U256.
	maxPow10 = 77
)

// Pow10 returns 10^exp, or ErrOverflow if exp > 77.
func Pow10(exp uint) (U256, error) {
	if exp <= uint(maxPow10Fast) {
		return U256{lo: pow10Table[exp]}, nil
	}
	if exp > maxPow10 {
		return U256{}, ErrOverflow
	}
	return bigDecimalToU256(decimal.New(1, int32(exp)))
}

// MulPow10 scales u up by exp decimal places, as when converting a whole-token
// amount into base units. Exponents up to 19 use a single-limb multiply;
// larger ones take the arbitrary-precision path. The result is ErrOverflow if
// it does not fit in 256 bits.
func (u U256) MulPow10(exp uint) (U256, error) {
	if u.IsZero() {
		return u, nil
	}
	if exp <= uint(maxPow10Fast) {
		p, spill := mul256by64(u.limbs(), pow10Table[exp])
		if spill != 0 {
			return U256{}, ErrOverflow
		}
		return U256FromLimbs(p), nil
	}
	if exp > maxPow10 {
		return U256{}, ErrOverflow
	}
	return bigDecimalToU256(decimal.NewFromBigInt(u.AsBigInt(), int32(exp)))
}

// QuoPow10 scales u down by exp decimal places, truncating any remainder.
func (u U256) QuoPow10(exp uint) U256 {
	if exp <= uint(maxPow10Fast) {
		q, _ := quoRemBy64(u.limbs(), pow10Table[exp])
		return U256FromLimbs(q)
	}
	if exp > maxPow10 {
		return U256{}
	}
	// Every U256 fits after a division, so the conversion cannot fail.
	v, _ := bigDecimalToU256(decimal.NewFromBigInt(u.AsBigInt(), -int32(exp)))
	return v
}

// bigDecimalToU256 truncates d towards zero and range checks the result.
func bigDecimalToU256(d decimal.Decimal) (U256, error) {
	if d.Sign() < 0 {
		return U256{}, ErrOverflow
	}
	v, ok := U256FromBigInt(d.BigInt())
	if !ok {
		return U256{}, ErrOverflow
	}
	return v, nil
}

// FormatUnits formats an amount of base units as a decimal number of whole
// units, with trailing fractional zeros removed: FormatUnits(1500000, 6) is
// "1.5".
func FormatUnits(v U256, decimals uint8) string {
	if decimals == 0 {
		return v.Text(FormatDecimal)
	}
	return decimal.NewFromBigInt(v.AsBigInt(), -int32(decimals)).String()
}

// ParseUnits is the inverse of FormatUnits: it parses a decimal number of
// whole units and returns the amount in base units. Only digits and a single
// '.' are accepted. More fractional digits than decimals is ErrInvalidDigit.
func ParseUnits(s string, decimals uint8) (U256, error) {
	in := unframe(s)
	if err := checkUnits(in); err != nil {
		return U256{}, parseError("ParseUnits", s, err)
	}
	d, err := decimal.NewFromString(in)
	if err != nil {
		return U256{}, parseError("ParseUnits", s, ErrInvalidDigit)
	}
	d = d.Shift(int32(decimals))
	if !d.IsInteger() {
		return U256{}, parseError("ParseUnits", s, ErrInvalidDigit)
	}
	v, err := bigDecimalToU256(d)
	if err != nil {
		return U256{}, parseError("ParseUnits", s, err)
	}
	return v, nil
}

func checkUnits(s string) error {
	if len(s) == 0 {
		return ErrInvalidLength
	}
	digits, dot := 0, false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			return ErrInvalidDigit
		}
	}
	if digits == 0 {
		return ErrInvalidDigit
	}
	return nil
}
