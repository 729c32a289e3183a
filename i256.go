package chainnum

import (
	"math/big"
)

// I256 is a signed 256-bit integer in two's complement form. It shares the
// limb layout of U256; the sign is the top bit of the most significant limb.
type I256 struct {
	lo, lm, hm, hi uint64
}

// I256FromRaw is the complement to I256.Raw(); it creates an I256 from four
// uint64s, most significant first.
func I256FromRaw(hi, hm, lm, lo uint64) I256 { return I256{hi: hi, hm: hm, lm: lm, lo: lo} }

// I256FromLimbs creates an I256 from limbs in ascending significance.
func I256FromLimbs(l [4]uint64) I256 { return I256{lo: l[0], lm: l[1], hm: l[2], hi: l[3]} }

func I256From64(v int64) I256 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I256{hi: hi, hm: hi, lm: hi, lo: uint64(v)}
}

func I256From32(v int32) I256   { return I256From64(int64(v)) }
func I256From16(v int16) I256   { return I256From64(int64(v)) }
func I256From8(v int8) I256     { return I256From64(int64(v)) }
func I256FromInt(v int) I256    { return I256From64(int64(v)) }
func I256FromU64(v uint64) I256 { return I256{lo: v} }

// I256FromBigInt creates an I256 from a big.Int. Values outside the range of
// an I256 are clamped to MinI256 or MaxI256 and accurate is set to 'false'.
func I256FromBigInt(v *big.Int) (out I256, accurate bool) {
	if v.Sign() >= 0 {
		if v.BitLen() > 255 {
			return MaxI256, false
		}
		u, _ := U256FromBigInt(v)
		return u.AsI256(), true
	}

	var mag big.Int
	mag.Neg(v)
	u, ok := U256FromBigInt(&mag)
	if !ok || u.GreaterThan(minI256Magnitude) {
		return MinI256, false
	}
	return u.Neg().AsI256(), true
}

// RandI256 generates a signed 256-bit random integer from an external source.
func RandI256(source RandSource) (out I256) {
	return I256{hi: source.Uint64(), hm: source.Uint64(), lm: source.Uint64(), lo: source.Uint64()}
}

func (i I256) IsZero() bool { return i == zeroI256 }

// Raw returns access to the I256 as four uint64s, most significant first. See
// I256FromRaw() for the counterpart.
func (i I256) Raw() (hi, hm, lm, lo uint64) { return i.hi, i.hm, i.lm, i.lo }

// Limbs returns the limbs in ascending significance.
func (i I256) Limbs() [4]uint64 { return [4]uint64{i.lo, i.lm, i.hm, i.hi} }

func (i I256) IntoBigInt(b *big.Int) {
	neg := i.hi&signBit != 0
	if neg {
		i = i.Neg()
	}
	i.AsU256().IntoBigInt(b)
	if neg {
		b.Neg(b)
	}
}

func (i I256) AsBigInt() (b *big.Int) {
	var v big.Int
	i.IntoBigInt(&v)
	return &v
}

// AsU256 performs a direct cast of an I256 to a U256. Negative numbers
// become values greater than MaxI256.
func (i I256) AsU256() U256 { return U256{lo: i.lo, lm: i.lm, hm: i.hm, hi: i.hi} }

// IsU256 reports whether i is non-negative.
func (i I256) IsU256() bool { return i.hi&signBit == 0 }

// AsInt64 truncates the I256 to fit in an int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i I256) AsInt64() int64 { return int64(i.lo) }

// IsInt64 reports whether i can be represented as an int64.
func (i I256) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.hm == maxUint64 && i.lm == maxUint64 && i.lo >= 0x8000000000000000
	}
	return i.hi|i.hm|i.lm == 0 && i.lo <= maxInt64
}

// Int64 returns i as an int64, or ErrOverflow if it is out of range.
func (i I256) Int64() (int64, error) {
	if !i.IsInt64() {
		return 0, ErrOverflow
	}
	return int64(i.lo), nil
}

func (i I256) Sign() int {
	if i == zeroI256 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I256) IsNegative() bool { return i.hi&signBit != 0 }

func (i I256) Inc() I256 { return i.AsU256().Inc().AsI256() }
func (i I256) Dec() I256 { return i.AsU256().Dec().AsI256() }

// Add returns i+n, wrapping around on overflow. See AddChecked.
func (i I256) Add(n I256) I256 { return i.AsU256().Add(n.AsU256()).AsI256() }

// AddChecked returns i+n, or ErrOverflow if the operands share a sign and the
// sign of the result differs from it.
func (i I256) AddChecked(n I256) (I256, error) {
	v := i.Add(n)
	if (i.hi^n.hi)&signBit == 0 && (v.hi^i.hi)&signBit != 0 {
		return I256{}, ErrOverflow
	}
	return v, nil
}

// Sub returns i-n, wrapping around on overflow. See SubChecked.
func (i I256) Sub(n I256) I256 { return i.AsU256().Sub(n.AsU256()).AsI256() }

// SubChecked returns i-n, or ErrOverflow if the operands have different signs
// and the sign of the result differs from i.
func (i I256) SubChecked(n I256) (I256, error) {
	v := i.Sub(n)
	if (i.hi^n.hi)&signBit != 0 && (v.hi^i.hi)&signBit != 0 {
		return I256{}, ErrOverflow
	}
	return v, nil
}

// Neg returns -i. Negating MinI256 wraps back to MinI256; see NegChecked.
func (i I256) Neg() I256 { return i.AsU256().Neg().AsI256() }

func (i I256) NegChecked() (I256, error) {
	if i == MinI256 {
		return I256{}, ErrOverflow
	}
	return i.Neg(), nil
}

// Abs returns the absolute value of i. Abs(MinI256) is MinI256; use Magnitude
// if you need the absolute value of every I256.
func (i I256) Abs() I256 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// Magnitude returns |i| as a U256, which can hold the magnitude of MinI256.
func (i I256) Magnitude() U256 {
	if i.hi&signBit != 0 {
		return i.AsU256().Neg()
	}
	return i.AsU256()
}

// Mul returns i*n truncated to 256 bits. Two's complement multiplication
// modulo 2^256 is the same operation as the unsigned one.
func (i I256) Mul(n I256) I256 { return i.AsU256().Mul(n.AsU256()).AsI256() }

// MulChecked returns i*n, or ErrOverflow if the product is outside the range
// of an I256.
func (i I256) MulChecked(n I256) (I256, error) {
	p, err := i.Magnitude().MulChecked(n.Magnitude())
	if err != nil {
		return I256{}, err
	}
	if (i.hi^n.hi)&signBit != 0 && !p.IsZero() {
		if p.GreaterThan(minI256Magnitude) {
			return I256{}, ErrOverflow
		}
		return p.Neg().AsI256(), nil
	}
	if !p.IsI256() {
		return I256{}, ErrOverflow
	}
	return p.AsI256(), nil
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs with ErrDivisionByZero as its value.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// MinI256 / -1 wraps to MinI256, as it does for Go's fixed-width integers.
func (i I256) QuoRem(by I256) (q, r I256) {
	if by.IsZero() {
		panic(ErrDivisionByZero)
	}
	return i.quoRem(by)
}

func (i I256) quoRem(by I256) (q, r I256) {
	qu, ru := i.Magnitude().QuoRem(by.Magnitude())
	q, r = qu.AsI256(), ru.AsI256()
	if (i.hi^by.hi)&signBit != 0 {
		q = q.Neg()
	}
	if i.hi&signBit != 0 {
		r = r.Neg()
	}
	return q, r
}

func (i I256) Quo(by I256) (q I256) {
	q, _ = i.QuoRem(by)
	return q
}

func (i I256) Rem(by I256) (r I256) {
	_, r = i.QuoRem(by)
	return r
}

// DivRem is the checked form of QuoRem. It returns ErrDivisionByZero for a
// zero divisor and ErrOverflow for MinI256 / -1.
func (i I256) DivRem(by I256) (q, r I256, err error) {
	if by.IsZero() {
		return q, r, ErrDivisionByZero
	}
	if i == MinI256 && by == minusOneI256 {
		return q, r, ErrOverflow
	}
	q, r = i.quoRem(by)
	return q, r, nil
}

func (i I256) Div(by I256) (I256, error) {
	q, _, err := i.DivRem(by)
	return q, err
}

// Mod returns the truncated remainder i%by, or ErrDivisionByZero. The
// remainder of MinI256 / -1 is zero, so Mod does not report ErrOverflow.
func (i I256) Mod(by I256) (I256, error) {
	if by.IsZero() {
		return I256{}, ErrDivisionByZero
	}
	_, r := i.quoRem(by)
	return r, nil
}

func (i I256) Cmp(n I256) int {
	if i == n {
		return 0
	}
	if (i.hi^n.hi)&signBit != 0 {
		if i.hi&signBit != 0 {
			return -1
		}
		return 1
	}
	return i.AsU256().Cmp(n.AsU256())
}

func (i I256) Equal(n I256) bool            { return i == n }
func (i I256) GreaterThan(n I256) bool      { return i.Cmp(n) > 0 }
func (i I256) GreaterOrEqualTo(n I256) bool { return i.Cmp(n) >= 0 }
func (i I256) LessThan(n I256) bool         { return i.Cmp(n) < 0 }
func (i I256) LessOrEqualTo(n I256) bool    { return i.Cmp(n) <= 0 }

func (i I256) And(n I256) I256    { return i.AsU256().And(n.AsU256()).AsI256() }
func (i I256) AndNot(n I256) I256 { return i.AsU256().AndNot(n.AsU256()).AsI256() }
func (i I256) Or(n I256) I256     { return i.AsU256().Or(n.AsU256()).AsI256() }
func (i I256) Xor(n I256) I256    { return i.AsU256().Xor(n.AsU256()).AsI256() }
func (i I256) Not() I256          { return I256{lo: ^i.lo, lm: ^i.lm, hm: ^i.hm, hi: ^i.hi} }

// Lsh returns i<<n. Shifting by 256 or more returns zero.
func (i I256) Lsh(n uint) I256 { return i.AsU256().Lsh(n).AsI256() }

// Rsh is an arithmetic shift: vacated bits are filled with the sign bit.
// Shifting by 256 or more returns 0 for non-negative values and -1 for
// negative ones.
func (i I256) Rsh(n uint) I256 {
	if i.hi&signBit == 0 {
		return i.AsU256().Rsh(n).AsI256()
	}
	return i.AsU256().Not().Rsh(n).Not().AsI256()
}

func (i I256) ShiftLeft(n int) (I256, error) {
	if n < 0 {
		return I256{}, ErrNegativeShift
	}
	return i.Lsh(uint(n)), nil
}

func (i I256) ShiftRight(n int) (I256, error) {
	if n < 0 {
		return I256{}, ErrNegativeShift
	}
	return i.Rsh(uint(n)), nil
}

func (i I256) LeadingZeros() uint  { return i.AsU256().LeadingZeros() }
func (i I256) TrailingZeros() uint { return i.AsU256().TrailingZeros() }
func (i I256) OnesCount() int      { return i.AsU256().OnesCount() }

// BitLen returns the number of bits needed to represent |i|, matching
// big.Int.BitLen.
func (i I256) BitLen() int { return i.Magnitude().BitLen() }

// LeadingSignBits returns the number of leading bits equal to the sign bit.
func (i I256) LeadingSignBits() uint {
	if i.hi&signBit != 0 {
		return i.Not().LeadingZeros()
	}
	return i.LeadingZeros()
}

