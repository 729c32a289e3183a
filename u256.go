package chainnum

import (
	"math/big"
	"math/bits"
)

// U256 is an unsigned 256-bit integer. U256 is a value type; all operations
// return new values.
//
// The limbs are stored least significant first. Code outside this package that
// reads U256 values as raw memory relies on that order, so it must not change.
type U256 struct {
	lo, lm, hm, hi uint64
}

// U256FromRaw is the complement to U256.Raw(); it creates a U256 from four
// uint64s, most significant first.
func U256FromRaw(hi, hm, lm, lo uint64) U256 { return U256{hi: hi, hm: hm, lm: lm, lo: lo} }

// U256FromLimbs creates a U256 from limbs in ascending significance.
func U256FromLimbs(l [4]uint64) U256 { return U256{lo: l[0], lm: l[1], hm: l[2], hi: l[3]} }

func U256From128(in U128) U256 { return U256{lm: in.hi, lo: in.lo} }
func U256From64(v uint64) U256 { return U256{lo: v} }
func U256From32(v uint32) U256 { return U256{lo: uint64(v)} }
func U256From16(v uint16) U256 { return U256{lo: uint64(v)} }
func U256From8(v uint8) U256   { return U256{lo: uint64(v)} }

// U256FromBigInt creates a U256 from a big.Int. Overflow truncates to MaxU256
// and sets accurate to 'false'; negative numbers produce 0 and 'false'.
func U256FromBigInt(v *big.Int) (out U256, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 256 {
		return MaxU256, false
	}
	var buf [32]byte
	v.FillBytes(buf[:])
	return U256FromBytes32(buf), true
}

// RandU256 generates an unsigned 256-bit random integer from an external source.
func RandU256(source RandSource) (out U256) {
	return U256{hi: source.Uint64(), hm: source.Uint64(), lm: source.Uint64(), lo: source.Uint64()}
}

func (u U256) IsZero() bool { return u == zeroU256 }

// Raw returns access to the U256 as four uint64s, most significant first. See
// U256FromRaw() for the counterpart.
func (u U256) Raw() (hi, hm, lm, lo uint64) { return u.hi, u.hm, u.lm, u.lo }

// Limbs returns the limbs in ascending significance.
func (u U256) Limbs() [4]uint64 { return [4]uint64{u.lo, u.lm, u.hm, u.hi} }

// IntoBigInt copies this U256 into a big.Int, allowing you to retain and
// recycle memory.
func (u U256) IntoBigInt(b *big.Int) {
	buf := u.Bytes32()
	b.SetBytes(buf[:])
}

// AsBigInt allocates a new big.Int and copies this U256 into it.
func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsI256 performs a direct cast of a U256 to an I256, which will interpret it
// as a two's complement value.
func (u U256) AsI256() I256 { return I256{lo: u.lo, lm: u.lm, hm: u.hm, hi: u.hi} }

// IsI256 reports whether u can be represented in an I256.
func (u U256) IsI256() bool { return u.hi&signBit == 0 }

// AsUint64 truncates the U256 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U256) AsUint64() uint64 { return u.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return u.hi|u.hm|u.lm == 0 }

// Uint64 returns u as a uint64, or ErrOverflow if any higher limb is set.
func (u U256) Uint64() (uint64, error) {
	if !u.IsUint64() {
		return 0, ErrOverflow
	}
	return u.lo, nil
}

// AsU128 truncates the U256 to its low 128 bits.
func (u U256) AsU128() U128 { return U128{hi: u.lm, lo: u.lo} }

// IsU128 reports whether u can be represented as a U128.
func (u U256) IsU128() bool { return u.hi|u.hm == 0 }

// U128 returns u as a U128, or ErrOverflow if either of the upper limbs is set.
func (u U256) U128() (U128, error) {
	if !u.IsU128() {
		return U128{}, ErrOverflow
	}
	return U128{hi: u.lm, lo: u.lo}, nil
}

func (u U256) Inc() (v U256) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, 1, 0)
	v.lm, c = bits.Add64(u.lm, 0, c)
	v.hm, c = bits.Add64(u.hm, 0, c)
	v.hi = u.hi + c
	return v
}

func (u U256) Dec() (v U256) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, 1, 0)
	v.lm, b = bits.Sub64(u.lm, 0, b)
	v.hm, b = bits.Sub64(u.hm, 0, b)
	v.hi = u.hi - b
	return v
}

// Add returns u+n, wrapping around on overflow. See AddChecked.
func (u U256) Add(n U256) (v U256) {
	v, _ = u.addCarry(n)
	return v
}

// AddChecked returns u+n, or ErrOverflow if the carry escapes the top limb.
func (u U256) AddChecked(n U256) (U256, error) {
	v, carry := u.addCarry(n)
	if carry != 0 {
		return U256{}, ErrOverflow
	}
	return v, nil
}

func (u U256) addCarry(n U256) (v U256, carry uint64) {
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.lm, carry = bits.Add64(u.lm, n.lm, carry)
	v.hm, carry = bits.Add64(u.hm, n.hm, carry)
	v.hi, carry = bits.Add64(u.hi, n.hi, carry)
	return v, carry
}

// Sub returns u-n, wrapping around on underflow. See SubChecked.
func (u U256) Sub(n U256) (v U256) {
	v, _ = u.subBorrow(n)
	return v
}

// SubChecked returns u-n, or ErrOverflow if n > u.
func (u U256) SubChecked(n U256) (U256, error) {
	v, borrow := u.subBorrow(n)
	if borrow != 0 {
		return U256{}, ErrOverflow
	}
	return v, nil
}

func (u U256) subBorrow(n U256) (v U256, borrow uint64) {
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.lm, borrow = bits.Sub64(u.lm, n.lm, borrow)
	v.hm, borrow = bits.Sub64(u.hm, n.hm, borrow)
	v.hi, borrow = bits.Sub64(u.hi, n.hi, borrow)
	return v, borrow
}

// Neg returns the two's complement negation of u, modulo 2^256.
func (u U256) Neg() U256 { return zeroU256.Sub(u) }

// Mul returns u*n truncated to 256 bits. See MulChecked.
func (u U256) Mul(n U256) U256 {
	if u.IsUint64() {
		p, _ := mul256by64(n.limbs(), u.lo)
		return U256FromLimbs(p)
	} else if n.IsUint64() {
		p, _ := mul256by64(u.limbs(), n.lo)
		return U256FromLimbs(p)
	}
	return U256FromLimbs(mul256to256(u.limbs(), n.limbs()))
}

// MulChecked returns u*n, or ErrOverflow if any of the high 256 bits of the
// full product is set.
func (u U256) MulChecked(n U256) (U256, error) {
	if u.IsUint64() || n.IsUint64() {
		x, y := u, n
		if !x.IsUint64() {
			x, y = y, x
		}
		p, spill := mul256by64(y.limbs(), x.lo)
		if spill != 0 {
			return U256{}, ErrOverflow
		}
		return U256FromLimbs(p), nil
	}

	// Both operands are at least 65 bits wide here. If their widths sum to
	// more than 257 bits the product cannot fit.
	if u.BitLen()+n.BitLen() > 257 {
		return U256{}, ErrOverflow
	}
	p := mul256to512(u.limbs(), n.limbs())
	if p[4]|p[5]|p[6]|p[7] != 0 {
		return U256{}, ErrOverflow
	}
	return U256{lo: p[0], lm: p[1], hm: p[2], hi: p[3]}, nil
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (u U256) Quo(by U256) (q U256) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U256) Rem(by U256) (r U256) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs with ErrDivisionByZero as its value.
// See DivRem for a version that returns an error instead.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
func (u U256) QuoRem(by U256) (q, r U256) {
	q, r, err := u.DivRem(by)
	if err != nil {
		panic(err)
	}
	return q, r
}

// DivRem is the same as QuoRem, but returns ErrDivisionByZero rather than
// panicking.
func (u U256) DivRem(by U256) (q, r U256, err error) {
	if by.hi|by.hm|by.lm == 0 {
		if by.lo == 0 {
			return q, r, ErrDivisionByZero
		}
		if u.IsUint64() {
			return U256{lo: u.lo / by.lo}, U256{lo: u.lo % by.lo}, nil
		}
		ql, rl := quoRemBy64(u.limbs(), by.lo)
		return U256FromLimbs(ql), U256{lo: rl}, nil
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u, nil // it's 100% remainder
	} else if cmp == 0 {
		return U256{lo: 1}, r, nil // dividend and divisor are the same
	}

	byLeading0 := by.LeadingZeros()
	byTrailing0 := by.TrailingZeros()
	if byLeading0+byTrailing0 == 255 { // power of two
		return u.Rsh(byTrailing0), by.Dec().And(u), nil
	}

	ql, rl := quoRemKnuth(u.limbs(), by.limbs())
	return U256FromLimbs(ql), U256FromLimbs(rl), nil
}

// Div returns u/by, or ErrDivisionByZero.
func (u U256) Div(by U256) (U256, error) {
	q, _, err := u.DivRem(by)
	return q, err
}

// Mod returns u%by, or ErrDivisionByZero.
func (u U256) Mod(by U256) (U256, error) {
	_, r, err := u.DivRem(by)
	return r, err
}

func (u U256) Cmp(n U256) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.hm > n.hm {
		return 1
	} else if u.hm < n.hm {
		return -1
	} else if u.lm > n.lm {
		return 1
	} else if u.lm < n.lm {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U256) Equal(n U256) bool            { return u == n }
func (u U256) GreaterThan(n U256) bool      { return u.Cmp(n) > 0 }
func (u U256) GreaterOrEqualTo(n U256) bool { return u.Cmp(n) >= 0 }
func (u U256) LessThan(n U256) bool         { return u.Cmp(n) < 0 }
func (u U256) LessOrEqualTo(n U256) bool    { return u.Cmp(n) <= 0 }

func (u U256) And(n U256) U256 {
	u.hi &= n.hi
	u.hm &= n.hm
	u.lm &= n.lm
	u.lo &= n.lo
	return u
}

func (u U256) AndNot(n U256) U256 {
	u.hi &^= n.hi
	u.hm &^= n.hm
	u.lm &^= n.lm
	u.lo &^= n.lo
	return u
}

func (u U256) Not() U256 {
	u.hi = ^u.hi
	u.hm = ^u.hm
	u.lm = ^u.lm
	u.lo = ^u.lo
	return u
}

func (u U256) Or(n U256) U256 {
	u.hi |= n.hi
	u.hm |= n.hm
	u.lm |= n.lm
	u.lo |= n.lo
	return u
}

func (u U256) Xor(n U256) U256 {
	u.hi ^= n.hi
	u.hm ^= n.hm
	u.lm ^= n.lm
	u.lo ^= n.lo
	return u
}

// Lsh returns u<<n. Shifting by 256 or more returns zero.
func (u U256) Lsh(n uint) (v U256) {
	if n == 0 {
		return u

	} else if n < 64 {
		return U256{
			hi: (u.hi << n) | (u.hm >> (64 - n)),
			hm: (u.hm << n) | (u.lm >> (64 - n)),
			lm: (u.lm << n) | (u.lo >> (64 - n)),
			lo: u.lo << n,
		}

	} else if n == 64 {
		return U256{hi: u.hm, hm: u.lm, lm: u.lo}

	} else if n < 128 {
		n -= 64
		return U256{
			hi: (u.hm << n) | (u.lm >> (64 - n)),
			hm: (u.lm << n) | (u.lo >> (64 - n)),
			lm: u.lo << n,
		}

	} else if n == 128 {
		return U256{hi: u.lm, hm: u.lo}

	} else if n < 192 {
		n -= 128
		return U256{
			hi: (u.lm << n) | (u.lo >> (64 - n)),
			hm: u.lo << n,
		}

	} else if n == 192 {
		return U256{hi: u.lo}

	} else if n < 256 {
		return U256{hi: u.lo << (n - 192)}

	} else {
		return U256{}
	}
}

// Rsh returns u>>n. Shifting by 256 or more returns zero.
func (u U256) Rsh(n uint) (v U256) {
	if n == 0 {
		return u

	} else if n < 64 {
		return U256{
			hi: u.hi >> n,
			hm: (u.hm >> n) | (u.hi << (64 - n)),
			lm: (u.lm >> n) | (u.hm << (64 - n)),
			lo: (u.lo >> n) | (u.lm << (64 - n)),
		}

	} else if n == 64 {
		return U256{hm: u.hi, lm: u.hm, lo: u.lm}

	} else if n < 128 {
		n -= 64
		return U256{
			hm: u.hi >> n,
			lm: (u.hm >> n) | (u.hi << (64 - n)),
			lo: (u.lm >> n) | (u.hm << (64 - n)),
		}

	} else if n == 128 {
		return U256{lm: u.hi, lo: u.hm}

	} else if n < 192 {
		n -= 128
		return U256{
			lm: u.hi >> n,
			lo: (u.hm >> n) | (u.hi << (64 - n)),
		}

	} else if n == 192 {
		return U256{lo: u.hi}

	} else if n < 256 {
		return U256{lo: u.hi >> (n - 192)}

	} else {
		return U256{}
	}
}

// ShiftLeft is Lsh for callers holding a signed shift amount.
func (u U256) ShiftLeft(n int) (U256, error) {
	if n < 0 {
		return U256{}, ErrNegativeShift
	}
	return u.Lsh(uint(n)), nil
}

// ShiftRight is Rsh for callers holding a signed shift amount.
func (u U256) ShiftRight(n int) (U256, error) {
	if n < 0 {
		return U256{}, ErrNegativeShift
	}
	return u.Rsh(uint(n)), nil
}

func (u U256) LeadingZeros() uint {
	if u.hi != 0 {
		return uint(bits.LeadingZeros64(u.hi))
	} else if u.hm != 0 {
		return uint(bits.LeadingZeros64(u.hm)) + 64
	} else if u.lm != 0 {
		return uint(bits.LeadingZeros64(u.lm)) + 128
	} else if u.lo != 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 192
	}
	return 256
}

func (u U256) TrailingZeros() uint {
	if u.lo != 0 {
		return uint(bits.TrailingZeros64(u.lo))
	} else if u.lm != 0 {
		return uint(bits.TrailingZeros64(u.lm)) + 64
	} else if u.hm != 0 {
		return uint(bits.TrailingZeros64(u.hm)) + 128
	} else if u.hi != 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 192
	}
	return 256
}

// OnesCount returns the number of set bits.
func (u U256) OnesCount() int {
	return bits.OnesCount64(u.lo) + bits.OnesCount64(u.lm) +
		bits.OnesCount64(u.hm) + bits.OnesCount64(u.hi)
}

// BitLen returns the minimum number of bits required to represent u; the
// result is 0 for 0.
func (u U256) BitLen() int { return 256 - int(u.LeadingZeros()) }

// Bit returns the value of the i'th bit of u. i must be less than 256.
func (u U256) Bit(i uint) uint {
	switch {
	case i < 64:
		return uint(u.lo>>i) & 1
	case i < 128:
		return uint(u.lm>>(i-64)) & 1
	case i < 192:
		return uint(u.hm>>(i-128)) & 1
	case i < 256:
		return uint(u.hi>>(i-192)) & 1
	}
	panic("chainnum: bit out of range")
}

// SetBit returns u with the i'th bit set to b (0 or 1). i must be less than 256.
func (u U256) SetBit(i uint, b uint) U256 {
	if i >= 256 {
		panic("chainnum: bit out of range")
	}
	if b > 1 {
		panic("chainnum: bit value not 0 or 1")
	}
	var limb *uint64
	switch i / 64 {
	case 0:
		limb = &u.lo
	case 1:
		limb = &u.lm
	case 2:
		limb = &u.hm
	default:
		limb = &u.hi
	}
	mask := uint64(1) << (i % 64)
	if b == 0 {
		*limb &^= mask
	} else {
		*limb |= mask
	}
	return u
}

func (u U256) limbs() *[4]uint64 {
	l := [4]uint64{u.lo, u.lm, u.hm, u.hi}
	return &l
}
