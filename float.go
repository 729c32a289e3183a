package chainnum

import (
	"math"
	"math/big"
)

const (
	wrapUint64Float = float64(1 << 64)

	float64MantBits = 52
	float64ExpBias  = 1023
)

var (
	wrapU256Float = math.Ldexp(1, 256) // 1 << 256
	wrapI256Float = math.Ldexp(1, 255) // 1 << 255
)

// U256FromFloat64 creates a U256 from a float64. Any fractional portion
// will be truncated towards zero. Floats outside the bounds of a U256
// are clamped and inRange is set to false.
//
// NaN is treated as 0, inRange is set to false.
func U256FromFloat64(f float64) (out U256, inRange bool) {
	if f == 0 {
		return U256{}, true

	} else if f != f { // (f != f) == NaN
		return U256{}, false

	} else if f < 0 {
		return U256{}, false

	} else if f < wrapUint64Float {
		return U256{lo: uint64(f)}, true

	} else if f < wrapU256Float {
		return floatMagnitude(f), true

	} else {
		return MaxU256, false
	}
}

// floatMagnitude converts a finite f >= 2^64 exactly. Every such float is an
// integer, so the mantissa shifted by the unbiased exponent is the value.
func floatMagnitude(f float64) U256 {
	b := math.Float64bits(f)
	exp := int(b>>float64MantBits&0x7FF) - float64ExpBias - float64MantBits
	mant := b&(1<<float64MantBits-1) | 1<<float64MantBits
	return U256{lo: mant}.Lsh(uint(exp))
}

func I256FromFloat64(f float64) (out I256, inRange bool) {
	if f == 0 {
		return out, true

	} else if f != f { // f != f == isnan
		return out, false

	} else if f < 0 {
		if f < -wrapI256Float {
			return MinI256, false
		}
		u, _ := U256FromFloat64(-f)
		return u.Neg().AsI256(), true

	} else {
		if f >= wrapI256Float {
			return MaxI256, false
		}
		u, _ := U256FromFloat64(f)
		return u.AsI256(), true
	}
}

// AsFloat64 returns the nearest float64 to u.
func (u U256) AsFloat64() float64 {
	if u.IsUint64() {
		return float64(u.lo)
	}

	// Keep the top 64 bits and fold the rest into a sticky bit so the
	// conversion of the top word rounds the same way the full value would.
	shift := uint(u.BitLen() - 64)
	top := u.Rsh(shift)
	if !u.And(U256{lo: 1}.Lsh(shift).Dec()).IsZero() {
		top.lo |= 1
	}
	return math.Ldexp(float64(top.lo), int(shift))
}

func (u U256) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(u.AsBigInt())
}

func (i I256) AsFloat64() float64 {
	if i.hi&signBit != 0 {
		return -i.Magnitude().AsFloat64()
	}
	return i.AsU256().AsFloat64()
}

func (i I256) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(i.AsBigInt())
}
