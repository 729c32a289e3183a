package chainnum

import (
	"fmt"
	"math/big"
	"strconv"
)

// U128 is a 128-bit unsigned integer. It exists as a range-checked conversion
// target for U256; arithmetic belongs on U256.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) IsZero() bool { return u.hi|u.lo == 0 }

func (u U128) AsU256() U256 { return U256From128(u) }

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool { return u == n }

func (u U128) AsBigInt() *big.Int { return U256From128(u).AsBigInt() }

// String returns the decimal form of u.
func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.AsBigInt().String()
}

func (u U128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}
