package chainnum

import "github.com/holiman/uint256"

// U256FromUint256 converts from the EVM word type used by go-ethereum and its
// forks. Both types keep their limbs least significant first, so this is a
// straight copy.
func U256FromUint256(v *uint256.Int) U256 {
	return U256{lo: v[0], lm: v[1], hm: v[2], hi: v[3]}
}

// IntoUint256 copies u into v and returns v.
func (u U256) IntoUint256(v *uint256.Int) *uint256.Int {
	v[0], v[1], v[2], v[3] = u.lo, u.lm, u.hm, u.hi
	return v
}

// AsUint256 allocates a new uint256.Int holding u.
func (u U256) AsUint256() *uint256.Int {
	return u.IntoUint256(new(uint256.Int))
}

// I256FromUint256 reads v as a two's complement word, which is how the EVM's
// signed opcodes interpret it.
func I256FromUint256(v *uint256.Int) I256 {
	return U256FromUint256(v).AsI256()
}

func (i I256) IntoUint256(v *uint256.Int) *uint256.Int {
	return i.AsU256().IntoUint256(v)
}
