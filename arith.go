package chainnum

import "math/bits"

// This file contains the limb-level routines shared by U256 and I256. Limbs
// are always passed in ascending significance: x[0] is the least significant.

// mul256to512 returns the full 512-bit product of x and y. Each of the 16
// partial 64x64->128 products is accumulated into the scratch with carry.
func mul256to512(x, y *[4]uint64) (p [8]uint64) {
	for i := 0; i < 4; i++ {
		if x[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(x[i], y[j])
			var c uint64
			lo, c = bits.Add64(lo, p[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			p[i+j] = lo
			carry = hi
		}
		p[i+4] = carry
	}
	return p
}

// mul256to256 is the truncating version of mul256to512; partial products that
// would only land in the high half are skipped.
func mul256to256(x, y *[4]uint64) (p [4]uint64) {
	var carry, c, hi, lo uint64

	hi, p[0] = bits.Mul64(x[0], y[0])
	carry = hi

	hi, lo = bits.Mul64(x[0], y[1])
	p[1], c = bits.Add64(lo, carry, 0)
	carry = hi + c
	hi, lo = bits.Mul64(x[0], y[2])
	p[2], c = bits.Add64(lo, carry, 0)
	carry = hi + c
	p[3] = x[0]*y[3] + carry

	hi, lo = bits.Mul64(x[1], y[0])
	p[1], c = bits.Add64(p[1], lo, 0)
	carry = hi + c
	hi, lo = bits.Mul64(x[1], y[1])
	lo, c = bits.Add64(lo, carry, 0)
	hi += c
	p[2], c = bits.Add64(p[2], lo, 0)
	carry = hi + c
	p[3] += x[1]*y[2] + carry

	hi, lo = bits.Mul64(x[2], y[0])
	p[2], c = bits.Add64(p[2], lo, 0)
	carry = hi + c
	p[3] += x[2]*y[1] + carry

	p[3] += x[3] * y[0]
	return p
}

// mul256by64 multiplies x by a single limb, returning the 256-bit product and
// the limb that spilled out of the top.
func mul256by64(x *[4]uint64, y uint64) (p [4]uint64, spill uint64) {
	var carry, c uint64
	for i := 0; i < 4; i++ {
		hi, lo := bits.Mul64(x[i], y)
		p[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}
	return p, carry
}

// quoRemBy64 divides u by a single non-zero limb, working from the most
// significant limb down and carrying the 64-bit remainder into the 128-bit
// intermediate for the next limb.
func quoRemBy64(u *[4]uint64, d uint64) (q [4]uint64, r uint64) {
	for i := 3; i >= 0; i-- {
		q[i], r = bits.Div64(r, u[i], d)
	}
	return q, r
}

// quoRemKnuth divides u by d, where d spans at least two limbs. It is Knuth's
// Algorithm D (TAOCP vol 2, 4.3.1): both operands are normalised so the top
// bit of the divisor is set, one quotient limb is estimated per step from the
// top two remainder limbs, and corrected with at most one add-back.
func quoRemKnuth(u, d *[4]uint64) (q, r [4]uint64) {
	dLen := 4
	for dLen > 0 && d[dLen-1] == 0 {
		dLen--
	}
	uLen := 4
	for uLen > 0 && u[uLen-1] == 0 {
		uLen--
	}
	if uLen < dLen {
		return q, *u
	}

	shift := uint(bits.LeadingZeros64(d[dLen-1]))

	var dn [4]uint64
	for i := dLen - 1; i > 0; i-- {
		dn[i] = (d[i] << shift) | (d[i-1] >> (64 - shift))
	}
	dn[0] = d[0] << shift

	// When shift is 0, x>>(64-shift) is 0 in Go, so no special case is needed.
	var un [5]uint64
	un[uLen] = u[uLen-1] >> (64 - shift)
	for i := uLen - 1; i > 0; i-- {
		un[i] = (u[i] << shift) | (u[i-1] >> (64 - shift))
	}
	un[0] = u[0] << shift

	dh := dn[dLen-1]
	dl := dn[dLen-2]
	rec := reciprocal2by1(dh)

	for j := uLen - dLen; j >= 0; j-- {
		u2 := un[j+dLen]
		u1 := un[j+dLen-1]
		u0 := un[j+dLen-2]

		var qhat, rhat uint64
		if u2 >= dh {
			qhat = ^uint64(0)
		} else {
			qhat, rhat = udivrem2by1(u2, u1, dh, rec)
			ph, pl := bits.Mul64(qhat, dl)
			if ph > rhat || (ph == rhat && pl > u0) {
				qhat--
			}
		}

		borrow := subMulTo(un[j:j+dLen], dn[:dLen], qhat)
		un[j+dLen] = u2 - borrow
		if u2 < borrow {
			qhat--
			un[j+dLen] += addTo(un[j:j+dLen], dn[:dLen])
		}
		q[j] = qhat
	}

	for i := 0; i < dLen-1; i++ {
		r[i] = (un[i] >> shift) | (un[i+1] << (64 - shift))
	}
	r[dLen-1] = un[dLen-1] >> shift
	return q, r
}

// subMulTo computes x -= y * m and returns the borrow out of the top limb.
func subMulTo(x, y []uint64, m uint64) uint64 {
	var borrow uint64
	for i := 0; i < len(y); i++ {
		s, carry1 := bits.Sub64(x[i], borrow, 0)
		ph, pl := bits.Mul64(y[i], m)
		t, carry2 := bits.Sub64(s, pl, 0)
		x[i] = t
		borrow = ph + carry1 + carry2
	}
	return borrow
}

// addTo computes x += y and returns the carry out of the top limb.
func addTo(x, y []uint64) uint64 {
	var carry uint64
	for i := 0; i < len(y); i++ {
		x[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return carry
}

// reciprocal2by1 computes floor((2^128 - 1) / d) - 2^64 for a normalised d.
func reciprocal2by1(d uint64) uint64 {
	rec, _ := bits.Div64(^d, ^uint64(0), d)
	return rec
}

// udivrem2by1 divides the 128-bit (uh, ul) by the normalised d using the
// precomputed reciprocal (Möller & Granlund, "Improved division by invariant
// integers", algorithm 4). uh must be less than d.
func udivrem2by1(uh, ul, d, rec uint64) (quot, rem uint64) {
	qh, ql := bits.Mul64(rec, uh)
	ql, carry := bits.Add64(ql, ul, 0)
	qh, _ = bits.Add64(qh, uh, carry)
	qh++

	r := ul - qh*d

	if r > ql {
		qh--
		r += d
	}
	if r >= d {
		qh++
		r -= d
	}
	return qh, r
}
