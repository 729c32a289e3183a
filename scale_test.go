package chainnum

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestPow10(t *testing.T) {
	tt := assert.WrapTB(t)
	ten := big.NewInt(10)
	for exp := uint(0); exp <= 77; exp++ {
		v, err := Pow10(exp)
		tt.MustAssert(err == nil, "10^%d: %v", exp, err)
		want := new(big.Int).Exp(ten, new(big.Int).SetUint64(uint64(exp)), nil)
		tt.MustEqual(want.String(), v.Text(FormatDecimal), "10^%d", exp)
	}
	_, err := Pow10(78)
	tt.MustAssert(errors.Is(err, ErrOverflow))
}

func TestMulPow10(t *testing.T) {
	for idx, tc := range []struct {
		u   U256
		exp uint
		out string
		err error
	}{
		{u64(0), 1000, "0", nil},
		{u64(15), 17, "1500000000000000000", nil},
		{u64(1), 19, "10000000000000000000", nil},
		{u64(123), 20, "12300000000000000000000", nil},
		{u64(1), 77, "1" + strings.Repeat("0", 77), nil},
		{u64(2), 77, "", ErrOverflow},
		{u64(1), 78, "", ErrOverflow},
		{MaxU256, 1, "", ErrOverflow},
		{MaxU256.QuoPow10(19), 19, "115792089237316195423570985008687907853269984665640564039450000000000000000000", nil},
	} {
		t.Run(fmt.Sprintf("%d/%s*10^%d", idx, tc.u, tc.exp), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := tc.u.MulPow10(tc.exp)
			if tc.err != nil {
				tt.MustAssert(errors.Is(err, tc.err))
				return
			}
			tt.MustOK(err)
			tt.MustEqual(tc.out, v.Text(FormatDecimal))
		})
	}
}

func TestQuoPow10(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, exp := range []uint{0, 1, 18, 19, 20, 40, 77} {
		want := new(big.Int).Quo(maxBigU256, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil))
		tt.MustEqual(want.String(), MaxU256.QuoPow10(exp).Text(FormatDecimal), "exp %d", exp)
	}
	tt.MustEqual(u64(1), MaxU256.QuoPow10(77))
	tt.MustAssert(MaxU256.QuoPow10(78).IsZero())
}

func TestUnits(t *testing.T) {
	for _, tc := range []struct {
		base     string
		decimals uint8
		units    string
	}{
		{"0", 18, "0"},
		{"1", 18, "0.000000000000000001"},
		{"1500000", 6, "1.5"},
		{"1000000000000000000", 18, "1"},
		{"123456789", 0, "123456789"},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639935", 18,
			"115792089237316195423570985008687907853269984665640564039457.584007913129639935"},
	} {
		t.Run(fmt.Sprintf("%s/%d", tc.base, tc.decimals), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := MustParseU256(tc.base)
			tt.MustEqual(tc.units, FormatUnits(v, tc.decimals))

			back, err := ParseUnits(tc.units, tc.decimals)
			tt.MustOK(err)
			tt.MustEqual(v, back)
		})
	}
}

func TestParseUnitsErrors(t *testing.T) {
	for _, tc := range []struct {
		in       string
		decimals uint8
		err      error
	}{
		{"", 18, ErrInvalidLength},
		{".", 18, ErrInvalidDigit},
		{"-1", 18, ErrInvalidDigit},
		{"1e3", 18, ErrInvalidDigit},
		{"1.2.3", 18, ErrInvalidDigit},
		{"1.0000001", 6, ErrInvalidDigit},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639936", 0, ErrOverflow},
		{"1", 78, ErrOverflow},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := ParseUnits(tc.in, tc.decimals)
			tt.MustAssert(errors.Is(err, tc.err), "expected %v, found %v", tc.err, err)
		})
	}

	tt := assert.WrapTB(t)
	v, err := ParseUnits("1.50", 2)
	tt.MustOK(err)
	tt.MustEqual(u64(150), v)
}
