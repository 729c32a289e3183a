package chainnum

import (
	"errors"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestBase58(t *testing.T) {
	for _, tc := range []struct {
		in  []byte
		out string
	}{
		{[]byte("Hello World!"), "2NEpo7TZRRrLZSi2U"},
		{[]byte{0, 0, 0, 0, 0x28, 0x7f, 0xb4, 0xcd}, "1111233QC4"},
		{[]byte{0, 0, 0xff}, "115Q"},
		{make([]byte, 32), strings.Repeat("1", 32)},
		{append(make([]byte, 31), 1), strings.Repeat("1", 31) + "2"},
		{[]byte(strings.Repeat("\xff", 32)), "JEKNVnkbo3jma5nREBBJCDoXFVeKkD56V3xKrvRmWxFG"},
		{[]byte(strings.Repeat("\xff", 64)), "67rpwLCuS5DGA8KGZXKsVQ7dnPb9goRLoKfgGbLfQg9WoLUgNY77E2jT11fem3coV9nAkguBACzrU1iyZM4B8roQ"},
	} {
		t.Run(tc.out, func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, EncodeBase58(tc.in))
			tt.MustEqual("x"+tc.out, string(AppendBase58([]byte("x"), tc.in)))
			tt.MustAssert(len(tc.out) <= Base58EncodedLen(len(tc.in)))

			dst := make([]byte, len(tc.in))
			tt.MustOK(DecodeBase58(dst, tc.out))
			tt.MustEqual(tc.in, dst)
		})
	}
}

func TestBase58DecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		in  string
		n   int
		err error
	}{
		{"", 32, ErrInvalidLength},
		{"1", 0, ErrInvalidLength},
		{strings.Repeat("1", 33), 32, ErrNonCanonical},  // extra padding
		{"2", 32, ErrNonCanonical},                      // missing leading '1's
		{strings.Repeat("z", 45), 32, ErrOverflow},      // too large for 32 bytes
		{strings.Repeat("1", 46), 32, ErrInvalidLength}, // longer than any 32 byte encoding
		{"0OIl", 32, ErrInvalidDigit},
		{"11111111111111111111111111111110", 32, ErrInvalidDigit},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			dst := make([]byte, tc.n)
			for i := range dst {
				dst[i] = 0xaa
			}
			err := DecodeBase58(dst, tc.in)
			tt.MustAssert(errors.Is(err, tc.err), "expected %v, found %v", tc.err, err)
			for _, b := range dst {
				tt.MustEqual(byte(0), b)
			}
		})
	}
}
