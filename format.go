package chainnum

import (
	"fmt"
	"io"
)

// Format selects one of the text forms of U256 and I256. Resolve a format
// token once with ParseFormat, then pass the Format to Text, AppendFormat or
// FormatTo.
type Format uint8

const (
	// FormatDefault is the canonical form: 0x-prefixed minimal lowercase hex
	// for U256, decimal for I256.
	FormatDefault Format = iota

	FormatDecimal

	// Minimal-width hex. For I256 this is the magnitude, preceded by '-' when
	// negative.
	FormatHex
	FormatHexUpper
	FormatHexPrefixed
	FormatHexPrefixedUpper

	// Fixed 64-digit zero-padded hex. For I256 this is the raw two's
	// complement bit pattern, never a signed magnitude.
	FormatHex64
	FormatHex64Upper
	FormatHex64Prefixed
	FormatHex64PrefixedUpper

	formatEnd
)

var formatTokens = [...]string{
	FormatDefault:            "G",
	FormatDecimal:            "d",
	FormatHex:                "x",
	FormatHexUpper:           "X",
	FormatHexPrefixed:        "0x",
	FormatHexPrefixedUpper:   "0X",
	FormatHex64:              "x64",
	FormatHex64Upper:         "X64",
	FormatHex64Prefixed:      "0x64",
	FormatHex64PrefixedUpper: "0X64",
}

// ParseFormat resolves a format token. The empty token and "G" select
// FormatDefault; "d" and "D" select FormatDecimal. The hex tokens are "x",
// "X", "0x" and "0X", each optionally followed by "64" for the padded form;
// an upper-case 'X' selects upper-case digits. The prefix itself is always
// written as "0x".
func ParseFormat(token string) (Format, error) {
	switch token {
	case "", "G":
		return FormatDefault, nil
	case "D":
		return FormatDecimal, nil
	}
	for f, t := range formatTokens {
		if t == token {
			return Format(f), nil
		}
	}
	return FormatDefault, fmt.Errorf("%w %q", ErrUnknownFormat, token)
}

func (f Format) String() string {
	if f < formatEnd {
		return formatTokens[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

func (f Format) hexLayout() (prefix bool, padded bool, digits string) {
	switch f {
	case FormatHex:
		return false, false, lowerHex
	case FormatHexUpper:
		return false, false, upperHex
	case FormatHexPrefixed:
		return true, false, lowerHex
	case FormatHexPrefixedUpper:
		return true, false, upperHex
	case FormatHex64:
		return false, true, lowerHex
	case FormatHex64Upper:
		return false, true, upperHex
	case FormatHex64Prefixed:
		return true, true, lowerHex
	default:
		return true, true, upperHex
	}
}

// MaxFormattedLen returns the longest output f can produce for any U256 or
// I256 whose magnitude fits in magnitudeBytes bytes. It is the buffer size to
// hand to FormatTo when the value is not yet known.
func MaxFormattedLen(f Format, magnitudeBytes int) int {
	if magnitudeBytes < 1 {
		magnitudeBytes = 1
	} else if magnitudeBytes > 32 {
		magnitudeBytes = 32
	}

	// 241/100 is just over log10(256), the decimal digits per byte.
	decimal := 1 + magnitudeBytes*241/100 + 1
	hex := 1 + 2 + 2*magnitudeBytes

	switch f {
	case FormatDefault:
		return max(decimal, hex)
	case FormatDecimal:
		return decimal
	case FormatHex, FormatHexUpper:
		return hex - 2
	case FormatHexPrefixed, FormatHexPrefixedUpper:
		return hex
	case FormatHex64, FormatHex64Upper:
		return 64
	case FormatHex64Prefixed, FormatHex64PrefixedUpper:
		return 66
	}
	return 0
}

func (u U256) resolve(f Format) Format {
	if f == FormatDefault || f >= formatEnd {
		return FormatHexPrefixed
	}
	return f
}

// Text returns u in the form f. An invalid Format produces the default form.
func (u U256) Text(f Format) string {
	var buf [maxDecimalDigits + 2]byte
	return string(u.AppendFormat(buf[:0], f))
}

func (u U256) String() string { return u.Text(FormatDefault) }

// AppendFormat appends u in the form f to dst and returns the extended
// buffer.
func (u U256) AppendFormat(dst []byte, f Format) []byte {
	f = u.resolve(f)
	if f == FormatDecimal {
		return appendDecimal(dst, u)
	}

	prefix, padded, digits := f.hexLayout()
	if prefix {
		dst = append(dst, '0', 'x')
	}
	n := 64
	if !padded {
		n = minimalNibbles(u)
	}
	return appendHexLimbs(dst, u.limbs(), n, digits)
}

// FormattedLen returns the exact length of u.Text(f).
func (u U256) FormattedLen(f Format) int {
	f = u.resolve(f)
	if f == FormatDecimal {
		return decimalLen(u)
	}
	prefix, padded, _ := f.hexLayout()
	n := 64
	if !padded {
		n = minimalNibbles(u)
	}
	if prefix {
		n += 2
	}
	return n
}

// FormatTo writes u in the form f to the start of dst and returns the number
// of bytes written. If dst is too short, nothing is written and
// ErrDestinationTooSmall is returned.
func (u U256) FormatTo(dst []byte, f Format) (int, error) {
	n := u.FormattedLen(f)
	if len(dst) < n {
		return 0, ErrDestinationTooSmall
	}
	u.AppendFormat(dst[:0], f)
	return n, nil
}

// Format implements fmt.Formatter. %v and %s produce the default form; every
// other verb is handled as big.Int would handle it.
func (u U256) Format(s fmt.State, c rune) {
	switch c {
	case 'v', 's':
		var buf [maxDecimalDigits + 2]byte
		s.Write(u.AppendFormat(buf[:0], FormatDefault))
	default:
		u.AsBigInt().Format(s, c)
	}
}

func (i I256) resolve(f Format) Format {
	if f == FormatDefault || f >= formatEnd {
		return FormatDecimal
	}
	return f
}

// Text returns i in the form f. An invalid Format produces the default form.
func (i I256) Text(f Format) string {
	var buf [maxDecimalDigits + 3]byte
	return string(i.AppendFormat(buf[:0], f))
}

func (i I256) String() string { return i.Text(FormatDefault) }

func (i I256) AppendFormat(dst []byte, f Format) []byte {
	f = i.resolve(f)
	if f == FormatDecimal {
		if i.hi&signBit != 0 {
			dst = append(dst, '-')
		}
		return appendDecimal(dst, i.Magnitude())
	}

	prefix, padded, digits := f.hexLayout()
	if padded {
		if prefix {
			dst = append(dst, '0', 'x')
		}
		return appendHexLimbs(dst, i.AsU256().limbs(), 64, digits)
	}

	mag := i.Magnitude()
	if i.hi&signBit != 0 {
		dst = append(dst, '-')
	}
	if prefix {
		dst = append(dst, '0', 'x')
	}
	return appendHexLimbs(dst, mag.limbs(), minimalNibbles(mag), digits)
}

func (i I256) FormattedLen(f Format) int {
	f = i.resolve(f)
	n := 0
	if f == FormatDecimal {
		if i.hi&signBit != 0 {
			n++
		}
		return n + decimalLen(i.Magnitude())
	}

	prefix, padded, _ := f.hexLayout()
	if prefix {
		n += 2
	}
	if padded {
		return n + 64
	}
	if i.hi&signBit != 0 {
		n++
	}
	return n + minimalNibbles(i.Magnitude())
}

func (i I256) FormatTo(dst []byte, f Format) (int, error) {
	n := i.FormattedLen(f)
	if len(dst) < n {
		return 0, ErrDestinationTooSmall
	}
	i.AppendFormat(dst[:0], f)
	return n, nil
}

func (i I256) Format(s fmt.State, c rune) {
	switch c {
	case 'v', 's':
		io.WriteString(s, i.String())
	default:
		i.AsBigInt().Format(s, c)
	}
}
