package chainnum

// ParseU256 parses s as a 0x-prefixed quantity if it carries the prefix, or
// as an unsigned decimal integer otherwise. Surrounding whitespace and one
// pair of double quotes are ignored. On failure the zero value is returned
// with a *ParseError.
func ParseU256(s string) (U256, error) {
	v, err := parseU256(unframe(s))
	if err != nil {
		return U256{}, parseError("ParseU256", s, err)
	}
	return v, nil
}

// ParseU256Bytes is ParseU256 for callers holding the text as bytes, such as
// an encoder's token buffer. b is not retained.
func ParseU256Bytes(b []byte) (U256, error) {
	return ParseU256(bytesString(b))
}

// MustParseU256 is like ParseU256 but panics if s cannot be parsed. It is
// intended for constants and tests.
func MustParseU256(s string) U256 {
	v, err := ParseU256(s)
	if err != nil {
		panic(err)
	}
	return v
}

func parseU256(s string) (U256, error) {
	if hasHexPrefix(s) {
		return parseU256Hex(s, true)
	}
	l, err := decimalLimbs(s)
	if err != nil {
		return U256{}, err
	}
	return U256FromLimbs(l), nil
}

// ParseI256 parses a signed integer in decimal or hex. Hex input is either
// exactly 64 unsigned digits, read as a raw two's complement bit pattern (the
// ABI form), or a magnitude of up to 64 digits with an optional leading sign
// before the prefix. "-0x1" is -1 and "0xff..ff" (64 digits) is also -1.
func ParseI256(s string) (I256, error) {
	v, err := parseI256(unframe(s))
	if err != nil {
		return I256{}, parseError("ParseI256", s, err)
	}
	return v, nil
}

// ParseI256Bytes is ParseI256 for callers holding the text as bytes. b is not
// retained.
func ParseI256Bytes(b []byte) (I256, error) {
	return ParseI256(bytesString(b))
}

func MustParseI256(s string) I256 {
	v, err := ParseI256(s)
	if err != nil {
		panic(err)
	}
	return v
}

func parseI256(s string) (I256, error) {
	neg, rest := cutSign(s)
	signed := len(rest) != len(s)

	if !hasHexPrefix(rest) {
		l, err := decimalLimbs(rest)
		if err != nil {
			return I256{}, err
		}
		return signedFromMagnitude(U256FromLimbs(l), neg)
	}

	digits := rest[2:]
	if len(digits) == 64 && !signed {
		l, err := hexLimbs(digits)
		if err != nil {
			return I256{}, err
		}
		return I256FromLimbs(l), nil
	}

	// A bare "0x" is zero, but a sign must be followed by digits.
	mag, err := parseU256Hex(rest, !signed)
	if err != nil {
		return I256{}, err
	}
	return signedFromMagnitude(mag, neg)
}

// ParseU256Format parses text in the form that AppendFormat writes for f.
// Every Format round-trips through the pair.
func ParseU256Format(s string, f Format) (U256, error) {
	in := unframe(s)
	var v U256
	var err error
	switch f = v.resolve(f); f {
	case FormatDecimal:
		var l [4]uint64
		l, err = decimalLimbs(in)
		v = U256FromLimbs(l)
	case FormatHexPrefixed, FormatHexPrefixedUpper:
		v, err = parseU256Hex(in, true)
	case FormatHex, FormatHexUpper:
		v, err = parseU256Hex(in, false)
	default:
		return ParseU256HexFixed(s, 64)
	}
	if err != nil {
		return U256{}, parseError("ParseU256Format", s, err)
	}
	return v, nil
}

// ParseI256Format parses text in the form that AppendFormat writes for f.
func ParseI256Format(s string, f Format) (I256, error) {
	in := unframe(s)
	var v I256
	var err error
	switch f = v.resolve(f); f {
	case FormatDecimal:
		return ParseI256Decimal(s)
	case FormatHex64, FormatHex64Upper, FormatHex64Prefixed, FormatHex64PrefixedUpper:
		if hasHexPrefix(in) {
			in = in[2:]
		}
		if len(in) != 64 {
			err = ErrInvalidLength
			break
		}
		var l [4]uint64
		l, err = hexLimbs(in)
		v = I256FromLimbs(l)
	default:
		neg, rest := cutSign(in)
		var mag U256
		if mag, err = parseU256Hex(rest, false); err == nil {
			v, err = signedFromMagnitude(mag, neg)
		}
	}
	if err != nil {
		return I256{}, parseError("ParseI256Format", s, err)
	}
	return v, nil
}
