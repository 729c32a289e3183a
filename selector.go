package chainnum

import (
	"encoding/binary"

	"github.com/shabbyrobe/go-chainnum/keccak"
)

// Selector is the 4-byte function selector that prefixes EVM call data: the
// first four bytes of the Keccak-256 of the canonical function signature.
type Selector uint32

func SelectorFromBytes(b [4]byte) Selector {
	return Selector(binary.BigEndian.Uint32(b[:]))
}

// SelectorFromSignature hashes a canonical signature such as
// "transfer(address,uint256)". The signature is not validated.
func SelectorFromSignature(sig string) Selector {
	sum := keccak.Sum256([]byte(sig))
	return Selector(binary.BigEndian.Uint32(sum[:4]))
}

// ParseSelector parses exactly 8 hex digits with an optional 0x prefix.
func ParseSelector(s string) (Selector, error) {
	in := unframe(s)
	if hasHexPrefix(in) {
		in = in[2:]
	}
	var b [4]byte
	if err := decodeHexBytes(b[:], in); err != nil {
		return 0, parseError("ParseSelector", s, err)
	}
	return SelectorFromBytes(b), nil
}

func MustParseSelector(s string) Selector {
	v, err := ParseSelector(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (s Selector) Bytes() (b [4]byte) {
	binary.BigEndian.PutUint32(b[:], uint32(s))
	return b
}

func (s Selector) PutBigEndian(dst []byte) error {
	if len(dst) < 4 {
		return ErrDestinationTooSmall
	}
	binary.BigEndian.PutUint32(dst, uint32(s))
	return nil
}

// Matches reports whether call data begins with s.
func (s Selector) Matches(calldata []byte) bool {
	return len(calldata) >= 4 && binary.BigEndian.Uint32(calldata) == uint32(s)
}

func (s Selector) AppendHex(dst []byte) []byte {
	b := s.Bytes()
	dst = append(dst, '0', 'x')
	return appendHexBytes(dst, b[:], lowerHex)
}

// String returns "0x" followed by 8 lowercase hex digits.
func (s Selector) String() string {
	var buf [10]byte
	return string(s.AppendHex(buf[:0]))
}

func (s Selector) MarshalText() ([]byte, error) {
	return s.AppendHex(make([]byte, 0, 10)), nil
}

func (s *Selector) UnmarshalText(bts []byte) error {
	v, err := ParseSelector(bytesString(bts))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s Selector) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 12)
	b = append(b, '"')
	b = s.AppendHex(b)
	return append(b, '"'), nil
}

func (s *Selector) UnmarshalJSON(bts []byte) error {
	return s.UnmarshalText(bts)
}

func (s Selector) MarshalBinary() ([]byte, error) {
	b := s.Bytes()
	return b[:], nil
}

func (s *Selector) UnmarshalBinary(data []byte) error {
	if len(data) != 4 {
		return ErrInvalidLength
	}
	*s = SelectorFromBytes([4]byte(data))
	return nil
}
