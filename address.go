package chainnum

import (
	"encoding/binary"
	"fmt"

	"github.com/shabbyrobe/go-chainnum/keccak"
)

// AddressKind is the chain an Address belongs to.
type AddressKind uint8

const (
	AddressEVM AddressKind = iota
	AddressSolana
)

func (k AddressKind) String() string {
	switch k {
	case AddressEVM:
		return "evm"
	case AddressSolana:
		return "solana"
	}
	return fmt.Sprintf("AddressKind(%d)", uint8(k))
}

// PayloadLen is the number of significant bytes in an address of kind k: 20
// for EVM, 32 for Solana.
func (k AddressKind) PayloadLen() int {
	if k == AddressEVM {
		return 20
	}
	return 32
}

// AddressBinaryLen is the size of the column form written by MarshalBinary:
// one discriminant byte followed by the 32-byte backing value.
const AddressBinaryLen = 33

// Address is an EVM or Solana account address.
//
// Both kinds share the 32-byte backing layout of Hash32. An EVM address uses
// only the first 20 bytes; the last 12 are always zero, so two addresses are
// equal exactly when their kind and all four words are equal.
//
// In memory an Address is 40 bytes: the kind byte, 7 zero padding bytes and
// the four words at offset 8. The padding is always zero.
type Address struct {
	kind AddressKind
	_    [7]byte
	w    [4]uint64
}

// EVMAddress creates an EVM address from its 20 bytes.
func EVMAddress(b [20]byte) Address {
	return Address{kind: AddressEVM, w: [4]uint64{
		binary.BigEndian.Uint64(b[0:]),
		binary.BigEndian.Uint64(b[8:]),
		uint64(binary.BigEndian.Uint32(b[16:])) << 32,
	}}
}

// SolanaAddress creates a Solana address from its 32-byte public key.
func SolanaAddress(b [32]byte) Address {
	return Address{kind: AddressSolana, w: Hash32FromBytes(b).w}
}

// AddressFromSlice creates an address of the given kind from exactly
// kind.PayloadLen() bytes.
func AddressFromSlice(kind AddressKind, b []byte) (Address, error) {
	switch kind {
	case AddressEVM:
		if len(b) != 20 {
			return Address{}, ErrInvalidLength
		}
		return EVMAddress([20]byte(b)), nil
	case AddressSolana:
		if len(b) != 32 {
			return Address{}, ErrInvalidLength
		}
		return SolanaAddress([32]byte(b)), nil
	}
	return Address{}, ErrUnknownAddressKind
}

// EVMAddressFromPublicKey derives an EVM address from an uncompressed
// secp256k1 public key without its 0x04 prefix: the last 20 bytes of the
// Keccak-256 of the 64 key bytes.
func EVMAddressFromPublicKey(pub [64]byte) Address {
	sum := keccak.Sum256(pub[:])
	return EVMAddress([20]byte(sum[12:]))
}

func (a Address) Kind() AddressKind { return a.kind }

func (a Address) IsZero() bool { return a.w == [4]uint64{} }

// Bytes32 returns the full 32-byte backing value, including the zero tail of
// an EVM address.
func (a Address) Bytes32() [32]byte { return Hash32{w: a.w}.Bytes() }

// EVM returns the 20 bytes of an EVM address. ok is false for other kinds.
func (a Address) EVM() (b [20]byte, ok bool) {
	if a.kind != AddressEVM {
		return b, false
	}
	full := a.Bytes32()
	return [20]byte(full[:20]), true
}

// Bytes returns the significant bytes of a: 20 for EVM, 32 for Solana.
func (a Address) Bytes() []byte {
	full := a.Bytes32()
	return append([]byte(nil), full[:a.kind.PayloadLen()]...)
}

func (a Address) Cmp(o Address) int {
	if a.kind < o.kind {
		return -1
	} else if a.kind > o.kind {
		return 1
	}
	return Hash32{w: a.w}.Cmp(Hash32{w: o.w})
}

func (a Address) Equal(o Address) bool { return a == o }

// Hash returns a 64-bit digest of the kind and all four words. An EVM and a
// Solana address with the same backing bytes hash differently.
func (a Address) Hash() uint64 {
	return mixWords(fmix64(uint64(a.kind)+1), &a.w)
}

// ParseAddress parses an EVM address (40 hex digits, with or without 0x, in
// any case) or a Solana address (Base58 of 32 bytes). Input with a 0x prefix,
// or of exactly 40 hex digits, is always treated as EVM.
func ParseAddress(s string) (Address, error) {
	in := unframe(s)
	var a Address
	var err error
	if hasHexPrefix(in) || (len(in) == 40 && isHexString(in)) {
		a, err = parseEVMAddress(in)
	} else {
		a, err = parseSolanaAddress(in)
	}
	if err != nil {
		return Address{}, parseError("ParseAddress", s, err)
	}
	return a, nil
}

func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// ParseEVMAddress parses 40 hex digits with an optional 0x prefix. The case
// of the digits is not checked; see ParseEVMAddressChecksummed.
func ParseEVMAddress(s string) (Address, error) {
	a, err := parseEVMAddress(unframe(s))
	if err != nil {
		return Address{}, parseError("ParseEVMAddress", s, err)
	}
	return a, nil
}

// ParseEVMAddressChecksummed parses an EVM address that must be written in
// exactly its EIP-55 mixed-case form. An address that decodes but has the
// wrong case is ErrNonCanonical.
func ParseEVMAddressChecksummed(s string) (Address, error) {
	in := unframe(s)
	a, err := parseEVMAddress(in)
	if err == nil {
		b, _ := a.EVM()
		var buf [42]byte
		want := appendChecksumHex(buf[:0], &b)
		if !hasHexPrefix(in) {
			want = want[2:]
		} else {
			in = "0x" + in[2:]
		}
		if string(want) != in {
			err = ErrNonCanonical
		}
	}
	if err != nil {
		return Address{}, parseError("ParseEVMAddressChecksummed", s, err)
	}
	return a, nil
}

// ParseSolanaAddress parses the canonical Base58 encoding of a 32-byte key.
func ParseSolanaAddress(s string) (Address, error) {
	a, err := parseSolanaAddress(unframe(s))
	if err != nil {
		return Address{}, parseError("ParseSolanaAddress", s, err)
	}
	return a, nil
}

func parseEVMAddress(s string) (Address, error) {
	if hasHexPrefix(s) {
		s = s[2:]
	}
	var b [20]byte
	if err := decodeHexBytes(b[:], s); err != nil {
		return Address{}, err
	}
	return EVMAddress(b), nil
}

func parseSolanaAddress(s string) (Address, error) {
	var b [32]byte
	if err := decodeBase58(b[:], s); err != nil {
		return Address{}, err
	}
	return SolanaAddress(b), nil
}

func isHexString(s string) bool {
	for i := 0; i < len(s); i++ {
		if nibbleTable[s[i]] == badNibble {
			return false
		}
	}
	return true
}

// String returns the EIP-55 checksummed hex form of an EVM address, or the
// Base58 form of a Solana address.
func (a Address) String() string {
	if b, ok := a.EVM(); ok {
		return ChecksumHex(b)
	}
	full := a.Bytes32()
	return EncodeBase58(full[:])
}

// Hex returns "0x" followed by the lowercase hex of the significant bytes.
func (a Address) Hex() string {
	full := a.Bytes32()
	buf := make([]byte, 0, 2+2*32)
	buf = append(buf, '0', 'x')
	return string(appendHexBytes(buf, full[:a.kind.PayloadLen()], lowerHex))
}

// AppendBinary appends the 33-byte column form of a to dst.
func (a Address) AppendBinary(dst []byte) []byte {
	full := a.Bytes32()
	dst = append(dst, byte(a.kind))
	return append(dst, full[:]...)
}

func (a Address) MarshalBinary() ([]byte, error) {
	return a.AppendBinary(make([]byte, 0, AddressBinaryLen)), nil
}

// AddressFromBinary reads the column form written by AppendBinary. It
// rejects unknown kinds and EVM addresses whose 12-byte tail is not zero.
func AddressFromBinary(b []byte) (Address, error) {
	if len(b) != AddressBinaryLen {
		return Address{}, ErrInvalidLength
	}
	kind := AddressKind(b[0])
	if kind != AddressEVM && kind != AddressSolana {
		return Address{}, ErrUnknownAddressKind
	}
	a := Address{kind: kind, w: Hash32FromBytes([32]byte(b[1:])).w}
	if kind == AddressEVM && (a.w[2]&0xFFFFFFFF != 0 || a.w[3] != 0) {
		return Address{}, ErrNonCanonical
	}
	return a, nil
}

func (a *Address) UnmarshalBinary(data []byte) error {
	v, err := AddressFromBinary(data)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(bts []byte) error {
	v, err := ParseAddress(bytesString(bts))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Address) MarshalJSON() ([]byte, error) {
	s := a.String()
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	b = append(b, s...)
	return append(b, '"'), nil
}

func (a *Address) UnmarshalJSON(bts []byte) error {
	return a.UnmarshalText(bts)
}
