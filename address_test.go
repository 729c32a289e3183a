package chainnum

import (
	"encoding/json"
	"errors"
	"testing"
	"unsafe"

	"github.com/shabbyrobe/golib/assert"
)

const (
	eip55Address = "0x52908400098527886E0F7030069857D2E4169EE7"
	tokenProgram = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
)

func TestParseAddress(t *testing.T) {
	for _, tc := range []struct {
		in   string
		kind AddressKind
		out  string
	}{
		{eip55Address, AddressEVM, eip55Address},
		{"0x52908400098527886e0f7030069857d2e4169ee7", AddressEVM, eip55Address},
		{"52908400098527886e0f7030069857d2e4169ee7", AddressEVM, eip55Address},
		{"0x0000000000000000000000000000000000000000", AddressEVM, "0x0000000000000000000000000000000000000000"},
		{tokenProgram, AddressSolana, tokenProgram},
		{"11111111111111111111111111111111", AddressSolana, "11111111111111111111111111111111"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			a, err := ParseAddress(tc.in)
			tt.MustOK(err)
			tt.MustEqual(tc.kind, a.Kind())
			tt.MustEqual(tc.out, a.String())
			tt.MustEqual(tc.kind.PayloadLen(), len(a.Bytes()))
		})
	}
}

func TestParseAddressErrors(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, s := range []string{
		"",
		"0x1234",
		"0x52908400098527886e0f7030069857d2e4169ee7ff",
		"0x52908400098527886e0f7030069857d2e4169eez",
		"2",
		"TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5D0",
	} {
		_, err := ParseAddress(s)
		tt.MustAssert(err != nil, s)
		var perr *ParseError
		tt.MustAssert(errors.As(err, &perr), s)
	}
}

func TestChecksum(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, s := range []string{
		eip55Address,
		"0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf",
	} {
		a, err := ParseEVMAddressChecksummed(s)
		tt.MustOK(err)
		b, ok := a.EVM()
		tt.MustAssert(ok)
		tt.MustEqual(s, ChecksumHex(b))
	}

	_, err := ParseEVMAddressChecksummed("0x52908400098527886e0f7030069857d2e4169ee7")
	tt.MustAssert(errors.Is(err, ErrNonCanonical))
	_, err = ParseEVMAddressChecksummed(eip55Address[2:])
	tt.MustOK(err)
}

func TestEVMAddressFromPublicKey(t *testing.T) {
	tt := assert.WrapTB(t)

	// The public key for private key 1 is the secp256k1 generator point.
	var pub [64]byte
	gx := MustParseHash32("0x79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798").Bytes()
	gy := MustParseHash32("0x483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8").Bytes()
	copy(pub[:32], gx[:])
	copy(pub[32:], gy[:])

	a := EVMAddressFromPublicKey(pub)
	tt.MustEqual("0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", a.String())
	tt.MustEqual("0x7e5f4552091a69125d5dfcb7b8c2659029395bdf", a.Hex())
}

func TestAddressKinds(t *testing.T) {
	tt := assert.WrapTB(t)

	var raw [32]byte
	copy(raw[:], MustParseAddress(eip55Address).Bytes())
	evm := MustParseAddress(eip55Address)
	sol := SolanaAddress(raw)

	// Same backing bytes, different kinds.
	tt.MustEqual(evm.Bytes32(), sol.Bytes32())
	tt.MustAssert(!evm.Equal(sol))
	tt.MustAssert(evm.Hash() != sol.Hash())
	tt.MustEqual(-1, evm.Cmp(sol))
	tt.MustEqual(1, sol.Cmp(evm))

	_, ok := sol.EVM()
	tt.MustAssert(!ok)

	_, err := AddressFromSlice(AddressEVM, raw[:])
	tt.MustAssert(errors.Is(err, ErrInvalidLength))
	_, err = AddressFromSlice(AddressKind(9), raw[:])
	tt.MustAssert(errors.Is(err, ErrUnknownAddressKind))
	a, err := AddressFromSlice(AddressSolana, raw[:])
	tt.MustOK(err)
	tt.MustEqual(sol, a)

	tt.MustEqual("evm", AddressEVM.String())
	tt.MustEqual("AddressKind(9)", AddressKind(9).String())
}

func TestAddressBinary(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, a := range []Address{MustParseAddress(eip55Address), MustParseAddress(tokenProgram)} {
		b, err := a.MarshalBinary()
		tt.MustOK(err)
		tt.MustEqual(AddressBinaryLen, len(b))
		tt.MustEqual(byte(a.Kind()), b[0])

		var back Address
		tt.MustOK(back.UnmarshalBinary(b))
		tt.MustEqual(a, back)
	}

	b := MustParseAddress(eip55Address).AppendBinary(nil)
	b[32] = 1
	_, err := AddressFromBinary(b)
	tt.MustAssert(errors.Is(err, ErrNonCanonical))

	b[32], b[0] = 0, 7
	_, err = AddressFromBinary(b)
	tt.MustAssert(errors.Is(err, ErrUnknownAddressKind))

	_, err = AddressFromBinary(b[:32])
	tt.MustAssert(errors.Is(err, ErrInvalidLength))
}

func TestAddressJSON(t *testing.T) {
	tt := assert.WrapTB(t)
	in := []Address{MustParseAddress(eip55Address), MustParseAddress(tokenProgram)}
	bts, err := json.Marshal(in)
	tt.MustOK(err)
	tt.MustEqual(`["`+eip55Address+`","`+tokenProgram+`"]`, string(bts))

	var out []Address
	tt.MustOK(json.Unmarshal(bts, &out))
	tt.MustEqual(in, out)
}

func TestAddressLayout(t *testing.T) {
	tt := assert.WrapTB(t)
	var a Address
	tt.MustEqual(uintptr(40), unsafe.Sizeof(a))
	tt.MustEqual(uintptr(8), unsafe.Offsetof(a.w))

	raw := func(a *Address) []byte {
		return unsafe.Slice((*byte)(unsafe.Pointer(a)), unsafe.Sizeof(*a))
	}
	for _, in := range []string{eip55Address, tokenProgram} {
		x, y := MustParseAddress(in), MustParseAddress(in)
		rx := raw(&x)
		tt.MustEqual(byte(x.Kind()), rx[0])
		tt.MustEqual(make([]byte, 7), rx[1:8])
		tt.MustEqual(rx, raw(&y))
	}
}
