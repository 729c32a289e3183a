package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	err := app.Run(append([]string{"chainnum", "--log-level", "error"}, args...))
	return buf.String(), err
}

func TestCommands(t *testing.T) {
	for idx, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"keccak", ""}, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{[]string{"keccak", "abc"}, "0x4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
		{[]string{"selector", "transfer(address,uint256)"}, "0xa9059cbb"},
		{[]string{"checksum", "0x52908400098527886e0f7030069857d2e4169ee7"}, "0x52908400098527886E0F7030069857D2E4169EE7"},
		{[]string{"u256", "--format", "d", "0xff"}, "255"},
		{[]string{"u256", "255"}, "0xff"},
		{[]string{"i256", "--format", "0x", "--", "-255"}, "-0xff"},
		{[]string{"i256", "--", "-255"}, "-255"},
		{[]string{"i256", "--format", "x64", "--", "-1"}, "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"},
		{[]string{"base58", "encode", "0x0000ff"}, "115Q"},
		{[]string{"base58", "decode", "--len", "3", "115Q"}, "0x0000ff"},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := runApp(t, tc.args...)
			tt.MustOK(err)
			tt.MustEqual(tc.out, strings.TrimSpace(out))
		})
	}
}

func TestCommandErrors(t *testing.T) {
	for _, args := range [][]string{
		{"u256"},
		{"u256", "0xg"},
		{"u256", "--format", "q", "1"},
		{"i256", "-255"},
		{"base58", "decode", "0OIl"},
		{"checksum", "0x1234"},
		{"balance", "get", "0x52908400098527886e0f7030069857d2e4169ee7"},
	} {
		_, err := runApp(t, args...)
		assert.WrapTB(t).MustAssert(err != nil, args)
	}
}

func TestLimbs(t *testing.T) {
	tt := assert.WrapTB(t)
	out, err := runApp(t, "limbs", "0x10000000000000000")
	tt.MustOK(err)
	tt.MustAssert(strings.Contains(out, "0x0000000000000001"), out)
	tt.MustAssert(strings.Contains(out, "DECIMAL"), out)
}

func TestDump(t *testing.T) {
	tt := assert.WrapTB(t)
	out, err := runApp(t, "dump", "1")
	tt.MustOK(err)
	tt.MustAssert(strings.Contains(out, "chainnum.U256"), out)
	tt.MustAssert(strings.Contains(out, "lo: (uint64) 1"), out)
}

func TestDumpSigned(t *testing.T) {
	tt := assert.WrapTB(t)
	out, err := runApp(t, "dump", "--signed", "--", "-1")
	tt.MustOK(err)
	tt.MustAssert(strings.Contains(out, "chainnum.I256"), out)
	tt.MustAssert(strings.Contains(out, "lo: (uint64) 18446744073709551615"), out)
}

func TestBalance(t *testing.T) {
	tt := assert.WrapTB(t)
	db := filepath.Join(t.TempDir(), "ledger")
	const alice = "0x52908400098527886E0F7030069857D2E4169EE7"
	const bob = "0x8617E340B3D01FA5F11F306F4090FD50E238070D"

	out, err := runApp(t, "--db", db, "balance", "credit", "--decimals", "18", alice, "1.5")
	tt.MustOK(err)
	tt.MustEqual(alice+" 1.5", strings.TrimSpace(out))

	out, err = runApp(t, "--db", db, "balance", "get", alice)
	tt.MustOK(err)
	tt.MustEqual(alice+" 1500000000000000000", strings.TrimSpace(out))

	// Out of range decimals are rejected before anything is written.
	_, err = runApp(t, "--db", db, "balance", "credit", "--decimals", "274", alice, "1")
	tt.MustAssert(err != nil)
	_, err = runApp(t, "--db", db, "balance", "get", "--decimals", "78", alice)
	tt.MustAssert(err != nil)
	out, err = runApp(t, "--db", db, "balance", "get", alice)
	tt.MustOK(err)
	tt.MustEqual(alice+" 1500000000000000000", strings.TrimSpace(out))

	_, err = runApp(t, "--db", db, "balance", "transfer",
		"0x0000000000000000000000000000000000000000000000000000000000000001",
		alice, bob, "500000000000000000")
	tt.MustOK(err)

	out, err = runApp(t, "--db", db, "balance", "list", "--decimals", "18")
	tt.MustOK(err)
	tt.MustEqual(alice+" 1\n"+bob+" 0.5", strings.TrimSpace(out))

	_, err = runApp(t, "--db", db, "balance", "debit", bob, "500000000000000001")
	tt.MustAssert(err != nil)
}
