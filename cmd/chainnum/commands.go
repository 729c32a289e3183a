package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/shabbyrobe/go-chainnum"
	"gopkg.in/urfave/cli.v1"
)

var errMissingArg = errors.New("missing argument")

func firstArg(ctx *cli.Context) (string, error) {
	if ctx.NArg() < 1 {
		return "", fmt.Errorf("%s: %w, usage: %s %s", ctx.Command.Name, errMissingArg, ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	return ctx.Args().First(), nil
}

func outputFormat(ctx *cli.Context) (chainnum.Format, error) {
	return chainnum.ParseFormat(ctx.String("format"))
}

var commandKeccak = cli.Command{
	Name:      "keccak",
	Usage:     "Keccak-256 of the argument; hex input with 0x is decoded first",
	ArgsUsage: "<text|0xhex>",
	Action:    keccakCmd,
}

func keccakCmd(ctx *cli.Context) error {
	in, err := firstArg(ctx)
	if err != nil {
		return err
	}
	data := []byte(in)
	if strings.HasPrefix(in, "0x") || strings.HasPrefix(in, "0X") {
		if data, err = hex.DecodeString(in[2:]); err != nil {
			return err
		}
	}
	logger.Debug("hashing", "bytes", len(data))
	fmt.Fprintln(ctx.App.Writer, chainnum.Keccak256(data))
	return nil
}

var commandSelector = cli.Command{
	Name:      "selector",
	Usage:     "4-byte function selector of a canonical signature",
	ArgsUsage: "<signature>",
	Action:    selectorCmd,
}

func selectorCmd(ctx *cli.Context) error {
	sig, err := firstArg(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, chainnum.SelectorFromSignature(sig))
	return nil
}

var commandChecksum = cli.Command{
	Name:      "checksum",
	Usage:     "EIP-55 form of an EVM address",
	ArgsUsage: "<address>",
	Action:    checksumCmd,
}

func checksumCmd(ctx *cli.Context) error {
	in, err := firstArg(ctx)
	if err != nil {
		return err
	}
	addr, err := chainnum.ParseEVMAddress(in)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, addr)
	return nil
}

var commandU256 = cli.Command{
	Name:      "u256",
	Usage:     "Parse an unsigned 256-bit value and print it in another format",
	ArgsUsage: "<value>",
	Flags:     []cli.Flag{formatFlag},
	Action:    u256Cmd,
}

func u256Cmd(ctx *cli.Context) error {
	in, err := firstArg(ctx)
	if err != nil {
		return err
	}
	f, err := outputFormat(ctx)
	if err != nil {
		return err
	}
	u, err := chainnum.ParseU256(in)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, u.Text(f))
	return nil
}

var commandI256 = cli.Command{
	Name:      "i256",
	Usage:     "Parse a signed 256-bit value and print it in another format; put -- before a negative value",
	ArgsUsage: "[--] <value>",
	Flags:     []cli.Flag{formatFlag},
	Action:    i256Cmd,
}

func i256Cmd(ctx *cli.Context) error {
	in, err := firstArg(ctx)
	if err != nil {
		return err
	}
	f, err := outputFormat(ctx)
	if err != nil {
		return err
	}
	i, err := chainnum.ParseI256(in)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, i.Text(f))
	return nil
}

var commandAddress = cli.Command{
	Name:      "address",
	Usage:     "Detect the kind of an address and print its canonical forms",
	ArgsUsage: "<address>",
	Action:    addressCmd,
}

func addressCmd(ctx *cli.Context) error {
	in, err := firstArg(ctx)
	if err != nil {
		return err
	}
	addr, err := chainnum.ParseAddress(in)
	if err != nil {
		return err
	}
	w := ctx.App.Writer
	fmt.Fprintf(w, "kind:   %s\n", addr.Kind())
	fmt.Fprintf(w, "text:   %s\n", addr)
	fmt.Fprintf(w, "hex:    %s\n", addr.Hex())
	return nil
}

var commandBase58 = cli.Command{
	Name:  "base58",
	Usage: "Base58 encode or decode",
	Subcommands: []cli.Command{
		{
			Name:      "encode",
			Usage:     "encode hex bytes",
			ArgsUsage: "<hex>",
			Action:    base58EncodeCmd,
		},
		{
			Name:      "decode",
			Usage:     "decode to a fixed number of bytes",
			ArgsUsage: "<base58>",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "len", Value: 32, Usage: "decoded length in bytes"},
			},
			Action: base58DecodeCmd,
		},
	},
}

func base58EncodeCmd(ctx *cli.Context) error {
	in, err := firstArg(ctx)
	if err != nil {
		return err
	}
	data, err := hex.DecodeString(strings.TrimPrefix(in, "0x"))
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, chainnum.EncodeBase58(data))
	return nil
}

func base58DecodeCmd(ctx *cli.Context) error {
	in, err := firstArg(ctx)
	if err != nil {
		return err
	}
	n := ctx.Int("len")
	if n <= 0 {
		return fmt.Errorf("base58 decode: invalid length %d", n)
	}
	dst := make([]byte, n)
	if err := chainnum.DecodeBase58(dst, in); err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "0x%x\n", dst)
	return nil
}

var commandDump = cli.Command{
	Name:      "dump",
	Usage:     "Dump the internal representation of a value; put -- before a negative value",
	ArgsUsage: "[--] <value>",
	Flags: []cli.Flag{
		cli.BoolFlag{Name: "signed", Usage: "parse as I256"},
	},
	Action: dumpCmd,
}

func dumpCmd(ctx *cli.Context) error {
	in, err := firstArg(ctx)
	if err != nil {
		return err
	}
	var v interface{}
	if ctx.Bool("signed") {
		v, err = chainnum.ParseI256(in)
	} else {
		v, err = chainnum.ParseU256(in)
	}
	if err != nil {
		return err
	}
	cfg := spew.ConfigState{Indent: "  ", DisableMethods: true}
	cfg.Fdump(ctx.App.Writer, v)
	return nil
}

var commandLimbs = cli.Command{
	Name:      "limbs",
	Usage:     "Print the four 64-bit limbs of an unsigned value as a table",
	ArgsUsage: "<value>",
	Action:    limbsCmd,
}

func limbsCmd(ctx *cli.Context) error {
	in, err := firstArg(ctx)
	if err != nil {
		return err
	}
	u, err := chainnum.ParseU256(in)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetHeader([]string{"Limb", "Bits", "Hex", "Decimal"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	limbs := u.Limbs()
	for i, l := range limbs {
		table.Append([]string{
			strconv.Itoa(i),
			fmt.Sprintf("%d-%d", i*64, i*64+63),
			fmt.Sprintf("0x%016x", l),
			strconv.FormatUint(l, 10),
		})
	}
	table.Render()
	return nil
}
