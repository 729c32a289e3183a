package main

import (
	"errors"
	"fmt"

	"github.com/shabbyrobe/go-chainnum"
	"github.com/shabbyrobe/go-chainnum/store"
	"gopkg.in/urfave/cli.v1"
)

var (
	dbFlag = cli.StringFlag{
		Name:   "db",
		Usage:  "pebble directory for the balance ledger",
		EnvVar: "CHAINNUM_DB",
	}
	cacheFlag = cli.IntFlag{
		Name:  "cache",
		Value: store.DefaultCacheSize,
		Usage: "number of balances to cache, negative to disable",
	}
	decimalsFlag = cli.UintFlag{
		Name:  "decimals",
		Usage: "token decimals; amounts are read and printed in whole units",
	}
)

var commandBalance = cli.Command{
	Name:  "balance",
	Usage: "Read and update the balance ledger",
	Subcommands: []cli.Command{
		{
			Name:      "get",
			ArgsUsage: "<address>",
			Flags:     []cli.Flag{decimalsFlag, formatFlag},
			Action:    withStore(balanceGet),
		},
		{
			Name:      "set",
			ArgsUsage: "<address> <amount>",
			Flags:     []cli.Flag{decimalsFlag, formatFlag},
			Action:    withStore(balanceSet),
		},
		{
			Name:      "credit",
			ArgsUsage: "<address> <amount>",
			Flags:     []cli.Flag{decimalsFlag, formatFlag},
			Action:    withStore(balanceCredit),
		},
		{
			Name:      "debit",
			ArgsUsage: "<address> <amount>",
			Flags:     []cli.Flag{decimalsFlag, formatFlag},
			Action:    withStore(balanceDebit),
		},
		{
			Name:      "transfer",
			ArgsUsage: "<id> <from> <to> <amount>",
			Flags:     []cli.Flag{decimalsFlag, formatFlag},
			Action:    withStore(balanceTransfer),
		},
		{
			Name:   "list",
			Flags:  []cli.Flag{decimalsFlag, formatFlag},
			Action: withStore(balanceList),
		},
	},
}

func withStore(fn func(*cli.Context, *store.Store) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		dir := ctx.GlobalString(dbFlag.Name)
		if dir == "" {
			return errors.New("balance: --db is required")
		}
		s, err := store.Open(store.Options{
			Dir:       dir,
			CacheSize: ctx.GlobalInt(cacheFlag.Name),
		})
		if err != nil {
			return err
		}
		logger.Debug("opened ledger", "dir", dir)

		err = fn(ctx, s)
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
		return err
	}
}

func args(ctx *cli.Context, n int) ([]string, error) {
	if ctx.NArg() != n {
		return nil, fmt.Errorf("%s: expected %d arguments, usage: %s %s", ctx.Command.Name, n, ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	return ctx.Args(), nil
}

// maxDecimals is the largest --decimals for which one whole unit fits in a U256.
const maxDecimals = 77

func unitDecimals(ctx *cli.Context) (uint8, error) {
	dec := ctx.Uint(decimalsFlag.Name)
	if dec > maxDecimals {
		return 0, fmt.Errorf("--decimals %d: %w, must be at most %d", dec, chainnum.ErrOverflow, maxDecimals)
	}
	return uint8(dec), nil
}

func parseAmount(ctx *cli.Context, s string) (chainnum.U256, error) {
	dec, err := unitDecimals(ctx)
	if err != nil {
		return chainnum.U256{}, err
	}
	if dec > 0 {
		return chainnum.ParseUnits(s, dec)
	}
	return chainnum.ParseU256(s)
}

func formatAmount(ctx *cli.Context, v chainnum.U256) (string, error) {
	dec, err := unitDecimals(ctx)
	if err != nil {
		return "", err
	}
	if dec > 0 {
		return chainnum.FormatUnits(v, dec), nil
	}
	f, err := outputFormat(ctx)
	if err != nil {
		return "", err
	}
	if f == chainnum.FormatDefault {
		f = chainnum.FormatDecimal
	}
	return v.Text(f), nil
}

func printBalance(ctx *cli.Context, addr chainnum.Address, v chainnum.U256) error {
	s, err := formatAmount(ctx, v)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "%s %s\n", addr, s)
	return nil
}

func balanceGet(ctx *cli.Context, s *store.Store) error {
	a, err := args(ctx, 1)
	if err != nil {
		return err
	}
	addr, err := chainnum.ParseAddress(a[0])
	if err != nil {
		return err
	}
	bal, ok, err := s.Balance(addr)
	if err != nil {
		return err
	}
	if !ok {
		logger.Info("unknown account", "address", addr)
	}
	return printBalance(ctx, addr, bal)
}

type updateFunc func(s *store.Store, addr chainnum.Address, amount chainnum.U256) (chainnum.U256, error)

func updateBalance(ctx *cli.Context, s *store.Store, op string, fn updateFunc) error {
	a, err := args(ctx, 2)
	if err != nil {
		return err
	}
	addr, err := chainnum.ParseAddress(a[0])
	if err != nil {
		return err
	}
	amount, err := parseAmount(ctx, a[1])
	if err != nil {
		return err
	}
	bal, err := fn(s, addr, amount)
	if err != nil {
		return err
	}
	logger.Info("balance updated", "op", op, "address", addr, "amount", amount.Text(chainnum.FormatDecimal))
	return printBalance(ctx, addr, bal)
}

func balanceSet(ctx *cli.Context, s *store.Store) error {
	return updateBalance(ctx, s, "set", func(s *store.Store, addr chainnum.Address, v chainnum.U256) (chainnum.U256, error) {
		return v, s.SetBalance(addr, v)
	})
}

func balanceCredit(ctx *cli.Context, s *store.Store) error {
	return updateBalance(ctx, s, "credit", (*store.Store).Credit)
}

func balanceDebit(ctx *cli.Context, s *store.Store) error {
	return updateBalance(ctx, s, "debit", (*store.Store).Debit)
}

func balanceTransfer(ctx *cli.Context, s *store.Store) error {
	a, err := args(ctx, 4)
	if err != nil {
		return err
	}
	id, err := chainnum.ParseHash32(a[0])
	if err != nil {
		return err
	}
	from, err := chainnum.ParseAddress(a[1])
	if err != nil {
		return err
	}
	to, err := chainnum.ParseAddress(a[2])
	if err != nil {
		return err
	}
	amount, err := parseAmount(ctx, a[3])
	if err != nil {
		return err
	}
	if err := s.Transfer(id, from, to, amount); err != nil {
		return err
	}
	logger.Info("transfer applied", "id", id, "from", from, "to", to)
	return nil
}

func balanceList(ctx *cli.Context, s *store.Store) error {
	var perr error
	err := s.ForEach(func(addr chainnum.Address, bal chainnum.U256) bool {
		perr = printBalance(ctx, addr, bal)
		return perr == nil
	})
	if err != nil {
		return err
	}
	return perr
}
