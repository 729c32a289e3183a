// Command chainnum converts, hashes and inspects 256-bit values, hashes and
// addresses, and keeps a small pebble-backed balance ledger.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shabbyrobe/go-chainnum/internal/logging"
	"gopkg.in/urfave/cli.v1"
)

var (
	logLevelFlag = cli.StringFlag{
		Name:   "log-level",
		Value:  "info",
		Usage:  "debug, info, warn or error",
		EnvVar: "CHAINNUM_LOG_LEVEL",
	}
	logFormatFlag = cli.StringFlag{
		Name:   "log-format",
		Value:  "text",
		Usage:  "text or json",
		EnvVar: "CHAINNUM_LOG_FORMAT",
	}
	formatFlag = cli.StringFlag{
		Name:  "format, f",
		Usage: "output format token: d, x, X, 0x, 0X, x64, X64, 0x64, 0X64",
	}
)

// logger is replaced in Before once the flags are known.
var logger = slog.Default()

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "chainnum"
	app.Usage = "256-bit integers, hashes and addresses"
	app.HideVersion = true
	app.Flags = []cli.Flag{
		logLevelFlag,
		logFormatFlag,
		dbFlag,
		cacheFlag,
	}
	app.Before = func(ctx *cli.Context) error {
		l, err := logging.New(os.Stderr, logging.Config{
			Level:  ctx.GlobalString(logLevelFlag.Name),
			Format: ctx.GlobalString(logFormatFlag.Name),
		})
		if err != nil {
			return err
		}
		logger = l
		return nil
	}
	app.Commands = []cli.Command{
		commandKeccak,
		commandSelector,
		commandChecksum,
		commandU256,
		commandI256,
		commandAddress,
		commandBase58,
		commandDump,
		commandLimbs,
		commandBalance,
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
