// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/beevik/ntp"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/stakemint/stakemint/genesis"
	"github.com/stakemint/stakemint/log"
	"github.com/stakemint/stakemint/lvldb"
)

func initLogger(ctx *cli.Context) {
	level := log.VerbosityToLevel(ctx.Int(verbosityFlag.Name))
	useColor := isatty.IsTerminal(os.Stderr.Fd())
	log.SetRootHandler(log.NewTerminalHandler(os.Stderr, level, useColor))
}

// checkClockOffset warns when the local clock drifts away from NTP.
// Reward periods are measured in wall-clock seconds, so a skewed clock
// pays too early or too late.
func checkClockOffset() {
	resp, err := ntp.Query("pool.ntp.org")
	if err != nil {
		logger.Debug("failed to access NTP", "err", err)
		return
	}
	if resp.ClockOffset > time.Second || resp.ClockOffset < -time.Second {
		logger.Warn("clock offset detected", "offset", resp.ClockOffset)
	}
}

func loadGenesis(ctx *cli.Context) (*genesis.Config, error) {
	path := ctx.String(genesisFlag.Name)
	if path == "" {
		return nil, errors.New("--genesis is required")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open genesis")
	}
	defer file.Close()
	return genesis.Load(file)
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".stakemint")
	}
	return ""
}

func openMainDB(ctx *cli.Context, network string) (*lvldb.LevelDB, error) {
	if ctx.Bool(memFlag.Name) {
		return lvldb.NewMem()
	}
	dir := filepath.Join(ctx.String(dataDirFlag.Name), network)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrap(err, "create data dir")
	}
	db, err := lvldb.New(filepath.Join(dir, "main.db"), lvldb.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "open main database")
	}
	return db, nil
}

func startAPIServer(ctx *cli.Context, handler http.Handler) (*http.Server, string, error) {
	addr := ctx.String(apiAddrFlag.Name)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, "", errors.Wrapf(err, "listen API addr [%v]", addr)
	}
	srv := &http.Server{Handler: handler}
	go func() {
		if err := srv.Serve(listener); err != http.ErrServerClosed {
			logger.Error("API server stopped", "err", err)
		}
	}()
	return srv, "http://" + listener.Addr().String() + "/", nil
}

func handleExitSignal() <-chan os.Signal {
	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt, syscall.SIGTERM)
	return exit
}

func printStartupMessage(config *genesis.Config, apiURL string) {
	fmt.Printf(`Starting %v
    Network     [ %v ]
    Namespace   [ %v ]
    Mint        [ %v ]
    API portal  [ %v ]
`,
		"stakemint "+fullVersion(),
		config.Name,
		config.Namespace(),
		config.Mint(),
		apiURL)
}
