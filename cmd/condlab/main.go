// Command condlab solves a set of 2×2 linear systems with PALU and with
// Gram–Schmidt QR and prints the solutions and relative errors side by side.
//
// Usage:
//
//	condlab [-systems file.json] [-cond] [-platform] [-watch] [-version]
//
// Without -systems the three built-in reference systems are used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/condlab/internal/platform"
	"github.com/katalvlaran/condlab/internal/watch"
	"github.com/katalvlaran/condlab/report"
	"github.com/katalvlaran/condlab/systems"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "0.1.0"

// errUsage marks flag combinations that cannot run.
var errUsage = errors.New("usage error")

type config struct {
	systemsPath  string
	showCond     bool
	showPlatform bool
	watch        bool
	showVersion  bool
}

func main() {
	logger := log.New(os.Stderr, "condlab: ", 0)

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logger.Print(err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Print(err)
		stop()
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("condlab", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.systemsPath, "systems", "", "JSON file with systems to solve (default: built-in reference systems)")
	fs.BoolVar(&cfg.showCond, "cond", false, "print the 1-norm condition number of each matrix")
	fs.BoolVar(&cfg.showPlatform, "platform", false, "print floating-point capabilities of this CPU")
	fs.BoolVar(&cfg.watch, "watch", false, "re-run whenever the -systems file changes")
	fs.BoolVar(&cfg.showVersion, "version", false, "show version information")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	if cfg.watch && cfg.systemsPath == "" {
		return cfg, fmt.Errorf("%w: -watch requires -systems", errUsage)
	}

	return cfg, nil
}

func run(ctx context.Context, cfg config, stdout io.Writer, logger *log.Logger) error {
	if cfg.showVersion {
		fmt.Fprintf(stdout, "condlab %s\n", version)
		return nil
	}
	if cfg.showPlatform {
		fmt.Fprintf(stdout, "Piattaforma: %s\n\n", platform.Detect())
	}

	rp := report.New(stdout, logger, report.Options{ShowCond: cfg.showCond})
	if err := solveOnce(cfg, rp); err != nil {
		if !cfg.watch {
			return err
		}
		logger.Print(err)
	}
	if !cfg.watch {
		return nil
	}

	return watchLoop(ctx, cfg, rp, logger)
}

func solveOnce(cfg config, rp *report.Reporter) error {
	ss := systems.Reference()
	if cfg.systemsPath != "" {
		var err error
		if ss, err = systems.LoadFile(cfg.systemsPath); err != nil {
			return err
		}
	}

	return rp.Write(report.Run(ss))
}

// watchLoop re-solves on every change until ctx is cancelled. Load errors
// are logged and the previous output stays on screen.
func watchLoop(ctx context.Context, cfg config, rp *report.Reporter, logger *log.Logger) error {
	w, err := watch.New(cfg.systemsPath)
	if err != nil {
		return fmt.Errorf("watch %s: %w", cfg.systemsPath, err)
	}
	defer w.Close()
	go w.Run(ctx)

	logger.Printf("watching %s", cfg.systemsPath)
	for {
		select {
		case <-ctx.Done():
			return nil
		case err = <-w.Errors():
			logger.Printf("watch: %v", err)
		case <-w.Changes():
			if err = solveOnce(cfg, rp); err != nil {
				logger.Print(err)
			}
		}
	}
}
