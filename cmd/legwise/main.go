// Package main provides the entrypoint for the legwise command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/legwise/legwise/internal/cli"
)

// All linker flags are set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(ctx, info, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "legwise:", err)
		stop()
		os.Exit(1)
	}
}
