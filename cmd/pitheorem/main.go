// SPDX-License-Identifier: MIT

// Command pitheorem computes the dimensionless Pi terms of physical problems.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/pitheorem/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
