// SPDX-License-Identifier: MIT

// Command pvmodule computes and plots photovoltaic module curves under
// partial shading.
package main

import (
	"io"
	"log/slog"
	"os"
)

func main() {
	// minimal logger until the root command reads --verbose
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		slog.Error("pvmodule failed", "err", err)
		os.Exit(1)
	}
}

// run executes the command tree with the given arguments.
func run(out, errOut io.Writer, args []string) error {
	root := newRootCmd(out, errOut)
	root.SetArgs(args)
	return root.Execute()
}
