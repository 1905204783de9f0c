// SPDX-License-Identifier: MIT
// Package: sigmakit/cmd/sigmactl
//
// main.go — sigmactl entry point.

package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/sigmakit/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sigmactl:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
