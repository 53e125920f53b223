// Command binclock shows the local time as a binary-coded-decimal clock.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/binclock/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
