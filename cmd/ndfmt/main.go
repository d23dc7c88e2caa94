// Command ndfmt renders Fitch-style natural deduction proofs as LaTeX.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/ndfmt/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// Commands report their own failures; anything else came from cobra
	// (bad flags, wrong argument count).
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}
	os.Exit(exitErr.Code)
}
