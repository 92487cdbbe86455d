// Package main is the entry point for the vitetags CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/opmodel/vitetags/internal/cmd"
	oerrors "github.com/opmodel/vitetags/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// The command layer may have reported it already.
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		// Flag and argument errors from cobra.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
