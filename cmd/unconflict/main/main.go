package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/unconflict/cmd/unconflict"
	"github.com/arthur-debert/unconflict/pkg/style"
)

func main() {
	rootCmd := unconflict.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Render("Error", unconflict.ErrorMessage(err)))

		if unconflict.IsUsageError(err) {
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, unconflict.MsgUsage)
		}

		os.Exit(unconflict.ExitCode(err))
	}
}
