package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/unconflict/cmd/unconflict"
	"github.com/arthur-debert/unconflict/internal/version"
)

func main() {
	rootCmd := unconflict.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "UNCONFLICT",
		Section: "1",
		Source:  "unconflict " + version.Version,
		Manual:  "unconflict manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
