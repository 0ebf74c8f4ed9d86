package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/alexadamm/s2p-go/pkg/token/algorithms"
	"github.com/alexadamm/s2p-go/pkg/version"
)

func newVersionCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout(), verbose)
		},
	}

	cmd.Flags().BoolVar(&verbose, "verbose", false, "If enabled, displays the additional information about this build.")

	return cmd
}

func printVersion(w io.Writer, verbose bool) {
	fmt.Fprintf(w, "s2p version: %s\n", version.S2PVersion)
	if verbose {
		fmt.Fprintf(w, "  commit: %s\n", version.Commit)
		fmt.Fprintf(w, "  built: %s\n", version.BuildDate)
		fmt.Fprintf(w, "  go: %s\n", runtime.Version())
		fmt.Fprintf(w, "  algorithms: %v\n", algorithms.List())
	}
}
