// SPDX-License-Identifier: GPL-3.0-or-later

// Command sctpsmtab inspects the SCTP state machine dispatch tables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sctpsmtab: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sctpsmtab",
		Short: "Inspect the SCTP state machine dispatch tables",
		Long: `sctpsmtab prints which state function handles an event.

Events are identified by category (chunk, timeout, other, primitive),
a category-relative subtype, and the association state.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		dumpCmd(),
		lookupCmd(),
		versionCmd(),
	)

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
