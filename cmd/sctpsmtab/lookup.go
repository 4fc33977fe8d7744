// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"log/slog"

	"github.com/bassosimone/sctpsm"
	"github.com/spf13/cobra"
)

func lookupCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "lookup <category> <subtype> <state>",
		Short: "Print the handler for a single event",
		Long: `Print the handler selected for an event.

The subtype is either a name (e.g. COOKIE_ECHO, HEARTBEAT) or a number
(e.g. 10, 0xc1). Numbers are not range checked: an out of range value
prints "bug" and logs the diagnostic on stderr.

Examples:
  sctpsmtab lookup chunk COOKIE_ECHO CLOSED
  sctpsmtab lookup timeout HEARTBEAT ESTABLISHED
  sctpsmtab lookup primitive 42 ESTABLISHED`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := sctpsm.ParseCategory(args[0])
			if err != nil {
				return err
			}
			subtype, err := sctpsm.ParseSubtype(category, args[1])
			if err != nil {
				return err
			}
			state, err := sctpsm.ParseState(args[2])
			if err != nil {
				return err
			}

			var logger sctpsm.SLogger = sctpsm.DefaultSLogger()
			if !quiet {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			}
			d := sctpsm.NewDispatcher(sctpsm.NewConfig(), logger)

			fmt.Fprintln(cmd.OutOrStdout(), d.Lookup(category, subtype, state).Name())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not log diagnostics")

	return cmd
}
