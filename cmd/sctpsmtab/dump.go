// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bassosimone/sctpsm"
	"github.com/spf13/cobra"
)

func dumpCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the dispatch tables",
		Long: `Print the dispatch table for a category, or for all of them, as a
grid with one row per subtype and one column per state.

Examples:
  sctpsmtab dump                     # All tables
  sctpsmtab dump --category timeout  # Only the timeout table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := sctpsm.Categories()
			if category != "all" {
				parsed, err := sctpsm.ParseCategory(category)
				if err != nil {
					return err
				}
				categories = []sctpsm.EventCategory{parsed}
			}
			for idx, c := range categories {
				if idx > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err := dumpTable(cmd.OutOrStdout(), c); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "all", "Category to print (chunk, timeout, other, primitive, all)")

	return cmd
}

// dumpSubtypes returns the subtypes printed for a category. For chunks
// these are the known chunk types plus one unknown code.
func dumpSubtypes(category sctpsm.EventCategory) []uint32 {
	var out []uint32
	if category == sctpsm.CategoryChunk {
		for _, ct := range sctpsm.KnownChunkTypes() {
			out = append(out, uint32(ct))
		}
		return append(out, 0x3f)
	}
	maxSubtype, _ := sctpsm.MaxSubtype(category)
	for subtype := uint32(0); subtype <= maxSubtype; subtype++ {
		out = append(out, subtype)
	}
	return out
}

func dumpTable(w io.Writer, category sctpsm.EventCategory) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{strings.ToUpper(category.String())}
	for _, state := range sctpsm.States() {
		header = append(header, state.String())
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, subtype := range dumpSubtypes(category) {
		line := []string{sctpsm.SubtypeName(category, subtype)}
		for _, state := range sctpsm.States() {
			line = append(line, sctpsm.Lookup(category, subtype, state).Name())
		}
		fmt.Fprintln(tw, strings.Join(line, "\t"))
	}
	return tw.Flush()
}
