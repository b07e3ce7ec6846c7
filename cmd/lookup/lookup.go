// Package lookup is a subcommand of the root command. It translates between
// feature indexes and feature names.
package lookup

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cpudesc/internal/common"
	"cpudesc/internal/features"
	"cpudesc/internal/util"
)

const cmdName = "lookup"

var examples = []string{
	fmt.Sprintf("  Name of feature index 101:        $ %s %s 101", common.AppName, cmdName),
	fmt.Sprintf("  Index of a feature name:          $ %s %s avx512f", common.AppName, cmdName),
	fmt.Sprintf("  Names of a range of indexes:      $ %s %s 0x40-0x45,80", common.AppName, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName + " <index|range|name>...",
	Short:         "Translate feature indexes to names and names to indexes",
	Long:          "",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	GroupID:       "primary",
	Args:          cobra.MinimumNArgs(1),
	SilenceErrors: true,
}

func init() {
	Cmd.SetUsageFunc(common.UsageFunc(func() []common.FlagGroup { return nil }))
}

func runCmd(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		if err := lookup(cmd.OutOrStdout(), arg); err != nil {
			return common.ReportError(cmd, err)
		}
	}
	return nil
}

// lookup prints the index and name for a feature name, an index or a list of
// index ranges. Indexes without a feature print as null. The part of a range
// past the name table prints as a single null line.
func lookup(out io.Writer, arg string) error {
	if f, ok := features.Lookup(arg); ok {
		fmt.Fprintf(out, "%-5d %s\n", f, arg)
		return nil
	}
	ranges, err := util.ParseSelectiveIntRange(arg)
	if err != nil {
		return fmt.Errorf("%q is not a feature name or index", arg)
	}
	for _, r := range ranges {
		for idx := r.Start; idx <= min(r.End, features.Count-1); idx++ {
			fmt.Fprintf(out, "%-5d %s\n", idx, features.Name(features.Feature(idx)))
		}
		if r.End < features.Count {
			continue
		}
		tail := max(r.Start, features.Count)
		if tail == r.End {
			fmt.Fprintf(out, "%-5d %s\n", tail, features.NullName)
		} else {
			fmt.Fprintf(out, "%-5s %s\n", fmt.Sprintf("%d-%d", tail, r.End), features.NullName)
		}
	}
	return nil
}
