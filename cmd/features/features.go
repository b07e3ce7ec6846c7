// Package features is a subcommand of the root command. It lists the features the
// processor reports and compares feature sets between processors.
package features

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/cobra"

	"cpudesc/internal/common"
	"cpudesc/internal/features"
	"cpudesc/internal/util"
)

const cmdName = "features"

var examples = []string{
	fmt.Sprintf("  List the features this processor reports:   $ %s %s", common.AppName, cmdName),
	fmt.Sprintf("  Show every slot, including reserved ones:   $ %s %s --all", common.AppName, cmdName),
	fmt.Sprintf("  Compare this processor with a recorded one: $ %s %s --compare old.yaml", common.AppName, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "List the feature names the processor reports",
	Long:          "",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	PreRunE:       validateFlags,
	GroupID:       "primary",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
}

var (
	flagAll     bool
	flagCompare string
)

const (
	flagAllName     = "all"
	flagCompareName = "compare"
)

func init() {
	Cmd.Flags().BoolVar(&flagAll, flagAllName, false, "")
	Cmd.Flags().StringVar(&flagCompare, flagCompareName, "", "")
	common.AddInputFlag(Cmd)
	Cmd.MarkFlagsMutuallyExclusive(flagAllName, flagCompareName)

	Cmd.SetUsageFunc(common.UsageFunc(getFlagGroups))
}

func getFlagGroups() []common.FlagGroup {
	return []common.FlagGroup{
		{
			GroupName: "Options",
			Flags: []common.Flag{
				{Name: flagAllName, Help: "list every feature slot with its state, reserved slots included"},
				{Name: flagCompareName, Help: "snapshot file of a second processor to compare against"},
			},
		},
		{
			GroupName: "Input Options",
			Flags:     []common.Flag{common.GetInputFlag()},
		},
	}
}

func validateFlags(cmd *cobra.Command, args []string) error {
	if flagCompare != "" {
		exists, err := util.FileExists(flagCompare)
		if err != nil || !exists {
			return common.FlagValidationError(cmd, fmt.Sprintf("comparison file %s does not exist", flagCompare))
		}
	}
	return common.ValidateInputFlag(cmd)
}

func runCmd(cmd *cobra.Command, args []string) error {
	source, sourceName, err := common.GetSource(common.FlagInput)
	if err != nil {
		return common.ReportError(cmd, fmt.Errorf("failed to describe processor: %w", err))
	}
	out := cmd.OutOrStdout()
	switch {
	case flagAll:
		printAll(out, source.Descriptor.Features)
	case flagCompare != "":
		other, otherName, err := common.GetSource(flagCompare)
		if err != nil {
			return common.ReportError(cmd, fmt.Errorf("failed to describe comparison processor: %w", err))
		}
		printComparison(out, sourceName, source.Descriptor.Features.Names(), otherName, other.Descriptor.Features.Names())
	default:
		for _, f := range source.Descriptor.Features.Active() {
			if name := features.Name(f); name != features.NullName {
				fmt.Fprintf(out, "%-5d %s\n", f, name)
			}
		}
	}
	return nil
}

func printAll(out io.Writer, b features.Bitmap) {
	for f := features.Feature(0); f < features.Count; f++ {
		state := "no"
		if b.Has(f) {
			state = "yes"
		}
		fmt.Fprintf(out, "%-5d %-20s %s\n", f, features.Name(f), state)
	}
}

// byIndex orders feature names by their index.
func byIndex(names mapset.Set[string]) []string {
	sorted := names.ToSlice()
	slices.SortFunc(sorted, func(a, b string) int {
		fa, _ := features.Lookup(a)
		fb, _ := features.Lookup(b)
		return cmp.Compare(fa, fb)
	})
	return sorted
}

func printComparison(out io.Writer, name string, names mapset.Set[string], otherName string, otherNames mapset.Set[string]) {
	for _, n := range byIndex(names.Difference(otherNames)) {
		fmt.Fprintf(out, "+ %s\n", n)
	}
	for _, n := range byIndex(otherNames.Difference(names)) {
		fmt.Fprintf(out, "- %s\n", n)
	}
	fmt.Fprintf(out, "%d in common, %d only in %s, %d only in %s\n",
		names.Intersect(otherNames).Cardinality(),
		names.Difference(otherNames).Cardinality(), name,
		otherNames.Difference(names).Cardinality(), otherName)
}
