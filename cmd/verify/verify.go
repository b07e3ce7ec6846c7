// Package verify is a subcommand of the root command. It compares the decoded
// host descriptor with other x86 feature detection libraries.
package verify

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"cpudesc/internal/common"
	"cpudesc/internal/cpuid"
	"cpudesc/internal/crosscheck"
	"cpudesc/internal/procdesc"
)

const cmdName = "verify"

var examples = []string{
	fmt.Sprintf("  Cross-check this processor:  $ %s %s", common.AppName, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Cross-check the decoded features against other detection libraries",
	Long:          "",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	GroupID:       "other",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
}

// ErrMismatch is returned when any reference disagrees with the decoded descriptor.
var ErrMismatch = errors.New("decoded descriptor disagrees with a reference library")

var (
	hostQuerier cpuid.Querier = cpuid.Live{}
	references                = crosscheck.HostReferences
)

func init() {
	Cmd.SetUsageFunc(common.UsageFunc(func() []common.FlagGroup { return nil }))
}

func runCmd(cmd *cobra.Command, args []string) error {
	d, err := procdesc.Describe(hostQuerier)
	if err != nil {
		return common.ReportError(cmd, fmt.Errorf("failed to describe processor: %w", err))
	}
	refs := references()
	mismatches := crosscheck.Compare(procdesc.Identify(hostQuerier), d, refs...)
	out := cmd.OutOrStdout()
	sources := make([]string, 0, len(refs))
	for _, ref := range refs {
		sources = append(sources, ref.Source)
	}
	if len(mismatches) == 0 {
		fmt.Fprintf(out, "No mismatches against %s\n", strings.Join(sources, ", "))
		return nil
	}
	for _, m := range mismatches {
		slog.Warn("cross-check mismatch", slog.String("source", m.Source), slog.String("item", m.Item), slog.String("want", m.Want), slog.String("got", m.Got))
		fmt.Fprintln(out, m.String())
	}
	cmd.SilenceUsage = true
	return fmt.Errorf("%w: %d mismatches", ErrMismatch, len(mismatches))
}
