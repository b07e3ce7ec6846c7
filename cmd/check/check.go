// Package check is a subcommand of the root command. It evaluates a boolean
// expression over the processor's features so scripts can gate on them.
package check

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"cpudesc/internal/common"
	"cpudesc/internal/cpus"
	"cpudesc/internal/features"
	"cpudesc/internal/gate"
)

const cmdName = "check"

var examples = []string{
	fmt.Sprintf("  Require AVX-512 with OS support:      $ %s %s 'avx512f && xsave_avx512'", common.AppName, cmdName),
	fmt.Sprintf("  Feature names with '.' or '/':        $ %s %s '[avx10.1] && [avx10/512]'", common.AppName, cmdName),
	fmt.Sprintf("  Restrict to one processor:            $ %s %s \"processor == 'SPR' || amx_fp16\"", common.AppName, cmdName),
	fmt.Sprintf("  Processor by name:                    $ %s %s \"processor == code('Cascade Lake')\"", common.AppName, cmdName),
	fmt.Sprintf("  Quiet, for scripts:                   $ %s %s --quiet avx2 && ./run-avx2", common.AppName, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName + " <expression>",
	Short:         "Exit with status 0 if the processor satisfies a feature expression, 1 if not",
	Long:          longHelp(),
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	PreRunE:       validateFlags,
	GroupID:       "primary",
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
}

var (
	flagQuiet bool
)

const (
	flagQuietName = "quiet"
)

// ErrNotSatisfied is returned when the expression evaluates to false.
var ErrNotSatisfied = errors.New("expression not satisfied")

// longHelp describes the expression language, including the processor codes
// that the processor variable takes.
func longHelp() string {
	var codes []string
	for _, p := range cpus.Processors() {
		codes = append(codes, fmt.Sprintf("  %-6s %s", p.Code(), p))
	}
	return fmt.Sprintf(`Evaluate an expression over the processor's feature names. Operators are &&, || and !.
Names containing '.' or '/' must be bracketed, e.g., [avx10.1]. The variable processor holds
the processor code and vendor holds the vendor name. code('<name>') converts a processor name
to its code. OS support for extended register state is tested with %s.

Processor codes:
%s`, strings.Join(features.StateAliases(), ", "), strings.Join(codes, "\n"))
}

func init() {
	Cmd.Flags().BoolVar(&flagQuiet, flagQuietName, false, "")
	common.AddInputFlag(Cmd)

	Cmd.SetUsageFunc(common.UsageFunc(getFlagGroups))
}

func getFlagGroups() []common.FlagGroup {
	return []common.FlagGroup{
		{
			GroupName: "Options",
			Flags: []common.Flag{
				{Name: flagQuietName, Help: "print nothing, report the result only through the exit status"},
			},
		},
		{
			GroupName: "Input Options",
			Flags:     []common.Flag{common.GetInputFlag()},
		},
	}
}

func validateFlags(cmd *cobra.Command, args []string) error {
	return common.ValidateInputFlag(cmd)
}

func runCmd(cmd *cobra.Command, args []string) error {
	expr, err := gate.Compile(args[0])
	if err != nil {
		return common.ReportError(cmd, err)
	}
	source, _, err := common.GetSource(common.FlagInput)
	if err != nil {
		return common.ReportError(cmd, fmt.Errorf("failed to describe processor: %w", err))
	}
	ok, err := expr.Evaluate(source.Descriptor)
	if err != nil {
		return common.ReportError(cmd, err)
	}
	slog.Info("expression checked", slog.String("expression", expr.String()), slog.Bool("result", ok))
	if !flagQuiet {
		fmt.Fprintln(cmd.OutOrStdout(), ok)
	}
	if !ok {
		cmd.SilenceUsage = true
		return ErrNotSatisfied
	}
	return nil
}
