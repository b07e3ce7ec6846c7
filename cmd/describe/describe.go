// Package describe is a subcommand of the root command. It renders the processor
// descriptor as a report.
package describe

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cpudesc/internal/common"
	"cpudesc/internal/report"
	"cpudesc/internal/util"
)

const cmdName = "describe"

var examples = []string{
	fmt.Sprintf("  Describe this processor:                  $ %s %s", common.AppName, cmdName),
	fmt.Sprintf("  Only the processor and feature summary:   $ %s %s --brief", common.AppName, cmdName),
	fmt.Sprintf("  Write every report format:                $ %s %s --format all", common.AppName, cmdName),
	fmt.Sprintf("  Describe a recorded processor:            $ %s %s --input host.yaml", common.AppName, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Identify the processor and decode its feature bitmap",
	Long:          "",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	PreRunE:       validateFlags,
	GroupID:       "primary",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
}

var (
	flagBrief bool
)

const (
	flagBriefName = "brief"
)

// briefTableNames are the tables shown with --brief.
var briefTableNames = []string{
	report.ProcessorTableName,
	report.FeatureSummaryTableName,
}

func init() {
	Cmd.Flags().StringSliceVar(&common.FlagFormat, common.FlagFormatName, []string{report.FormatTxt}, "")
	Cmd.Flags().BoolVar(&flagBrief, flagBriefName, false, "")
	common.AddInputFlag(Cmd)

	Cmd.SetUsageFunc(common.UsageFunc(getFlagGroups))
}

func formatOptions() []string {
	return append([]string{report.FormatAll}, report.FormatOptions...)
}

func getFlagGroups() []common.FlagGroup {
	var groups []common.FlagGroup
	flags := []common.Flag{
		{
			Name: common.FlagFormatName,
			Help: fmt.Sprintf("choose output format(s) from: %s", strings.Join(formatOptions(), ", ")),
		},
		{
			Name: flagBriefName,
			Help: "show only the processor and feature summary tables",
		},
	}
	groups = append(groups, common.FlagGroup{
		GroupName: "Report Options",
		Flags:     flags,
	})
	groups = append(groups, common.FlagGroup{
		GroupName: "Input Options",
		Flags:     []common.Flag{common.GetInputFlag()},
	})
	return groups
}

func validateFlags(cmd *cobra.Command, args []string) error {
	var formats []string
	for _, format := range common.FlagFormat {
		if !slices.Contains(formatOptions(), format) {
			return common.FlagValidationError(cmd, fmt.Sprintf("format options are: %s", strings.Join(formatOptions(), ", ")))
		}
		formats = util.UniqueAppend(formats, format)
	}
	common.FlagFormat = formats
	return common.ValidateInputFlag(cmd)
}

func runCmd(cmd *cobra.Command, args []string) error {
	// wrap wide tables to the terminal
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
			report.TextWidth = width
		}
	}
	tableNames := report.DescribeTableNames
	if flagBrief {
		tableNames = briefTableNames
	}
	reportingCommand := common.ReportingCommand{
		Cmd:            cmd,
		ReportNamePost: cmdName,
		TableNames:     tableNames,
		Formats:        common.FlagFormat,
	}
	return reportingCommand.Run()
}
