// Package export is a subcommand of the root command. It publishes the processor
// descriptor as Prometheus metrics, either as a node exporter textfile or over HTTP.
package export

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"cpudesc/internal/common"
	"cpudesc/internal/promexport"
	"cpudesc/internal/util"
)

const cmdName = "export"

var examples = []string{
	fmt.Sprintf("  Write a node exporter textfile:  $ %s %s --textfile /var/lib/node_exporter/cpudesc.prom", common.AppName, cmdName),
	fmt.Sprintf("  Serve metrics over HTTP:         $ %s %s --listen :9101", common.AppName, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Export the processor features as Prometheus metrics",
	Long:          "",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	PreRunE:       validateFlags,
	GroupID:       "primary",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
}

var (
	flagTextfile string
	flagListen   string
)

const (
	flagTextfileName = "textfile"
	flagListenName   = "listen"
)

func init() {
	Cmd.Flags().StringVar(&flagTextfile, flagTextfileName, "", "")
	Cmd.Flags().StringVar(&flagListen, flagListenName, "", "")
	common.AddInputFlag(Cmd)

	Cmd.SetUsageFunc(common.UsageFunc(getFlagGroups))
}

func getFlagGroups() []common.FlagGroup {
	return []common.FlagGroup{
		{
			GroupName: "Output Options",
			Flags: []common.Flag{
				{Name: flagTextfileName, Help: "write metrics to this file in the Prometheus text format"},
				{Name: flagListenName, Help: "serve metrics at /metrics on this address until interrupted"},
			},
		},
		{
			GroupName: "Input Options",
			Flags:     []common.Flag{common.GetInputFlag()},
		},
	}
}

func validateFlags(cmd *cobra.Command, args []string) error {
	if (flagTextfile == "") == (flagListen == "") {
		return common.FlagValidationError(cmd, fmt.Sprintf("specify one of --%s or --%s", flagTextfileName, flagListenName))
	}
	if flagTextfile != "" {
		path, err := util.AbsPath(flagTextfile)
		if err != nil {
			return common.FlagValidationError(cmd, fmt.Sprintf("failed to expand textfile path: %v", err))
		}
		flagTextfile = path
	}
	return common.ValidateInputFlag(cmd)
}

func runCmd(cmd *cobra.Command, args []string) error {
	source, _, err := common.GetSource(common.FlagInput)
	if err != nil {
		return common.ReportError(cmd, fmt.Errorf("failed to describe processor: %w", err))
	}
	d, id := source.Descriptor, source.Identification
	if flagTextfile != "" {
		if err := promexport.WriteTextfile(flagTextfile, d, id); err != nil {
			return common.ReportError(cmd, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Metrics file:\n  %s\n", flagTextfile)
		return nil
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	fmt.Fprintf(cmd.OutOrStdout(), "Serving metrics at http://%s/metrics, press Ctrl+C to stop\n", flagListen)
	if err := promexport.Serve(ctx, flagListen, d, id); err != nil {
		return common.ReportError(cmd, err)
	}
	return nil
}
