// Package snapshot is a subcommand of the root command. It records the
// identification queries made while describing this processor so the result can
// be replayed with --input on any machine.
package snapshot

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"cpudesc/internal/common"
	"cpudesc/internal/cpuid"
	"cpudesc/internal/procdesc"
	"cpudesc/internal/util"
)

const cmdName = "snapshot"

var examples = []string{
	fmt.Sprintf("  Print a snapshot of this processor:  $ %s %s", common.AppName, cmdName),
	fmt.Sprintf("  Save it to a file:                   $ %s %s --file host.yaml", common.AppName, cmdName),
	fmt.Sprintf("  Describe it on another machine:      $ %s describe --input host.yaml", common.AppName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Record this processor's identification data to a YAML snapshot",
	Long:          "",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	PreRunE:       validateFlags,
	GroupID:       "other",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
}

var (
	flagFile    string
	flagComment string
)

const (
	flagFileName    = "file"
	flagCommentName = "comment"
)

// hostQuerier is the processor being recorded.
var hostQuerier cpuid.Querier = cpuid.Live{}

func init() {
	Cmd.Flags().StringVar(&flagFile, flagFileName, "", "")
	Cmd.Flags().StringVar(&flagComment, flagCommentName, "", "")

	Cmd.SetUsageFunc(common.UsageFunc(getFlagGroups))
}

func getFlagGroups() []common.FlagGroup {
	return []common.FlagGroup{
		{
			GroupName: "Options",
			Flags: []common.Flag{
				{Name: flagFileName, Help: "write the snapshot to this file instead of stdout"},
				{Name: flagCommentName, Help: "comment stored in the snapshot, defaults to the processor name and signature"},
			},
		},
	}
}

func validateFlags(cmd *cobra.Command, args []string) error {
	if flagFile != "" {
		path, err := util.AbsPath(flagFile)
		if err != nil {
			return common.FlagValidationError(cmd, fmt.Sprintf("failed to expand snapshot file path: %v", err))
		}
		flagFile = path
	}
	return nil
}

// record describes q through a recorder and returns everything it queried.
func record(q cpuid.Querier, comment string) (cpuid.Snapshot, error) {
	recorder := cpuid.NewRecorder(q)
	d, err := procdesc.Describe(recorder)
	if err != nil {
		return cpuid.Snapshot{}, err
	}
	id := procdesc.Identify(recorder)
	if comment == "" {
		comment = fmt.Sprintf("%s, %s, signature 0x%08x", d.Processor, id.VendorID, id.Signature)
	}
	return recorder.Snapshot(comment), nil
}

func runCmd(cmd *cobra.Command, args []string) error {
	snap, err := record(hostQuerier, flagComment)
	if err != nil {
		return common.ReportError(cmd, errors.Wrap(err, "failed to record processor"))
	}
	slog.Info("snapshot recorded", slog.Int("leaves", len(snap.Leaves)), slog.Int("xcr", len(snap.XCR)))
	if flagFile == "" {
		data, err := snap.Marshal()
		if err != nil {
			return common.ReportError(cmd, errors.Wrap(err, "failed to encode snapshot"))
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := snap.Save(flagFile); err != nil {
		return common.ReportError(cmd, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Snapshot file:\n  %s\n", flagFile)
	return nil
}
