package common

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpudesc/internal/cpuid"
	"cpudesc/internal/cpus"
	"cpudesc/internal/report"
)

const cascadeLakeSnapshot = "../cpuid/testdata/cascadelake.yaml"

func TestGetQuerier(t *testing.T) {
	q, name, err := GetQuerier("")
	require.NoError(t, err)
	assert.Equal(t, cpuid.Live{}, q)
	assert.Equal(t, HostSourceName, name)

	q, name, err = GetQuerier(cascadeLakeSnapshot)
	require.NoError(t, err)
	assert.IsType(t, &cpuid.Static{}, q)
	assert.Equal(t, "cascadelake", name)

	q, _, err = GetQuerier(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Nil(t, q)
}

func TestGetSource(t *testing.T) {
	source, name, err := GetSource(cascadeLakeSnapshot)
	require.NoError(t, err)
	assert.Equal(t, "cascadelake", name)
	assert.Equal(t, cpus.IntelCascadeLake, source.Descriptor.Processor)
	assert.Equal(t, "GenuineIntel", source.Identification.VendorID)
}

// newCommand returns a subcommand whose parent carries appContext, the way the
// root command sets it up.
func newCommand(appContext AppContext) (*cobra.Command, *bytes.Buffer) {
	parent := &cobra.Command{Use: "cpudesc"}
	child := &cobra.Command{Use: "describe"}
	parent.AddCommand(child)
	parent.SetContext(context.WithValue(context.Background(), AppContext{}, appContext))
	var out bytes.Buffer
	child.SetOut(&out)
	return child, &out
}

func TestGetAppContext(t *testing.T) {
	cmd, _ := newCommand(AppContext{Version: "1.2.3"})
	assert.Equal(t, "1.2.3", GetAppContext(cmd).Version)
	assert.Equal(t, AppContext{}, GetAppContext(&cobra.Command{}))
}

func TestReportingCommandToStdout(t *testing.T) {
	FlagInput = cascadeLakeSnapshot
	defer func() { FlagInput = "" }()
	unused := filepath.Join(t.TempDir(), "unused")
	cmd, out := newCommand(AppContext{Version: "1.2.3", OutputDir: unused})
	rc := ReportingCommand{
		Cmd:        cmd,
		TableNames: []string{report.ProcessorTableName},
		Formats:    []string{report.FormatTxt},
	}
	require.NoError(t, rc.Run())
	assert.Contains(t, out.String(), "Processor\n=========\n")
	assert.Contains(t, out.String(), "Version: 1.2.3\n")
	assert.Contains(t, out.String(), "Source:  cascadelake\n")
	_, err := os.Stat(unused)
	assert.True(t, os.IsNotExist(err))
}

func TestReportingCommandToFiles(t *testing.T) {
	FlagInput = cascadeLakeSnapshot
	defer func() { FlagInput = "" }()
	outputDir := filepath.Join(t.TempDir(), "reports")
	cmd, out := newCommand(AppContext{OutputDir: outputDir, OutputDirFlag: true})
	rc := ReportingCommand{
		Cmd:            cmd,
		ReportNamePost: "describe",
		TableNames:     report.DescribeTableNames,
		Formats:        []string{report.FormatAll},
	}
	require.NoError(t, rc.Run())
	assert.Contains(t, out.String(), "Report files:\n")
	for _, ext := range []string{".txt", ".json", ".xlsx"} {
		info, err := os.Stat(filepath.Join(outputDir, "cascadelake_describe"+ext))
		require.NoError(t, err, ext)
		assert.Positive(t, info.Size(), ext)
	}
}

func TestReportingCommandBadInput(t *testing.T) {
	FlagInput = filepath.Join(t.TempDir(), "missing.yaml")
	defer func() { FlagInput = "" }()
	cmd, _ := newCommand(AppContext{})
	rc := ReportingCommand{Cmd: cmd, TableNames: report.DescribeTableNames, Formats: []string{report.FormatTxt}}
	assert.Error(t, rc.Run())
	assert.True(t, cmd.SilenceUsage)
}

func TestValidateInputFlag(t *testing.T) {
	defer func() { FlagInput = "" }()
	cmd, _ := newCommand(AppContext{})
	FlagInput = ""
	assert.NoError(t, ValidateInputFlag(cmd))
	FlagInput = cascadeLakeSnapshot
	assert.NoError(t, ValidateInputFlag(cmd))
	FlagInput = filepath.Join(t.TempDir(), "missing.yaml")
	assert.Error(t, ValidateInputFlag(cmd))
	FlagInput = t.TempDir()
	assert.Error(t, ValidateInputFlag(cmd))
}

func TestWriteReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, CreateOutputDir(dir))
	path := filepath.Join(dir, "r.txt")
	require.NoError(t, WriteReport([]byte("ok"), path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
	assert.Error(t, WriteReport([]byte("ok"), filepath.Join(dir, "missing", "r.txt")))
}
