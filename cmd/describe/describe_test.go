package describe

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpudesc/internal/common"
	"cpudesc/internal/report"
)

const cascadeLakeSnapshot = "../../internal/cpuid/testdata/cascadelake.yaml"

func reset() {
	common.FlagInput = ""
	common.FlagFormat = []string{report.FormatTxt}
	flagBrief = false
}

func TestValidateFlags(t *testing.T) {
	defer reset()
	tests := []struct {
		name    string
		formats []string
		input   string
		wantErr bool
	}{
		{"default", []string{report.FormatTxt}, "", false},
		{"all", []string{report.FormatAll}, "", false},
		{"json and xlsx", []string{report.FormatJson, report.FormatXlsx}, cascadeLakeSnapshot, false},
		{"html", []string{"html"}, "", true},
		{"missing input", []string{report.FormatTxt}, "missing.yaml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			common.FlagFormat = tt.formats
			common.FlagInput = tt.input
			err := validateFlags(Cmd, nil)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunBrief(t *testing.T) {
	defer reset()
	common.FlagInput = cascadeLakeSnapshot
	flagBrief = true
	var out bytes.Buffer
	Cmd.SetOut(&out)
	defer Cmd.SetOut(nil)
	require.NoError(t, runCmd(Cmd, nil))
	text := out.String()
	assert.Contains(t, text, "Processor\n=========\n")
	assert.Contains(t, text, "Feature Summary\n===============\n")
	assert.NotContains(t, text, "Feature Words")
	assert.Contains(t, text, "Source:  cascadelake\n")
}

func TestRunFull(t *testing.T) {
	defer reset()
	common.FlagInput = cascadeLakeSnapshot
	var out bytes.Buffer
	Cmd.SetOut(&out)
	defer Cmd.SetOut(nil)
	require.NoError(t, runCmd(Cmd, nil))
	for _, name := range report.DescribeTableNames {
		assert.Contains(t, out.String(), name+"\n")
	}
}
