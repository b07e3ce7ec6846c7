package check

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"cpudesc/internal/common"
)

const cascadeLakeSnapshot = "../../internal/cpuid/testdata/cascadelake.yaml"

func TestRunCmd(t *testing.T) {
	common.FlagInput = cascadeLakeSnapshot
	defer func() {
		common.FlagInput = ""
		flagQuiet = false
		Cmd.SetOut(nil)
	}()
	tests := []struct {
		name    string
		expr    string
		quiet   bool
		want    string
		wantErr error
	}{
		{name: "satisfied", expr: "avx512f && xsave_avx512", want: "true\n"},
		{name: "processor code", expr: "processor == 'CLX'", want: "true\n"},
		{name: "processor name", expr: "processor == code('cascade lake')", want: "true\n"},
		{name: "not satisfied", expr: "avx512f && [avx10.1]", want: "false\n", wantErr: ErrNotSatisfied},
		{name: "quiet", expr: "apx", quiet: true, want: "", wantErr: ErrNotSatisfied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagQuiet = tt.quiet
			var out bytes.Buffer
			Cmd.SetOut(&out)
			err := runCmd(Cmd, []string{tt.expr})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunCmdErrors(t *testing.T) {
	common.FlagInput = cascadeLakeSnapshot
	defer func() { common.FlagInput = "" }()
	for _, expr := range []string{"avx512f &&", "avx3", "processor"} {
		err := runCmd(Cmd, []string{expr})
		assert.Error(t, err, expr)
		assert.NotErrorIs(t, err, ErrNotSatisfied, expr)
	}
}

func TestLongHelpListsProcessorCodes(t *testing.T) {
	assert.Contains(t, Cmd.Long, "  SPR    Sapphire Rapids")
	assert.Contains(t, Cmd.Long, "  CLX    Cascade Lake")
	assert.Contains(t, Cmd.Long, "code('<name>')")
	assert.Contains(t, Cmd.Long, "xsave_apx, xsave_avx, xsave_avx512, xsave_sse")
}
