package lookup

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpudesc/internal/features"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		arg     string
		want    string
		wantErr bool
	}{
		{arg: "avx2", want: "101   avx2\n"},
		{arg: "101", want: "101   avx2\n"},
		{arg: "0x65", want: "101   avx2\n"},
		{arg: "avx10.1", want: "68    avx10.1\n"},
		{arg: "avx10/512", want: "82    avx10/512\n"},
		{arg: "0-1", want: "0     fpu\n1     vme\n"},
		{arg: "224", want: "224   null\n"},
		{arg: "2147483648", want: "2147483648 null\n"},
		{arg: "0xffffffff", want: "4294967295 null\n"},
		{arg: "221-230", want: "221   null\n222   null\n223   null\n224-230 null\n"},
		{arg: "0x100-0xffffffff", want: "256-4294967295 null\n"},
		{arg: "0x100000000", wantErr: true},
		{arg: "null", wantErr: true},
		{arg: "avx3", wantErr: true},
		{arg: "-1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			var out bytes.Buffer
			err := lookup(&out, tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestLookupWideRange(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, lookup(&out, "0-2147483647"))
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, features.Count+1)
	assert.Equal(t, "0     fpu", lines[0])
	assert.Equal(t, "224-2147483647 null", lines[features.Count])
}

func TestRunCmd(t *testing.T) {
	var out bytes.Buffer
	Cmd.SetOut(&out)
	defer Cmd.SetOut(nil)
	require.NoError(t, runCmd(Cmd, []string{"fpu", "apx"}))
	assert.Equal(t, "0     fpu\n213   apx\n", out.String())
	assert.Error(t, runCmd(Cmd, []string{"fpu", "bogus"}))
}
