package export

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpudesc/internal/common"
)

const cascadeLakeSnapshot = "../../internal/cpuid/testdata/cascadelake.yaml"

func reset() {
	flagTextfile = ""
	flagListen = ""
	common.FlagInput = ""
	Cmd.SetOut(nil)
}

func TestValidateFlags(t *testing.T) {
	defer reset()
	tests := []struct {
		name     string
		textfile string
		listen   string
		wantErr  bool
	}{
		{name: "neither", wantErr: true},
		{name: "both", textfile: "m.prom", listen: ":9101", wantErr: true},
		{name: "textfile", textfile: "m.prom"},
		{name: "listen", listen: ":9101"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagTextfile, flagListen = tt.textfile, tt.listen
			err := validateFlags(Cmd, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.textfile != "" {
				assert.True(t, filepath.IsAbs(flagTextfile))
			}
		})
	}
}

func TestRunTextfile(t *testing.T) {
	defer reset()
	common.FlagInput = cascadeLakeSnapshot
	flagTextfile = filepath.Join(t.TempDir(), "cpudesc.prom")
	var out bytes.Buffer
	Cmd.SetOut(&out)
	require.NoError(t, runCmd(Cmd, nil))
	assert.Contains(t, out.String(), flagTextfile)
	content, err := os.ReadFile(flagTextfile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `code="CLX"`)
}

func TestRunBadListenAddress(t *testing.T) {
	defer reset()
	common.FlagInput = cascadeLakeSnapshot
	flagListen = "127.0.0.1:-1"
	Cmd.SetOut(&bytes.Buffer{})
	assert.Error(t, runCmd(Cmd, nil))
}
