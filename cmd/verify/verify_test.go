package verify

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpudesc/internal/cpuid"
	"cpudesc/internal/crosscheck"
	"cpudesc/internal/features"
)

func useReplay(t *testing.T, refs ...crosscheck.Reference) *bytes.Buffer {
	t.Helper()
	replay, err := cpuid.LoadReplay("../../internal/cpuid/testdata/cascadelake.yaml")
	require.NoError(t, err)
	savedQuerier, savedReferences := hostQuerier, references
	hostQuerier = replay
	references = func() []crosscheck.Reference { return refs }
	var out bytes.Buffer
	Cmd.SetOut(&out)
	t.Cleanup(func() {
		hostQuerier, references = savedQuerier, savedReferences
		Cmd.SetOut(nil)
	})
	return &out
}

func TestRunAgreement(t *testing.T) {
	out := useReplay(t, crosscheck.Reference{
		Source:      "fixture",
		HasIdentity: true,
		VendorID:    "GenuineIntel",
		Family:      6,
		Model:       0x55,
		Flags:       map[features.Feature]bool{features.SSE2: true, features.SGX: false},
	})
	require.NoError(t, runCmd(Cmd, nil))
	assert.Equal(t, "No mismatches against fixture\n", out.String())
}

func TestRunMismatch(t *testing.T) {
	out := useReplay(t, crosscheck.Reference{
		Source: "fixture",
		Flags:  map[features.Feature]bool{features.APX: true},
	})
	err := runCmd(Cmd, nil)
	assert.ErrorIs(t, err, ErrMismatch)
	assert.Equal(t, "fixture: apx: reference reports true, decoded false\n", out.String())
}
