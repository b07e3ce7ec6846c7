// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package cpuid

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorID(t *testing.T) {
	tests := []struct {
		name   string
		ebx    uint32
		edx    uint32
		ecx    uint32
		vendor string
	}{
		{name: "intel", ebx: 0x756e6547, edx: 0x49656e69, ecx: 0x6c65746e, vendor: "GenuineIntel"},
		{name: "amd", ebx: 0x68747541, edx: 0x69746e65, ecx: 0x444d4163, vendor: "AuthenticAMD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &Static{Leaves: map[Key]Registers{{0, 0}: {EAX: 0xd, EBX: tt.ebx, ECX: tt.ecx, EDX: tt.edx}}}
			assert.Equal(t, tt.vendor, VendorID(q))
			assert.Equal(t, uint32(0xd), MaxLeaf(q))
			ebx, edx, ecx := VendorRegisters(tt.vendor)
			assert.Equal(t, tt.ebx, ebx)
			assert.Equal(t, tt.edx, edx)
			assert.Equal(t, tt.ecx, ecx)
		})
	}
}

func TestStaticMissingLeafIsZero(t *testing.T) {
	q := &Static{}
	assert.Equal(t, Registers{}, q.CPUID(0x24, 0))
	assert.Zero(t, q.XGETBV(0))
}

func TestLoadReplay(t *testing.T) {
	q, err := LoadReplay(filepath.Join("testdata", "cascadelake.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "GenuineIntel", VendorID(q))
	assert.Equal(t, uint32(0x00050657), q.CPUID(LeafSignature, 0).EAX)
	assert.Equal(t, uint32(0xd39ffffb), q.CPUID(LeafExtendedFeatures, 0).EBX)
	assert.Equal(t, uint64(0x2e7), q.XGETBV(0))
}

func TestLoadReplayErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		contains string
	}{
		{name: "missing file", file: "nope.yaml", contains: "failed to read snapshot"},
		{name: "duplicate leaf", file: "duplicate.yaml", contains: "duplicate leaf"},
		{name: "value too wide", file: "badvalue.yaml", contains: "invalid register value"},
		{name: "unknown field", file: "unknownfield.yaml", contains: "failed to parse snapshot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadReplay(filepath.Join("testdata", tt.file))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestRecorderRoundTrip(t *testing.T) {
	src, err := LoadReplay(filepath.Join("testdata", "cascadelake.yaml"))
	require.NoError(t, err)

	rec := NewRecorder(src)
	rec.CPUID(LeafSignature, 0)
	rec.CPUID(LeafVendor, 0)
	rec.CPUID(LeafSignature, 0)
	rec.XGETBV(0)

	snap := rec.Snapshot("test")
	require.Len(t, snap.Leaves, 2)
	assert.Equal(t, "0x00000000", snap.Leaves[0].Leaf, "leaves are sorted")
	assert.Equal(t, "0x00000001", snap.Leaves[1].Leaf)
	require.Len(t, snap.XCR, 1)
	assert.Equal(t, "0x00000000000002e7", snap.XCR[0].Value)

	path := filepath.Join(t.TempDir(), "snap.yaml")
	require.NoError(t, snap.Save(path))
	replayed, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, src.CPUID(LeafVendor, 0), replayed.CPUID(LeafVendor, 0))
	assert.Equal(t, src.CPUID(LeafSignature, 0), replayed.CPUID(LeafSignature, 0))
	assert.Equal(t, src.XGETBV(0), replayed.XGETBV(0))
	assert.Equal(t, Registers{}, replayed.CPUID(LeafExtendedFeatures, 0), "unrecorded leaf")
}

type unsupportedQuerier struct{ Static }

func (unsupportedQuerier) Supported() bool { return false }

func TestRecorderSupported(t *testing.T) {
	assert.True(t, NewRecorder(&Static{}).Supported())
	assert.False(t, NewRecorder(&unsupportedQuerier{}).Supported())
	assert.Equal(t, Live{}.Supported(), NewRecorder(Live{}).Supported())
}

func TestLiveIsIdempotent(t *testing.T) {
	var q Live
	if !q.Supported() {
		t.Skip("identification instruction not available in this build")
	}
	assert.Equal(t, q.CPUID(LeafVendor, 0), q.CPUID(LeafVendor, 0))
	assert.Len(t, VendorID(q), 12)
	assert.NotZero(t, q.CPUID(LeafSignature, 0).EAX)
}
