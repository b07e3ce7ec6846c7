// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package cpuid provides access to the x86 CPU identification instruction and the
// extended control register read used alongside it. Decoding lives elsewhere; this
// package only returns raw register words.
package cpuid

import (
	"encoding/binary"
	"errors"
)

// Well known leaves.
const (
	LeafVendor           = 0x0
	LeafSignature        = 0x1
	LeafExtendedFeatures = 0x7
	LeafAVX10            = 0x24
)

// ErrUnsupported is returned when the identification instruction is not available
// in this build.
var ErrUnsupported = errors.New("cpuid: identification instruction not supported on this platform")

// Registers holds the four words returned by one CPUID query.
type Registers struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

// Querier executes identification queries. Implementations must not have side
// effects visible to the caller; repeated queries for the same input return the
// same result.
type Querier interface {
	CPUID(leaf, subleaf uint32) Registers
	XGETBV(index uint32) uint64
}

// VendorID returns the 12 character vendor string, assembled from leaf 0 EBX, EDX
// and ECX in that order.
func VendorID(q Querier) string {
	r := q.CPUID(LeafVendor, 0)
	var b [12]byte
	binary.LittleEndian.PutUint32(b[0:], r.EBX)
	binary.LittleEndian.PutUint32(b[4:], r.EDX)
	binary.LittleEndian.PutUint32(b[8:], r.ECX)
	return string(b[:])
}

// MaxLeaf returns the highest basic leaf the processor reports.
func MaxLeaf(q Querier) uint32 {
	return q.CPUID(LeafVendor, 0).EAX
}

// VendorRegisters is the inverse of VendorID. It is used to build snapshots and
// test fixtures. Strings shorter than 12 bytes are zero padded.
func VendorRegisters(vendor string) (ebx, edx, ecx uint32) {
	var b [12]byte
	copy(b[:], vendor)
	return binary.LittleEndian.Uint32(b[0:]), binary.LittleEndian.Uint32(b[4:]), binary.LittleEndian.Uint32(b[8:])
}
