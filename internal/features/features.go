// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package features builds the flat seven-word x86 feature bitmap and maps flat
// feature indexes to canonical names.
package features

import (
	"log/slog"
	"maps"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"cpudesc/internal/cpuid"
)

// Feature is a flat feature index: word*32 + bit.
type Feature uint32

const (
	// Words is the number of 32-bit words in a Bitmap.
	Words = 7
	// Count is the number of addressable feature slots.
	Count = Words * 32
	// NullName is reported for reserved slots and out of range indexes.
	NullName = "null"
)

// Word and Bit split a feature index into its word and bit position.
func (f Feature) Word() int { return int(f / 32) }
func (f Feature) Bit() uint { return uint(f % 32) }

func (f Feature) String() string { return Name(f) }

// Name returns the canonical name of idx. Reserved slots and indexes at or past
// Count report NullName.
func Name(idx Feature) string {
	if idx >= Count {
		return NullName
	}
	return featureNames[idx]
}

var featureIndex = func() map[string]Feature {
	m := make(map[string]Feature, Count)
	for i, name := range featureNames {
		if name == NullName {
			continue
		}
		m[name] = Feature(i)
	}
	return m
}()

// stateAliases name the synthesized XSAVE state slots. The slots stay reserved
// in the name table, so Name reports them as NullName.
var stateAliases = map[string]Feature{
	"xsave_sse":    XSAVESSE,
	"xsave_avx":    XSAVEAVX,
	"xsave_avx512": XSAVEAVX512,
	"xsave_apx":    XSAVEAPX,
}

// StateAliases returns the alias names accepted by Lookup for the synthesized
// XSAVE state slots, sorted.
func StateAliases() []string {
	return slices.Sorted(maps.Keys(stateAliases))
}

// Lookup finds the index of a canonical feature name or a state alias. Reserved
// slots cannot be looked up as "null".
func Lookup(name string) (Feature, bool) {
	if f, ok := featureIndex[name]; ok {
		return f, true
	}
	f, ok := stateAliases[name]
	return f, ok
}

// Named returns every non-reserved feature in index order.
func Named() []Feature {
	out := make([]Feature, 0, len(featureIndex))
	for i := Feature(0); i < Count; i++ {
		if featureNames[i] != NullName {
			out = append(out, i)
		}
	}
	return out
}

// Bitmap holds one bit per Feature.
type Bitmap [Words]uint32

// Has reports whether f is set. Indexes past Count are never set.
func (b Bitmap) Has(f Feature) bool {
	if f >= Count {
		return false
	}
	return b[f.Word()]&(1<<f.Bit()) != 0
}

// Set marks f present. Indexes past Count are ignored.
func (b *Bitmap) Set(f Feature) {
	if f >= Count {
		return
	}
	b[f.Word()] |= 1 << f.Bit()
}

// Active returns the set features in index order.
func (b Bitmap) Active() []Feature {
	var out []Feature
	for i := Feature(0); i < Count; i++ {
		if b.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

// Names returns the names of the set features. Bits set in reserved slots are
// skipped.
func (b Bitmap) Names() mapset.Set[string] {
	names := mapset.NewThreadUnsafeSet[string]()
	for _, f := range b.Active() {
		if name := Name(f); name != NullName {
			names.Add(name)
		}
	}
	return names
}

// leaf 0x24 subleaf 0 EBX layout
const (
	avx10VersionMask   = 0xFF
	avx10VectorLengths = 1<<16 | 1<<17 | 1<<18
)

// XCR0 state components
const (
	xcr0XMM    = 1 << 1
	xcr0YMM    = 1 << 2
	xcr0AVX512 = 0xE0 // opmask, ZMM_Hi256, Hi16_ZMM
	xcr0APX    = 1 << 19

	xcr0SSEState    = xcr0XMM
	xcr0AVXState    = xcr0XMM | xcr0YMM
	xcr0AVX512State = xcr0XMM | xcr0YMM | xcr0AVX512
)

// Build queries q and assembles the feature bitmap. Leaf 7 is only consulted when
// leaf 0 reports it, XCR0 only when the OS enabled XSAVE, and leaf 0x24 only when
// the AVX10 bit is set.
func Build(q cpuid.Querier) Bitmap {
	var b Bitmap
	maxLeaf := cpuid.MaxLeaf(q)

	leaf1 := q.CPUID(cpuid.LeafSignature, 0)
	b[0] = leaf1.EDX
	b[1] = leaf1.ECX

	if maxLeaf >= cpuid.LeafExtendedFeatures {
		leaf7 := q.CPUID(cpuid.LeafExtendedFeatures, 0)
		b[3] = leaf7.EBX
		b[4] = leaf7.ECX
		leaf7s1 := q.CPUID(cpuid.LeafExtendedFeatures, 1)
		b[5] = leaf7s1.EAX
		b[6] = leaf7s1.EDX
	} else {
		slog.Debug("extended feature leaf not reported", slog.Uint64("max leaf", uint64(maxLeaf)))
	}

	if b.Has(OSXSAVE) {
		b[XSAVESSE.Word()] |= XSAVEState(q.XGETBV(0))
	}
	if b.Has(AVX10) && maxLeaf >= cpuid.LeafAVX10 {
		b[AVX10_1.Word()] |= AVX10State(q.CPUID(cpuid.LeafAVX10, 0))
	}
	return b
}

// XSAVEState maps an XCR0 value to the XSAVE state bits of word 2. Each of the
// SSE, AVX and AVX-512 flags needs every state component of the smaller ones.
func XSAVEState(xcr0 uint64) uint32 {
	var w uint32
	if xcr0&xcr0SSEState == xcr0SSEState {
		w |= 1 << XSAVESSE.Bit()
	}
	if xcr0&xcr0AVXState == xcr0AVXState {
		w |= 1 << XSAVEAVX.Bit()
	}
	if xcr0&xcr0AVX512State == xcr0AVX512State {
		w |= 1 << XSAVEAVX512.Bit()
	}
	if xcr0&xcr0APX != 0 {
		w |= 1 << XSAVEAPX.Bit()
	}
	return w
}

// AVX10State maps leaf 0x24 subleaf 0 to the avx10 bits of word 2. The
// converged version number is a ladder, the vector length bits keep their
// hardware positions.
func AVX10State(r cpuid.Registers) uint32 {
	var w uint32
	version := r.EBX & avx10VersionMask
	if version >= 1 {
		w |= 1 << AVX10_1.Bit()
	}
	if version >= 2 {
		w |= 1 << AVX10_2.Bit()
	}
	w |= r.EBX & avx10VectorLengths
	return w
}
