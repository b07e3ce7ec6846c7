// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package crosscheck compares a host descriptor with what other x86 detection
// libraries report for the same machine.
package crosscheck

import (
	"fmt"
	"log/slog"
	"slices"

	kcpuid "github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"

	"cpudesc/internal/features"
	"cpudesc/internal/procdesc"
)

// Reference is one library's view of the host.
type Reference struct {
	Source string
	// identity, compared only when HasIdentity is set
	HasIdentity bool
	VendorID    string
	Family      int
	Model       int
	// Flags holds the features the library reports, present or not
	Flags map[features.Feature]bool
}

// Mismatch is a disagreement between the descriptor and a Reference.
type Mismatch struct {
	Source string
	Item   string
	Want   string // reference value
	Got    string // decoded value
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s: reference reports %s, decoded %s", m.Source, m.Item, m.Want, m.Got)
}

// Only flags that come straight from CPUID are compared. The libraries clear
// AVX, FMA, AVX2 and AVX-512 when the OS has not enabled their state.

// SysReference reads golang.org/x/sys/cpu.
func SysReference() Reference {
	return Reference{
		Source: "golang.org/x/sys/cpu",
		Flags: map[features.Feature]bool{
			features.SSE2:       cpu.X86.HasSSE2,
			features.SSE3:       cpu.X86.HasSSE3,
			features.PCLMULQDQ:  cpu.X86.HasPCLMULQDQ,
			features.SSSE3:      cpu.X86.HasSSSE3,
			features.CMPXCHG16B: cpu.X86.HasCX16,
			features.SSE41:      cpu.X86.HasSSE41,
			features.SSE42:      cpu.X86.HasSSE42,
			features.POPCNT:     cpu.X86.HasPOPCNT,
			features.AESNI:      cpu.X86.HasAES,
			features.OSXSAVE:    cpu.X86.HasOSXSAVE,
			features.RDRAND:     cpu.X86.HasRDRAND,
			features.BMI1:       cpu.X86.HasBMI1,
			features.BMI2:       cpu.X86.HasBMI2,
			features.ERMSB:      cpu.X86.HasERMS,
			features.ADX:        cpu.X86.HasADX,
			features.RDSEED:     cpu.X86.HasRDSEED,
		},
	}
}

// KlauspostReference reads github.com/klauspost/cpuid/v2.
func KlauspostReference() Reference {
	c := kcpuid.CPU
	return Reference{
		Source:      "github.com/klauspost/cpuid/v2",
		HasIdentity: true,
		VendorID:    c.VendorString,
		Family:      c.Family,
		Model:       c.Model,
		Flags: map[features.Feature]bool{
			features.SSE2:       c.Supports(kcpuid.SSE2),
			features.SSE3:       c.Supports(kcpuid.SSE3),
			features.PCLMULQDQ:  c.Supports(kcpuid.CLMUL),
			features.SSSE3:      c.Supports(kcpuid.SSSE3),
			features.CMPXCHG16B: c.Supports(kcpuid.CX16),
			features.SSE41:      c.Supports(kcpuid.SSE4),
			features.SSE42:      c.Supports(kcpuid.SSE42),
			features.POPCNT:     c.Supports(kcpuid.POPCNT),
			features.AESNI:      c.Supports(kcpuid.AESNI),
			features.RDRAND:     c.Supports(kcpuid.RDRAND),
			features.BMI1:       c.Supports(kcpuid.BMI1),
			features.BMI2:       c.Supports(kcpuid.BMI2),
			features.ERMSB:      c.Supports(kcpuid.ERMS),
			features.ADX:        c.Supports(kcpuid.ADX),
			features.RDSEED:     c.Supports(kcpuid.RDSEED),
		},
	}
}

// HostReferences returns every library reference for the running machine.
func HostReferences() []Reference {
	return []Reference{SysReference(), KlauspostReference()}
}

// Compare returns every disagreement between the decoded identity and features
// and the references, ordered by reference then feature index.
func Compare(id procdesc.Identification, d procdesc.Descriptor, refs ...Reference) []Mismatch {
	var mismatches []Mismatch
	for _, ref := range refs {
		if ref.HasIdentity {
			if ref.VendorID != id.VendorID {
				mismatches = append(mismatches, Mismatch{Source: ref.Source, Item: "vendor", Want: ref.VendorID, Got: id.VendorID})
			}
			if family := int(id.Fields.DisplayFamily()); ref.Family != family {
				mismatches = append(mismatches, Mismatch{Source: ref.Source, Item: "family", Want: fmt.Sprint(ref.Family), Got: fmt.Sprint(family)})
			}
			if model := int(id.Fields.DisplayModel()); ref.Model != model {
				mismatches = append(mismatches, Mismatch{Source: ref.Source, Item: "model", Want: fmt.Sprint(ref.Model), Got: fmt.Sprint(model)})
			}
		}
		flags := make([]features.Feature, 0, len(ref.Flags))
		for f := range ref.Flags {
			flags = append(flags, f)
		}
		slices.Sort(flags)
		for _, f := range flags {
			want, got := ref.Flags[f], d.Has(f)
			if want != got {
				mismatches = append(mismatches, Mismatch{Source: ref.Source, Item: features.Name(f), Want: fmt.Sprint(want), Got: fmt.Sprint(got)})
			}
		}
		slog.Debug("cross-checked descriptor", slog.String("source", ref.Source), slog.Int("flags", len(flags)))
	}
	return mismatches
}
