// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package procdesc produces the processor descriptor a runtime consults to pick
// CPU specific code paths.
package procdesc

import (
	"fmt"
	"log/slog"

	"cpudesc/internal/cpuid"
	"cpudesc/internal/cpus"
	"cpudesc/internal/features"
	"cpudesc/internal/signature"
)

// Descriptor is the result of one identification pass. It is a value: copies are
// independent and nothing mutates it after Describe returns.
type Descriptor struct {
	Processor cpus.Processor
	// PhysicalProcessor is the processor the hardware reports. It is the same as
	// Processor; the field exists for hosts that emulate an older target.
	PhysicalProcessor cpus.Processor
	Features          features.Bitmap
}

// Has reports whether feature f is present.
func (d Descriptor) Has(f features.Feature) bool {
	return d.Features.Has(f)
}

// Identification is the raw identity behind a Descriptor, for diagnostics.
type Identification struct {
	VendorID  string
	MaxLeaf   uint32
	Signature uint32
	Fields    signature.Fields
}

// supporter is implemented by backends that may be compiled without the
// identification instruction.
type supporter interface {
	Supported() bool
}

// Describe classifies the processor q answers for and builds its feature
// bitmap. It fails only when q is a backend that cannot execute queries in this
// build.
func Describe(q cpuid.Querier) (Descriptor, error) {
	if s, ok := q.(supporter); ok && !s.Supported() {
		return Descriptor{}, cpuid.ErrUnsupported
	}
	id := Identify(q)
	processor := cpus.Classify(id.VendorID, id.Signature)
	d := Descriptor{
		Processor:         processor,
		PhysicalProcessor: processor,
		Features:          features.Build(q),
	}
	slog.Debug("processor described",
		slog.String("vendor", id.VendorID),
		slog.String("signature", fmt.Sprintf("0x%08x", id.Signature)),
		slog.String("processor", processor.String()),
		slog.Int("features", len(d.Features.Active())))
	return d, nil
}

// DescribeHost describes the processor the program runs on.
func DescribeHost() (Descriptor, error) {
	return Describe(cpuid.Live{})
}

// Identify reads the vendor and signature leaves.
func Identify(q cpuid.Querier) Identification {
	sig := q.CPUID(cpuid.LeafSignature, 0).EAX
	return Identification{
		VendorID:  cpuid.VendorID(q),
		MaxLeaf:   cpuid.MaxLeaf(q),
		Signature: sig,
		Fields:    signature.Decode(sig),
	}
}
