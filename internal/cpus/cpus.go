// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package cpus classifies x86 processors into named microarchitectures from the
// vendor string and the leaf 1 signature word.
package cpus

import (
	"fmt"
	"slices"
	"strings"

	"cpudesc/internal/signature"
)

const IntelVendor = "GenuineIntel"
const AMDVendor = "AuthenticAMD"

// Vendor identifies the silicon manufacturer of a Processor.
type Vendor int

const (
	VendorUnknown Vendor = iota
	VendorIntel
	VendorAMD
)

func (v Vendor) String() string {
	switch v {
	case VendorIntel:
		return IntelVendor
	case VendorAMD:
		return AMDVendor
	default:
		return "unknown"
	}
}

// Processor is a named microarchitecture.
type Processor int

const (
	Unknown Processor = iota
	// Intel
	IntelPentium
	IntelP6
	IntelPentium4
	IntelCore2
	IntelNehalem
	IntelWestmere
	IntelSandyBridge
	IntelIvyBridge
	IntelHaswell
	IntelBroadwell
	IntelSkylake
	IntelCascadeLake
	IntelCooperLake
	IntelIceLake
	IntelSapphireRapids
	IntelEmeraldRapids
	// AMD
	AMDK5
	AMDK6
	AMDAthlonDuron
	AMDOpteron
	AMDFamily15h

	processorCount
)

// ProcessorCharacteristics describes a Processor for display.
type ProcessorCharacteristics struct {
	Name   string // display name
	Code   string // short microarchitecture code
	Vendor Vendor
}

var processorCharacteristics = [processorCount]ProcessorCharacteristics{
	Unknown:             {Name: "Unknown", Code: "UNKNOWN", Vendor: VendorUnknown},
	IntelPentium:        {Name: "Pentium", Code: "P5", Vendor: VendorIntel},
	IntelP6:             {Name: "P6", Code: "P6", Vendor: VendorIntel},
	IntelPentium4:       {Name: "Pentium 4", Code: "P4", Vendor: VendorIntel},
	IntelCore2:          {Name: "Core 2", Code: "CORE2", Vendor: VendorIntel},
	IntelNehalem:        {Name: "Nehalem", Code: "NHM", Vendor: VendorIntel},
	IntelWestmere:       {Name: "Westmere", Code: "WSM", Vendor: VendorIntel},
	IntelSandyBridge:    {Name: "Sandy Bridge", Code: "SNB", Vendor: VendorIntel},
	IntelIvyBridge:      {Name: "Ivy Bridge", Code: "IVB", Vendor: VendorIntel},
	IntelHaswell:        {Name: "Haswell", Code: "HSW", Vendor: VendorIntel},
	IntelBroadwell:      {Name: "Broadwell", Code: "BDW", Vendor: VendorIntel},
	IntelSkylake:        {Name: "Skylake", Code: "SKL", Vendor: VendorIntel},
	IntelCascadeLake:    {Name: "Cascade Lake", Code: "CLX", Vendor: VendorIntel},
	IntelCooperLake:     {Name: "Cooper Lake", Code: "CPX", Vendor: VendorIntel},
	IntelIceLake:        {Name: "Ice Lake", Code: "ICL", Vendor: VendorIntel},
	IntelSapphireRapids: {Name: "Sapphire Rapids", Code: "SPR", Vendor: VendorIntel},
	IntelEmeraldRapids:  {Name: "Emerald Rapids", Code: "EMR", Vendor: VendorIntel},
	AMDK5:               {Name: "K5", Code: "K5", Vendor: VendorAMD},
	AMDK6:               {Name: "K6", Code: "K6", Vendor: VendorAMD},
	AMDAthlonDuron:      {Name: "Athlon/Duron", Code: "K7", Vendor: VendorAMD},
	AMDOpteron:          {Name: "Opteron", Code: "K8", Vendor: VendorAMD},
	AMDFamily15h:        {Name: "Family 15h", Code: "F15H", Vendor: VendorAMD},
}

// Characteristics returns the display metadata for p. Values outside the enum
// report the Unknown entry.
func (p Processor) Characteristics() ProcessorCharacteristics {
	if p < 0 || p >= processorCount {
		return processorCharacteristics[Unknown]
	}
	return processorCharacteristics[p]
}

func (p Processor) String() string { return p.Characteristics().Name }

// Code returns the short microarchitecture code, e.g., CLX.
func (p Processor) Code() string { return p.Characteristics().Code }

func (p Processor) Vendor() Vendor { return p.Characteristics().Vendor }

// Processors returns every named processor in enum order, Unknown first.
func Processors() []Processor {
	out := make([]Processor, 0, processorCount)
	for p := Unknown; p < processorCount; p++ {
		out = append(out, p)
	}
	return out
}

// ParseProcessor finds a processor by display name or code, ignoring case.
func ParseProcessor(name string) (Processor, error) {
	for p := Unknown; p < processorCount; p++ {
		c := processorCharacteristics[p]
		if strings.EqualFold(c.Name, name) || strings.EqualFold(c.Code, name) {
			return p, nil
		}
	}
	return Unknown, fmt.Errorf("processor not found for name %s", name)
}

// Intel family codes
const (
	familyIntelPentium  = 0x05
	familyIntelCore     = 0x06
	familyIntelPentium4 = 0x0F
)

// AMD family codes and thresholds
const (
	familyAMDKSeries = 0x05
	familyAMDAthlon  = 0x06
	familyAMDOpteron = 0x0F

	modelAMDK5Limit            = 0x04 // models below are K5
	extendedFamilyAMDFamily15h = 0x06 // extended families at or above are Family 15h
)

// steppingRange is an inclusive stepping range; the zero value matches any stepping.
type steppingRange struct {
	Min, Max uint32
	Set      bool
}

func steppings(lo, hi uint32) steppingRange {
	return steppingRange{Min: lo, Max: hi, Set: true}
}

func (r steppingRange) matches(stepping uint32) bool {
	return !r.Set || (stepping >= r.Min && stepping <= r.Max)
}

// Intel model code suffixes (post-Broadwell): _X server, _D micro server,
// _L mobile, none for client.
const (
	modelEmeraldRapidsX          = 0xCF
	modelSapphireRapidsX         = 0x8F
	modelIceLakeX                = 0x6A
	modelIceLakeD                = 0x6C
	modelIceLake                 = 0x7D
	modelIceLakeL                = 0x7E
	modelSkylakeL                = 0x4E
	modelSkylake                 = 0x5E
	modelSkylakeX                = 0x55
	modelBroadwell               = 0x4F
	modelHaswell1                = 0x3F
	modelHaswell2                = 0x3C
	modelIvyBridge1              = 0x3E
	modelIvyBridge2              = 0x3A
	modelSandyBridge             = 0x2A
	modelSandyBridgeEP           = 0x2D
	modelWestmereEP              = 0x2C
	modelWestmereEX              = 0x2F
	modelNehalem                 = 0x1A
	modelCore2Harpertown         = 0x17
	modelCore2WoodcrestClovertwn = 0x0F
)

var skylakeFamilyModels = []uint32{modelSkylakeX, modelSkylakeL, modelSkylake}

// intelCoreIdentifiers maps family 6 combined model codes to processors. The first
// matching entry wins, so entries sharing model codes are ordered from the
// narrowest stepping range to the catch-all.
var intelCoreIdentifiers = []struct {
	Models    []uint32
	Steppings steppingRange
	Processor Processor
}{
	{[]uint32{modelEmeraldRapidsX}, steppingRange{}, IntelEmeraldRapids},
	{[]uint32{modelSapphireRapidsX}, steppingRange{}, IntelSapphireRapids},
	{[]uint32{modelIceLakeX, modelIceLakeD, modelIceLakeL, modelIceLake}, steppingRange{}, IntelIceLake},
	{skylakeFamilyModels, steppings(0x05, 0x07), IntelCascadeLake},
	{skylakeFamilyModels, steppings(0x0A, 0x0B), IntelCooperLake},
	{skylakeFamilyModels, steppingRange{}, IntelSkylake},
	{[]uint32{modelBroadwell}, steppingRange{}, IntelBroadwell},
	{[]uint32{modelHaswell1, modelHaswell2}, steppingRange{}, IntelHaswell},
	{[]uint32{modelIvyBridge1, modelIvyBridge2}, steppingRange{}, IntelIvyBridge},
	{[]uint32{modelSandyBridge, modelSandyBridgeEP}, steppingRange{}, IntelSandyBridge},
	{[]uint32{modelWestmereEP, modelWestmereEX}, steppingRange{}, IntelWestmere},
	{[]uint32{modelNehalem}, steppingRange{}, IntelNehalem},
	{[]uint32{modelCore2Harpertown, modelCore2WoodcrestClovertwn}, steppingRange{}, IntelCore2},
}

// IntelCoreModels returns every combined model code in the family 6 table.
func IntelCoreModels() []uint32 {
	var out []uint32
	for _, entry := range intelCoreIdentifiers {
		for _, m := range entry.Models {
			if !slices.Contains(out, m) {
				out = append(out, m)
			}
		}
	}
	return out
}

// Classify maps a vendor string and signature word to a Processor. It never fails:
// unseen Intel family 6 models report P6, anything else unrecognized reports
// Unknown.
func Classify(vendor string, sig uint32) Processor {
	fields := signature.Decode(sig)
	switch vendor {
	case IntelVendor:
		return classifyIntel(fields)
	case AMDVendor:
		return classifyAMD(fields)
	default:
		return Unknown
	}
}

func classifyIntel(f signature.Fields) Processor {
	switch f.Family {
	case familyIntelPentium:
		return IntelPentium
	case familyIntelCore:
		return classifyIntelCore(f.CombinedModel(), f.Stepping)
	case familyIntelPentium4:
		return IntelPentium4
	default:
		return Unknown
	}
}

func classifyIntelCore(model, stepping uint32) Processor {
	for _, entry := range intelCoreIdentifiers {
		if !slices.Contains(entry.Models, model) {
			continue
		}
		if !entry.Steppings.matches(stepping) {
			continue
		}
		return entry.Processor
	}
	return IntelP6
}

func classifyAMD(f signature.Fields) Processor {
	switch f.Family {
	case familyAMDKSeries:
		if f.Model < modelAMDK5Limit {
			return AMDK5
		}
		return AMDK6
	case familyAMDAthlon:
		return AMDAthlonDuron
	case familyAMDOpteron:
		if f.ExtendedFamily < extendedFamilyAMDFamily15h {
			return AMDOpteron
		}
		return AMDFamily15h
	default:
		return Unknown
	}
}
