// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package signature decodes the processor signature word returned in EAX by
// CPUID leaf 1.
package signature

const (
	steppingMask       = 0x0000000F
	modelMask          = 0x000000F0
	familyMask         = 0x00000F00
	processorTypeMask  = 0x00003000
	extendedModelMask  = 0x000F0000
	extendedFamilyMask = 0x0FF00000

	steppingShift       = 0
	modelShift          = 4
	familyShift         = 8
	processorTypeShift  = 12
	extendedModelShift  = 16
	extendedFamilyShift = 20
)

// Fields holds every field of a signature word.
type Fields struct {
	Stepping       uint32
	Model          uint32
	Family         uint32
	ProcessorType  uint32
	ExtendedModel  uint32
	ExtendedFamily uint32
}

// Stepping returns bits 3:0.
func Stepping(sig uint32) uint32 {
	return (sig & steppingMask) >> steppingShift
}

// Model returns bits 7:4.
func Model(sig uint32) uint32 {
	return (sig & modelMask) >> modelShift
}

// Family returns bits 11:8.
func Family(sig uint32) uint32 {
	return (sig & familyMask) >> familyShift
}

// ProcessorType returns bits 13:12.
func ProcessorType(sig uint32) uint32 {
	return (sig & processorTypeMask) >> processorTypeShift
}

// ExtendedModel returns bits 19:16.
func ExtendedModel(sig uint32) uint32 {
	return (sig & extendedModelMask) >> extendedModelShift
}

// ExtendedFamily returns bits 27:20.
func ExtendedFamily(sig uint32) uint32 {
	return (sig & extendedFamilyMask) >> extendedFamilyShift
}

// Decode extracts all fields of sig.
func Decode(sig uint32) Fields {
	return Fields{
		Stepping:       Stepping(sig),
		Model:          Model(sig),
		Family:         Family(sig),
		ProcessorType:  ProcessorType(sig),
		ExtendedModel:  ExtendedModel(sig),
		ExtendedFamily: ExtendedFamily(sig),
	}
}

// CombinedModel is model + extendedModel<<4 regardless of family. This is the
// value Intel model codes are published as.
func (f Fields) CombinedModel() uint32 {
	return f.Model + f.ExtendedModel<<4
}

// DisplayFamily is the family number reported by the kernel and lscpu: the
// extended family is only added when the base family is 0xF.
func (f Fields) DisplayFamily() uint32 {
	if f.Family == 0x0F {
		return f.Family + f.ExtendedFamily
	}
	return f.Family
}

// DisplayModel is the model number reported by the kernel and lscpu: the
// extended model only counts for base families 0x6 and 0xF.
func (f Fields) DisplayModel() uint32 {
	if f.Family == 0x06 || f.Family == 0x0F {
		return f.CombinedModel()
	}
	return f.Model
}
