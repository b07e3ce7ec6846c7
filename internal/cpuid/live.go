// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package cpuid

// Live queries the processor the program is running on.
type Live struct{}

// Supported reports whether this build can execute the identification instruction.
func (Live) Supported() bool {
	return supported
}

func (Live) CPUID(leaf, subleaf uint32) Registers {
	eax, ebx, ecx, edx := cpuidex(leaf, subleaf)
	return Registers{EAX: eax, EBX: ebx, ECX: ecx, EDX: edx}
}

// XGETBV reads an extended control register. Callers must check OSXSAVE first;
// the instruction faults when the OS has not enabled it.
func (Live) XGETBV(index uint32) uint64 {
	eax, edx := xgetbv(index)
	return uint64(edx)<<32 | uint64(eax)
}
