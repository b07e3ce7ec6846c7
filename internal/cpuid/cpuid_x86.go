// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

//go:build (386 || amd64) && gc && !purego

package cpuid

const supported = true

// cpuidex executes CPUID with EAX=leaf and ECX=subleaf.
// Implemented in cpuid_amd64.s and cpuid_386.s.
func cpuidex(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)

// xgetbv executes XGETBV with ECX=index.
func xgetbv(index uint32) (eax, edx uint32)
