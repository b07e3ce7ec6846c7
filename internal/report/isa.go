package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"cpudesc/internal/features"
	"cpudesc/internal/table"
)

// ISA represents an instruction set architecture extension.
type ISA struct {
	Name     string
	FullName string
	Feature  features.Feature
}

// ISADefinitions contains the extensions listed in the Instruction Set Extensions table.
var ISADefinitions = []ISA{
	{"AES", "Advanced Encryption Standard New Instructions (AES-NI)", features.AESNI},
	{"PCLMULQDQ", "Carry-Less Multiplication (PCLMULQDQ)", features.PCLMULQDQ},
	{"SHA", "SHA1/SHA256 Instruction Extensions (SHA_NI)", features.SHA},
	{"VAES", "Vector AES", features.VAES},
	{"VPCLMULQDQ", "Vector Carry-Less Multiplication (VPCLMULQDQ)", features.VPCLMULQDQ},
	{"GFNI", "Galois Field New Instructions (GFNI)", features.GFNI},
	{"AVX2", "Advanced Vector Extensions 2 (AVX2)", features.AVX2},
	{"AVX512F", "AVX-512 Foundation", features.AVX512F},
	{"AVX512_VNNI", "Vector Neural Network Instructions (AVX512_VNNI)", features.AVX512VNNI},
	{"AVX512_BF16", "Vector Neural Network Instructions (AVX512_BF16)", features.AVX512BF16},
	{"AVX-VNNI", "AVX Vector Neural Network Instructions (AVX-VNNI)", features.AVXVNNI},
	{"AVX-IFMA", "AVX-IFMA Instruction", features.AVXIFMA},
	{"AVX-NE-CONVERT", "AVX-NE-CONVERT Instruction", features.AVXNECONVERT},
	{"AVX-VNNI-INT8", "AVX-VNNI-INT8 Instruction", features.AVXVNNIINT8},
	{"AVX10", "Advanced Vector Extensions 10 (AVX10)", features.AVX10},
	{"AMX-FP16", "AMX-FP16 Instruction", features.AMXFP16},
	{"AMX-COMPLEX", "AMX-COMPLEX Instruction", features.AMXCOMPLEX},
	{"APX", "Advanced Performance Extensions (APX)", features.APX},
	{"CLDEMOTE", "Cache Line Demote (CLDEMOTE)", features.CLDEMOTE},
	{"CMPCCXADD", "Compare and Add if Condition is Met (CMPCCXADD)", features.CMPCCXADD},
	{"ENQCMD", "Enqueue Command Instruction (ENQCMD)", features.ENQCMD},
	{"MOVDIRI", "Move Doubleword as Direct Store (MOVDIRI)", features.MOVDIRI},
	{"MOVDIR64B", "Move 64 Bytes as Direct Store (MOVDIR64B)", features.MOVDIR64B},
	{"PREFETCHIT0/1", "PREFETCHIT0/1 Instruction", features.PREFETCHI},
	{"WAITPKG", "UMONITOR, UMWAIT, TPAUSE Instructions", features.WAITPKG},
}

func isaTableValues(source table.Source) []table.Field {
	fields := []table.Field{
		{Name: "Name"},
		{Name: "Description"},
		{Name: "Supported"},
	}
	for _, isa := range ISADefinitions {
		fields[0].Values = append(fields[0].Values, isa.Name)
		fields[1].Values = append(fields[1].Values, isa.FullName)
		fields[2].Values = append(fields[2].Values, yesNo(source.Descriptor.Has(isa.Feature)))
	}
	return fields
}
