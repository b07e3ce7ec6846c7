// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package features

// Feature indexes. Words 0 and 1 come from CPUID leaf 1 EDX and ECX, word 2 is
// synthesized from XCR0 and leaf 0x24, words 3 and 4 from leaf 7 subleaf 0 EBX
// and ECX, words 5 and 6 from leaf 7 subleaf 1 EAX and EDX.
const (
	// word 0
	FPU   Feature = 0*32 + 0
	VME   Feature = 0*32 + 1
	DE    Feature = 0*32 + 2
	PSE   Feature = 0*32 + 3
	TSC   Feature = 0*32 + 4
	MSR   Feature = 0*32 + 5
	PAE   Feature = 0*32 + 6
	MCE   Feature = 0*32 + 7
	CX8   Feature = 0*32 + 8
	APIC  Feature = 0*32 + 9
	SEP   Feature = 0*32 + 11
	MTRR  Feature = 0*32 + 12
	PGE   Feature = 0*32 + 13
	MCA   Feature = 0*32 + 14
	CMOV  Feature = 0*32 + 15
	PAT   Feature = 0*32 + 16
	PSE36 Feature = 0*32 + 17
	PSN   Feature = 0*32 + 18
	CLFSH Feature = 0*32 + 19
	DS    Feature = 0*32 + 21
	ACPI  Feature = 0*32 + 22
	MMX   Feature = 0*32 + 23
	FXSR  Feature = 0*32 + 24
	SSE   Feature = 0*32 + 25
	SSE2  Feature = 0*32 + 26
	SS    Feature = 0*32 + 27
	HTT   Feature = 0*32 + 28
	TM    Feature = 0*32 + 29
	PBE   Feature = 0*32 + 31

	// word 1
	SSE3        Feature = 1*32 + 0
	PCLMULQDQ   Feature = 1*32 + 1
	DTES64      Feature = 1*32 + 2
	MONITOR     Feature = 1*32 + 3
	DSCPL       Feature = 1*32 + 4
	VMX         Feature = 1*32 + 5
	SMX         Feature = 1*32 + 6
	EIST        Feature = 1*32 + 7
	TM2         Feature = 1*32 + 8
	SSSE3       Feature = 1*32 + 9
	CNXTID      Feature = 1*32 + 10
	SDBG        Feature = 1*32 + 11
	FMA         Feature = 1*32 + 12
	CMPXCHG16B  Feature = 1*32 + 13
	XTPR        Feature = 1*32 + 14
	PDCM        Feature = 1*32 + 15
	PCID        Feature = 1*32 + 17
	DCA         Feature = 1*32 + 18
	SSE41       Feature = 1*32 + 19
	SSE42       Feature = 1*32 + 20
	X2APIC      Feature = 1*32 + 21
	MOVBE       Feature = 1*32 + 22
	POPCNT      Feature = 1*32 + 23
	TSCDEADLINE Feature = 1*32 + 24
	AESNI       Feature = 1*32 + 25
	XSAVE       Feature = 1*32 + 26
	OSXSAVE     Feature = 1*32 + 27
	AVX         Feature = 1*32 + 28
	F16C        Feature = 1*32 + 29
	RDRAND      Feature = 1*32 + 30

	// word 2
	XSAVESSE    Feature = 2*32 + 0
	XSAVEAVX    Feature = 2*32 + 1
	XSAVEAVX512 Feature = 2*32 + 2
	XSAVEAPX    Feature = 2*32 + 3
	AVX10_1     Feature = 2*32 + 4
	AVX10_2     Feature = 2*32 + 5
	AVX10_128   Feature = 2*32 + 16
	AVX10_256   Feature = 2*32 + 17
	AVX10_512   Feature = 2*32 + 18

	// word 3
	FSGSBASE       Feature = 3*32 + 0
	IA32TSCADJUST  Feature = 3*32 + 1
	SGX            Feature = 3*32 + 2
	BMI1           Feature = 3*32 + 3
	HLE            Feature = 3*32 + 4
	AVX2           Feature = 3*32 + 5
	FDPEXCPTNONLY  Feature = 3*32 + 6
	SMEP           Feature = 3*32 + 7
	BMI2           Feature = 3*32 + 8
	ERMSB          Feature = 3*32 + 9
	INVPCID        Feature = 3*32 + 10
	RTM            Feature = 3*32 + 11
	RDTM           Feature = 3*32 + 12
	DEPRECATEFPUCS Feature = 3*32 + 13
	MPX            Feature = 3*32 + 14
	RDTA           Feature = 3*32 + 15
	AVX512F        Feature = 3*32 + 16
	AVX512DQ       Feature = 3*32 + 17
	RDSEED         Feature = 3*32 + 18
	ADX            Feature = 3*32 + 19
	SMAP           Feature = 3*32 + 20
	AVX512IFMA     Feature = 3*32 + 21
	CLFLUSHOPT     Feature = 3*32 + 23
	CLWB           Feature = 3*32 + 24
	IPT            Feature = 3*32 + 25
	AVX512PF       Feature = 3*32 + 26
	AVX512ER       Feature = 3*32 + 27
	AVX512CD       Feature = 3*32 + 28
	SHA            Feature = 3*32 + 29
	AVX512BW       Feature = 3*32 + 30
	AVX512VL       Feature = 3*32 + 31

	// word 4
	PREFETCHWT1     Feature = 4*32 + 0
	AVX512VBMI      Feature = 4*32 + 1
	UMIP            Feature = 4*32 + 2
	PKU             Feature = 4*32 + 3
	OSPKE           Feature = 4*32 + 4
	WAITPKG         Feature = 4*32 + 5
	AVX512VBMI2     Feature = 4*32 + 6
	CETSS           Feature = 4*32 + 7
	GFNI            Feature = 4*32 + 8
	VAES            Feature = 4*32 + 9
	VPCLMULQDQ      Feature = 4*32 + 10
	AVX512VNNI      Feature = 4*32 + 11
	AVX512BITALG    Feature = 4*32 + 12
	TMEEN           Feature = 4*32 + 13
	AVX512VPOPCNTDQ Feature = 4*32 + 14
	LA57            Feature = 4*32 + 16
	MAWAU0          Feature = 4*32 + 17
	MAWAU1          Feature = 4*32 + 18
	MAWAU2          Feature = 4*32 + 19
	MAWAU3          Feature = 4*32 + 20
	MAWAU4          Feature = 4*32 + 21
	RDPID           Feature = 4*32 + 22
	KL              Feature = 4*32 + 23
	BUSLOCKDETECT   Feature = 4*32 + 24
	CLDEMOTE        Feature = 4*32 + 25
	MOVDIRI         Feature = 4*32 + 27
	MOVDIR64B       Feature = 4*32 + 28
	ENQCMD          Feature = 4*32 + 29
	SGXLC           Feature = 4*32 + 30
	PKS             Feature = 4*32 + 31

	// word 5
	SHA512                  Feature = 5*32 + 0
	SM3                     Feature = 5*32 + 1
	SM4                     Feature = 5*32 + 2
	AVXVNNI                 Feature = 5*32 + 4
	AVX512BF16              Feature = 5*32 + 5
	LASS                    Feature = 5*32 + 6
	CMPCCXADD               Feature = 5*32 + 7
	ARCHPERFMONEXT          Feature = 5*32 + 8
	FASTREPMOVSBZERO        Feature = 5*32 + 10
	FASTREPSTOSBSHORT       Feature = 5*32 + 11
	FASTREPCMPSBSCASBSHORT  Feature = 5*32 + 12
	WRMSRNS                 Feature = 5*32 + 19
	AMXFP16                 Feature = 5*32 + 21
	HRESET                  Feature = 5*32 + 22
	AVXIFMA                 Feature = 5*32 + 23
	LAM                     Feature = 5*32 + 26
	MSRLIST                 Feature = 5*32 + 27
	INVDDISABLEPOSTBIOSDONE Feature = 5*32 + 30
	MOVRS                   Feature = 5*32 + 31

	// word 6
	AVXVNNIINT8  Feature = 6*32 + 4
	AVXNECONVERT Feature = 6*32 + 5
	AMXCOMPLEX   Feature = 6*32 + 8
	AVXVNNIINT16 Feature = 6*32 + 10
	PREFETCHI    Feature = 6*32 + 14
	UIRETUIF     Feature = 6*32 + 17
	CETSSS       Feature = 6*32 + 18
	AVX10        Feature = 6*32 + 19
	APX          Feature = 6*32 + 21
)
