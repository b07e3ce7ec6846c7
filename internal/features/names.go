// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package features

// featureNames is indexed by Feature. Reserved slots hold NullName and stay in
// place so that every index keeps its hardware position.
var featureNames = [...]string{
	"fpu",                         // 0*32 + 0
	"vme",                         // 0*32 + 1
	"de",                          // 0*32 + 2
	"pse",                         // 0*32 + 3
	"tsc",                         // 0*32 + 4
	"msr",                         // 0*32 + 5
	"pae",                         // 0*32 + 6
	"mce",                         // 0*32 + 7
	"cx8",                         // 0*32 + 8
	"apic",                        // 0*32 + 9
	"null",                        // 0*32 + 10
	"sep",                         // 0*32 + 11
	"mtrr",                        // 0*32 + 12
	"pge",                         // 0*32 + 13
	"mca",                         // 0*32 + 14
	"cmov",                        // 0*32 + 15
	"pat",                         // 0*32 + 16
	"pse36",                       // 0*32 + 17
	"psn",                         // 0*32 + 18
	"clfsh",                       // 0*32 + 19
	"null",                        // 0*32 + 20
	"ds",                          // 0*32 + 21
	"acpi",                        // 0*32 + 22
	"mmx",                         // 0*32 + 23
	"fxsr",                        // 0*32 + 24
	"sse",                         // 0*32 + 25
	"sse2",                        // 0*32 + 26
	"ss",                          // 0*32 + 27
	"htt",                         // 0*32 + 28
	"tm",                          // 0*32 + 29
	"null",                        // 0*32 + 30
	"pbe",                         // 0*32 + 31
	"sse3",                        // 1*32 + 0
	"pclmulqdq",                   // 1*32 + 1
	"dtes64",                      // 1*32 + 2
	"monitor",                     // 1*32 + 3
	"ds_cpl",                      // 1*32 + 4
	"vmx",                         // 1*32 + 5
	"smx",                         // 1*32 + 6
	"eist",                        // 1*32 + 7
	"tm2",                         // 1*32 + 8
	"ssse3",                       // 1*32 + 9
	"cnxt_id",                     // 1*32 + 10
	"sdbg",                        // 1*32 + 11
	"fma",                         // 1*32 + 12
	"cmpxchg16b",                  // 1*32 + 13
	"xtpr",                        // 1*32 + 14
	"pdcm",                        // 1*32 + 15
	"null",                        // 1*32 + 16
	"pcid",                        // 1*32 + 17
	"dca",                         // 1*32 + 18
	"sse4_1",                      // 1*32 + 19
	"sse4_2",                      // 1*32 + 20
	"x2apic",                      // 1*32 + 21
	"movbe",                       // 1*32 + 22
	"popcnt",                      // 1*32 + 23
	"tsc_deadline",                // 1*32 + 24
	"aesni",                       // 1*32 + 25
	"xsave",                       // 1*32 + 26
	"osxsave",                     // 1*32 + 27
	"avx",                         // 1*32 + 28
	"f16c",                        // 1*32 + 29
	"rdrand",                      // 1*32 + 30
	"null",                        // 1*32 + 31
	"null",                        // 2*32 + 0
	"null",                        // 2*32 + 1
	"null",                        // 2*32 + 2
	"null",                        // 2*32 + 3
	"avx10.1",                     // 2*32 + 4
	"avx10.2",                     // 2*32 + 5
	"null",                        // 2*32 + 6
	"null",                        // 2*32 + 7
	"null",                        // 2*32 + 8
	"null",                        // 2*32 + 9
	"null",                        // 2*32 + 10
	"null",                        // 2*32 + 11
	"null",                        // 2*32 + 12
	"null",                        // 2*32 + 13
	"null",                        // 2*32 + 14
	"null",                        // 2*32 + 15
	"avx10/128",                   // 2*32 + 16
	"avx10/256",                   // 2*32 + 17
	"avx10/512",                   // 2*32 + 18
	"null",                        // 2*32 + 19
	"null",                        // 2*32 + 20
	"null",                        // 2*32 + 21
	"null",                        // 2*32 + 22
	"null",                        // 2*32 + 23
	"null",                        // 2*32 + 24
	"null",                        // 2*32 + 25
	"null",                        // 2*32 + 26
	"null",                        // 2*32 + 27
	"null",                        // 2*32 + 28
	"null",                        // 2*32 + 29
	"null",                        // 2*32 + 30
	"null",                        // 2*32 + 31
	"fsgsbase",                    // 3*32 + 0
	"ia32_tsc_adjust",             // 3*32 + 1
	"sgx",                         // 3*32 + 2
	"bmi1",                        // 3*32 + 3
	"hle",                         // 3*32 + 4
	"avx2",                        // 3*32 + 5
	"fdp_excptn_only",             // 3*32 + 6
	"smep",                        // 3*32 + 7
	"bmi2",                        // 3*32 + 8
	"ermsb",                       // 3*32 + 9
	"invpcid",                     // 3*32 + 10
	"rtm",                         // 3*32 + 11
	"rdt_m",                       // 3*32 + 12
	"deprecate_fpucs",             // 3*32 + 13
	"mpx",                         // 3*32 + 14
	"rdt_a",                       // 3*32 + 15
	"avx512f",                     // 3*32 + 16
	"avx512dq",                    // 3*32 + 17
	"rdseed",                      // 3*32 + 18
	"adx",                         // 3*32 + 19
	"smap",                        // 3*32 + 20
	"avx512_ifma",                 // 3*32 + 21
	"null",                        // 3*32 + 22
	"clflushopt",                  // 3*32 + 23
	"clwb",                        // 3*32 + 24
	"ipt",                         // 3*32 + 25
	"avx512pf",                    // 3*32 + 26
	"avx512er",                    // 3*32 + 27
	"avx512cd",                    // 3*32 + 28
	"sha",                         // 3*32 + 29
	"avx512bw",                    // 3*32 + 30
	"avx512vl",                    // 3*32 + 31
	"prefetchwt1",                 // 4*32 + 0
	"avx512_vbmi",                 // 4*32 + 1
	"umip",                        // 4*32 + 2
	"pku",                         // 4*32 + 3
	"ospke",                       // 4*32 + 4
	"waitpkg",                     // 4*32 + 5
	"avx512_vbmi2",                // 4*32 + 6
	"cet_ss",                      // 4*32 + 7
	"gfni",                        // 4*32 + 8
	"vaes",                        // 4*32 + 9
	"vpclmulqdq",                  // 4*32 + 10
	"avx512_vnni",                 // 4*32 + 11
	"avx512_bitalg",               // 4*32 + 12
	"tme_en",                      // 4*32 + 13
	"avx512_vpopcntdq",            // 4*32 + 14
	"null",                        // 4*32 + 15
	"la57",                        // 4*32 + 16
	"mawau_0",                     // 4*32 + 17
	"mawau_1",                     // 4*32 + 18
	"mawau_2",                     // 4*32 + 19
	"mawau_3",                     // 4*32 + 20
	"mawau_4",                     // 4*32 + 21
	"rdpid",                       // 4*32 + 22
	"kl",                          // 4*32 + 23
	"bus_lock_detect",             // 4*32 + 24
	"cldemote",                    // 4*32 + 25
	"null",                        // 4*32 + 26
	"movdiri",                     // 4*32 + 27
	"movdir64b",                   // 4*32 + 28
	"enqcmd",                      // 4*32 + 29
	"sgx_lc",                      // 4*32 + 30
	"pks",                         // 4*32 + 31
	"sha512",                      // 5*32 + 0
	"sm3",                         // 5*32 + 1
	"sm4",                         // 5*32 + 2
	"null",                        // 5*32 + 3
	"avx_vnni",                    // 5*32 + 4
	"avx512_bf16",                 // 5*32 + 5
	"lass",                        // 5*32 + 6
	"cmpccxadd",                   // 5*32 + 7
	"archperfmonext",              // 5*32 + 8
	"null",                        // 5*32 + 9
	"fastrep_movsb_zero",          // 5*32 + 10
	"fastrep_stosb_short",         // 5*32 + 11
	"fastrep_cmpsb_scasb_short",   // 5*32 + 12
	"null",                        // 5*32 + 13
	"null",                        // 5*32 + 14
	"null",                        // 5*32 + 15
	"null",                        // 5*32 + 16
	"null",                        // 5*32 + 17
	"null",                        // 5*32 + 18
	"wrmsrns",                     // 5*32 + 19
	"null",                        // 5*32 + 20
	"amx_fp16",                    // 5*32 + 21
	"hreset",                      // 5*32 + 22
	"avx_ifma",                    // 5*32 + 23
	"null",                        // 5*32 + 24
	"null",                        // 5*32 + 25
	"lam",                         // 5*32 + 26
	"msrlist",                     // 5*32 + 27
	"null",                        // 5*32 + 28
	"null",                        // 5*32 + 29
	"invd_disable_post_bios_done", // 5*32 + 30
	"movrs",                       // 5*32 + 31
	"null",                        // 6*32 + 0
	"null",                        // 6*32 + 1
	"null",                        // 6*32 + 2
	"null",                        // 6*32 + 3
	"avx_vnni_int8",               // 6*32 + 4
	"avx_ne_convert",              // 6*32 + 5
	"null",                        // 6*32 + 6
	"null",                        // 6*32 + 7
	"amx_complex",                 // 6*32 + 8
	"null",                        // 6*32 + 9
	"avx_vnni_int16",              // 6*32 + 10
	"null",                        // 6*32 + 11
	"null",                        // 6*32 + 12
	"null",                        // 6*32 + 13
	"prefetchi",                   // 6*32 + 14
	"null",                        // 6*32 + 15
	"null",                        // 6*32 + 16
	"uiretuif",                    // 6*32 + 17
	"cet_sss",                     // 6*32 + 18
	"avx10",                       // 6*32 + 19
	"null",                        // 6*32 + 20
	"apx",                         // 6*32 + 21
	"null",                        // 6*32 + 22
	"null",                        // 6*32 + 23
	"null",                        // 6*32 + 24
	"null",                        // 6*32 + 25
	"null",                        // 6*32 + 26
	"null",                        // 6*32 + 27
	"null",                        // 6*32 + 28
	"null",                        // 6*32 + 29
	"null",                        // 6*32 + 30
	"null",                        // 6*32 + 31
}

var _ [len(featureNames) - Count]struct{}
var _ [Count - len(featureNames)]struct{}
