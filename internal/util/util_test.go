package util

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestIsValidHex(t *testing.T) {
	tests := []struct {
		hexStr   string
		expected bool
	}{
		{"0x1a2b3c", true},  // Valid hex with "0x" prefix
		{"0X1A2B3C", true},  // Valid hex with "0X" prefix
		{"1a2b3c", true},    // Valid hex without prefix
		{"0x", false},       // Invalid hex, only prefix
		{"", false},         // Empty string
		{"0xGHIJKL", false}, // Invalid hex with non-hex characters
		{" 12345 ", false},  // Invalid hex with spaces
	}

	for _, test := range tests {
		result := IsValidHex(test.hexStr)
		if result != test.expected {
			t.Errorf("expected %v, got %v for hex string %s", test.expected, result, test.hexStr)
		}
	}
}

func TestParseUint32(t *testing.T) {
	tests := []struct {
		input    string
		expected uint32
		err      bool
	}{
		{"0", 0, false},
		{"223", 223, false},
		{"0x44", 68, false},
		{"0XdF", 223, false},
		{"2147483648", 2147483648, false},
		{"0xffffffff", 4294967295, false},
		{"4294967296", 0, true},
		{"0x100000000", 0, true},
		{"0x", 0, true},
		{"-1", 0, true},
		{"avx2", 0, true},
		{"0xZZ", 0, true},
		{"", 0, true},
	}

	for _, test := range tests {
		result, err := ParseUint32(test.input)
		if (err != nil) != test.err {
			t.Errorf("expected error: %v, got: %v for input %s", test.err, err != nil, test.input)
		}
		if !test.err && result != test.expected {
			t.Errorf("expected %d, got %d for input %s", test.expected, result, test.input)
		}
	}
}

func TestParseIntRange(t *testing.T) {
	tests := []struct {
		input    string
		expected IntRange
		err      bool
	}{
		{"1-5", IntRange{1, 5}, false},                   // Valid range
		{"5-5", IntRange{5, 5}, false},                   // Single value range
		{"0x40-0x42", IntRange{64, 66}, false},           // Hex range
		{"62-0x40", IntRange{62, 64}, false},             // Mixed range
		{"0-4294967295", IntRange{0, 4294967295}, false}, // Full 32 bit range
		{"0-0xffffffff", IntRange{0, 0xffffffff}, false}, // Full 32 bit hex range
		{"", IntRange{}, true},                           // Empty input
		{"5-3", IntRange{}, true},                        // Invalid range (start > end)
		{"abc-def", IntRange{}, true},                    // Invalid input format
		{"1-", IntRange{}, true},                         // Missing end value
		{"-5", IntRange{}, true},                         // Missing start value
		{"1-5-10", IntRange{}, true},                     // Invalid format with extra dash
		{"0-4294967296", IntRange{}, true},               // End does not fit in 32 bits
		{"3", IntRange{3, 3}, false},                     // Single value without range
	}

	for _, test := range tests {
		result, err := ParseIntRange(test.input)
		if (err != nil) != test.err {
			t.Errorf("expected error: %v, got: %v for input %s, err: %v", test.err, err != nil, test.input, err)
		}
		if !test.err && result != test.expected {
			t.Errorf("expected %v, got %v for input %s", test.expected, result, test.input)
		}
	}
}

func TestParseSelectiveIntRange(t *testing.T) {
	tests := []struct {
		input    string
		expected []IntRange
		err      bool
	}{
		{"1-3,5,7-9", []IntRange{{1, 3}, {5, 5}, {7, 9}}, false}, // Valid mixed ranges and single values
		{"0x50-0x52,3", []IntRange{{80, 82}, {3, 3}}, false},     // Hex range and decimal value
		{"5", []IntRange{{5, 5}}, false},                         // Single value
		{"", nil, true},                                          // Empty input
		{"1-3,abc,7-9", nil, true},                               // Invalid input with non-numeric value
		{"1-3,,7-9", nil, true},                                  // Invalid format with empty segment
	}

	for _, test := range tests {
		result, err := ParseSelectiveIntRange(test.input)
		if (err != nil) != test.err {
			t.Errorf("expected error: %v, got: %v for input %s, err: %v", test.err, err != nil, test.input, err)
		}
		if !test.err && !slices.Equal(result, test.expected) {
			t.Errorf("expected %v, got %v for input %s", test.expected, result, test.input)
		}
	}
}

func TestUniqueAppend(t *testing.T) {
	s := UniqueAppend([]string{"sse2"}, "avx2")
	s = UniqueAppend(s, "sse2")
	if !slices.Equal(s, []string{"sse2", "avx2"}) {
		t.Errorf("unexpected slice %v", s)
	}
}

func TestExistsHelpers(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "snapshot.yaml")
	if err := os.WriteFile(file, []byte("leaves: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if exists, err := FileExists(file); !exists || err != nil {
		t.Errorf("expected file to exist, got %v, %v", exists, err)
	}
	if _, err := FileExists(dir); err == nil {
		t.Errorf("expected error for directory passed to FileExists")
	}
	if exists, err := FileExists(filepath.Join(dir, "missing")); exists || err != nil {
		t.Errorf("expected missing file, got %v, %v", exists, err)
	}
	if exists, err := DirectoryExists(dir); !exists || err != nil {
		t.Errorf("expected directory to exist, got %v, %v", exists, err)
	}
	if _, err := DirectoryExists(file); err == nil {
		t.Errorf("expected error for file passed to DirectoryExists")
	}
	nested := filepath.Join(dir, "a", "b")
	if err := CreateDirectoryIfNotExists(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if exists, _ := DirectoryExists(nested); !exists {
		t.Errorf("expected %s to be created", nested)
	}
	if err := CreateDirectoryIfNotExists(nested, 0755); err != nil {
		t.Errorf("second create should be a no-op, got %v", err)
	}
}

func TestAbsPath(t *testing.T) {
	abs, err := AbsPath("relative")
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(abs) {
		t.Errorf("expected absolute path, got %s", abs)
	}
	if ExpandUser("/tmp/x") != "/tmp/x" {
		t.Errorf("absolute path should not change")
	}
}
