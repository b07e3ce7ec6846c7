/*
Package util includes utility/helper functions that may be useful to other modules.
*/
package util

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// ExpandUser expands '~' to user's home directory, if found, otherwise returns original path
func ExpandUser(path string) string {
	usr, err := user.Current()
	if err != nil {
		return path
	}
	if path == "~" {
		return usr.HomeDir
	} else if strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return filepath.Join(usr.HomeDir, path[2:])
	} else {
		return path
	}
}

// AbsPath returns absolute path after expanding '~' to user's home dir
// Use everywhere in place of filepath.Abs()
func AbsPath(path string) (string, error) {
	return filepath.Abs(ExpandUser(path))
}

// FileExists checks if a file exists at the given path.
// It returns a boolean indicating whether the file exists, and an error if the
// path refers to a non-regular file, e.g., a directory.
func FileExists(path string) (exists bool, err error) {
	var fileInfo fs.FileInfo
	fileInfo, err = os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			exists = false
			err = nil
			return
		}
		return
	}
	if !fileInfo.Mode().IsRegular() {
		err = fmt.Errorf("%s not a file", path)
		return
	}
	exists = true
	return
}

// DirectoryExists checks if the specified directory exists.
// It returns a boolean indicating whether the directory exists and an error if the
// path refers to anything other than a directory, e.g., a regular file.
func DirectoryExists(path string) (exists bool, err error) {
	var fileInfo fs.FileInfo
	fileInfo, err = os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			exists = false
			err = nil
			return
		}
		return
	}
	if !fileInfo.Mode().IsDir() {
		err = fmt.Errorf("%s not a directory", path)
		return
	}
	exists = true
	return
}

// CreateDirectoryIfNotExists creates a directory at the specified path if it does not already exist.
func CreateDirectoryIfNotExists(dir string, perm os.FileMode) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	}
	if err := os.MkdirAll(dir, perm); err != nil {
		return fmt.Errorf("failed to create directory: '%s', error: '%s'", dir, err.Error())
	}
	return nil
}

// UniqueAppend appends an item to a slice if it is not already present
func UniqueAppend[T comparable](slice []T, item T) []T {
	if slices.Contains(slice, item) {
		return slice
	}
	return append(slice, item)
}

// IsValidHex checks if a string is a valid hex string
// Valid hex strings are non-empty, optionally prefixed with "0x" or "0X",
// and contain only valid hex characters (0-9, a-f, A-F).
func IsValidHex(hexStr string) bool {
	if strings.HasPrefix(hexStr, "0x") || strings.HasPrefix(hexStr, "0X") {
		hexStr = hexStr[2:]
	}
	_, err := strconv.ParseUint(hexStr, 16, 64)
	return err == nil
}

// ParseUint32 parses a decimal integer or a "0x" prefixed hex integer that fits in
// 32 bits.
func ParseUint32(s string) (uint32, error) {
	base, digits := 10, s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if !IsValidHex(s) {
			return 0, fmt.Errorf("invalid hex value: %s", s)
		}
		base, digits = 16, s[2:]
	}
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value: %s", s)
	}
	return uint32(v), nil
}

// IntRange is an inclusive range of integers.
type IntRange struct {
	Start uint32
	End   uint32
}

var intRangeRe = regexp.MustCompile(`^(0[xX][0-9a-fA-F]+|\d+)(?:-(0[xX][0-9a-fA-F]+|\d+))?$`)

// ParseIntRange parses a string representing a range of integers.
// For example, "1-3" is {1, 3}, "0x40-0x42" is {64, 66} and "5" is {5, 5}.
// If the input string is not in a valid format, it returns an error.
func ParseIntRange(input string) (IntRange, error) {
	matches := intRangeRe.FindStringSubmatch(input)
	if len(matches) == 0 {
		return IntRange{}, fmt.Errorf("invalid input format: %s", input)
	}
	start, err := ParseUint32(matches[1])
	if err != nil {
		return IntRange{}, fmt.Errorf("invalid start value: %s", matches[1])
	}
	// if end value is empty, the range holds only the start value
	if matches[2] == "" {
		return IntRange{Start: start, End: start}, nil
	}
	end, err := ParseUint32(matches[2])
	if err != nil {
		return IntRange{}, fmt.Errorf("invalid end value: %s", matches[2])
	}
	if start > end {
		return IntRange{}, fmt.Errorf("start value is greater than end value: %d > %d", start, end)
	}
	return IntRange{Start: start, End: end}, nil
}

// ParseSelectiveIntRange parses a comma separated list of ranges, e.g.,
// "1-3,7,9,11-13". Ranges are returned unexpanded.
// An error is returned if the input string is not in a valid format.
func ParseSelectiveIntRange(input string) ([]IntRange, error) {
	var result []IntRange
	for r := range strings.SplitSeq(input, ",") {
		intRange, err := ParseIntRange(r)
		if err != nil {
			return nil, err
		}
		result = append(result, intRange)
	}
	return result, nil
}
