package cmd

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		if c.Name() == "" || c.Hidden {
			continue
		}
		names = append(names, c.Name())
		assert.True(t, rootCmd.ContainsGroup(c.GroupID), "command %s has unknown group %q", c.Name(), c.GroupID)
	}
	for _, want := range []string{"describe", "features", "lookup", "check", "snapshot", "export", "verify"} {
		assert.Contains(t, names, want)
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{flagDebugName, flagSyslogName, flagLogStdOutName, flagOutputDirName} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}
