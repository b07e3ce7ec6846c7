//go:build !windows && !plan9

package cmd

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSyslogRecord(t *testing.T) {
	r := slog.NewRecord(time.Now(), slog.LevelWarn, "cross-check mismatch", 0)
	r.AddAttrs(slog.String("item", "apx"), slog.Int("count", 2))
	assert.Equal(t, `level=WARN msg="cross-check mismatch" item="apx" count="2"`, formatSyslogRecord(r, true))
}
