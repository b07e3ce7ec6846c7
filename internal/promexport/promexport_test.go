// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package promexport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpudesc/internal/cpuid"
	"cpudesc/internal/features"
	"cpudesc/internal/procdesc"
)

func cascadeLake(t *testing.T) (procdesc.Descriptor, procdesc.Identification) {
	t.Helper()
	q, err := cpuid.LoadReplay("../cpuid/testdata/cascadelake.yaml")
	require.NoError(t, err)
	d, err := procdesc.Describe(q)
	require.NoError(t, err)
	return d, procdesc.Identify(q)
}

func TestWriteTextfile(t *testing.T) {
	d, id := cascadeLake(t)
	path := filepath.Join(t.TempDir(), "cpudesc.prom")
	require.NoError(t, WriteTextfile(path, d, id))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)
	for _, line := range []string{
		"# TYPE cpudesc_feature_present gauge",
		`cpudesc_feature_present{index="0",name="fpu"} 1`,
		`cpudesc_feature_present{index="96",name="fsgsbase"} 1`,
		`cpudesc_feature_present{index="98",name="sgx"} 0`,
		`cpudesc_feature_present{index="68",name="avx10.1"} 0`,
		`cpudesc_processor_info{code="CLX",family="0x6",model="0x55",processor="Cascade Lake",stepping="7",vendor="GenuineIntel"} 1`,
	} {
		assert.Contains(t, text, line+"\n")
	}
	assert.NotContains(t, text, `name="null"`)
	assert.NotContains(t, text, `index="66"`, "synthesized state slots are reserved")

	samples := strings.Count(text, "cpudesc_feature_present{")
	assert.Equal(t, len(features.Named()), samples)
	assert.Contains(t, text, "cpudesc_feature_count ")
}

func TestFeatureCountMatchesDescriptor(t *testing.T) {
	d, id := cascadeLake(t)
	reg := prometheus.NewRegistry()
	require.NoError(t, NewCollectors(d, id).Register(reg))
	families, err := reg.Gather()
	require.NoError(t, err)

	var count float64
	var present float64
	for _, mf := range families {
		switch mf.GetName() {
		case "cpudesc_feature_count":
			count = mf.GetMetric()[0].GetGauge().GetValue()
		case "cpudesc_feature_present":
			for _, m := range mf.GetMetric() {
				present += m.GetGauge().GetValue()
			}
		}
	}
	assert.Equal(t, float64(d.Features.Names().Cardinality()), count)
	assert.Equal(t, count, present)
}

func TestRegisterTwiceFails(t *testing.T) {
	d, id := cascadeLake(t)
	reg := prometheus.NewRegistry()
	require.NoError(t, NewCollectors(d, id).Register(reg))
	err := NewCollectors(d, id).Register(reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to register metric")
}

func TestWriteTextfileBadPath(t *testing.T) {
	d, id := cascadeLake(t)
	err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "cpudesc.prom"), d, id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write metrics")
}

func TestHandler(t *testing.T) {
	d, id := cascadeLake(t)
	handler, err := Handler(d, id)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `cpudesc_feature_present{index="0",name="fpu"} 1`)
}

func TestServeStopsWithContext(t *testing.T) {
	d, id := cascadeLake(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.NoError(t, Serve(ctx, "127.0.0.1:0", d, id))
}

func TestServeBadAddress(t *testing.T) {
	d, id := cascadeLake(t)
	assert.Error(t, Serve(context.Background(), "127.0.0.1:-1", d, id))
}
