// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name          string
		sig           uint32
		expected      Fields
		displayFamily uint32
		displayModel  uint32
	}{
		{
			name:          "cascade lake",
			sig:           0x00050657,
			expected:      Fields{Stepping: 7, Model: 5, Family: 6, ExtendedModel: 5},
			displayFamily: 6,
			displayModel:  85,
		},
		{
			name:          "sapphire rapids",
			sig:           0x000806f8,
			expected:      Fields{Stepping: 8, Model: 0xf, Family: 6, ExtendedModel: 8},
			displayFamily: 6,
			displayModel:  143,
		},
		{
			name:          "amd zen 4",
			sig:           0x00a10f11,
			expected:      Fields{Stepping: 1, Model: 1, Family: 0xf, ExtendedModel: 1, ExtendedFamily: 0xa},
			displayFamily: 25,
			displayModel:  17,
		},
		{
			name:          "amd k6 ignores extended model",
			sig:           0x00010580,
			expected:      Fields{Stepping: 0, Model: 8, Family: 5, ExtendedModel: 1},
			displayFamily: 5,
			displayModel:  8,
		},
		{
			name:          "processor type",
			sig:           0x00002000,
			expected:      Fields{ProcessorType: 2},
			displayFamily: 0,
			displayModel:  0,
		},
		{
			name:          "reserved bits ignored",
			sig:           0xf000c000,
			expected:      Fields{},
			displayFamily: 0,
			displayModel:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Decode(tt.sig)
			assert.Equal(t, tt.expected, f)
			assert.Equal(t, tt.displayFamily, f.DisplayFamily())
			assert.Equal(t, tt.displayModel, f.DisplayModel())
		})
	}
}

func TestFieldWidths(t *testing.T) {
	all := uint32(0xffffffff)
	assert.Equal(t, uint32(0xf), Stepping(all))
	assert.Equal(t, uint32(0xf), Model(all))
	assert.Equal(t, uint32(0xf), Family(all))
	assert.Equal(t, uint32(0x3), ProcessorType(all))
	assert.Equal(t, uint32(0xf), ExtendedModel(all))
	assert.Equal(t, uint32(0xff), ExtendedFamily(all))
	assert.Equal(t, uint32(0xff), Decode(all).CombinedModel())
}
