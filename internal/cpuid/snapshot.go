// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package cpuid

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Snapshot is a recorded set of identification query results. Register words are
// stored as hex strings so the files stay readable next to vendor documentation.
type Snapshot struct {
	Comment string         `yaml:"comment,omitempty"`
	Leaves  []SnapshotLeaf `yaml:"leaves"`
	XCR     []SnapshotXCR  `yaml:"xcr,omitempty"`
}

// SnapshotLeaf is one CPUID (leaf, subleaf) result.
type SnapshotLeaf struct {
	Leaf    string `yaml:"leaf"`
	Subleaf string `yaml:"subleaf"`
	EAX     string `yaml:"eax"`
	EBX     string `yaml:"ebx"`
	ECX     string `yaml:"ecx"`
	EDX     string `yaml:"edx"`
}

// SnapshotXCR is one extended control register value.
type SnapshotXCR struct {
	Index string `yaml:"index"`
	Value string `yaml:"value"`
}

// Key selects one CPUID result.
type Key struct {
	Leaf    uint32
	Subleaf uint32
}

// Static answers queries from fixed tables, typically loaded from a snapshot.
// Queries that are not in the table return zero registers, the same thing
// hardware returns for an invalid subleaf.
type Static struct {
	Leaves map[Key]Registers
	XCR    map[uint32]uint64
}

func (s *Static) CPUID(leaf, subleaf uint32) Registers {
	return s.Leaves[Key{leaf, subleaf}]
}

func (s *Static) XGETBV(index uint32) uint64 {
	return s.XCR[index]
}

func hex32(v uint32) string {
	return fmt.Sprintf("0x%08x", v)
}

func hex64(v uint64) string {
	return fmt.Sprintf("0x%016x", v)
}

func parseHex(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid register value %q: %v", s, err)
	}
	return v, nil
}

// Querier converts the snapshot into a Static querier.
func (s Snapshot) Querier() (*Static, error) {
	r := &Static{
		Leaves: make(map[Key]Registers, len(s.Leaves)),
		XCR:    make(map[uint32]uint64, len(s.XCR)),
	}
	for i, l := range s.Leaves {
		var words [6]uint64
		for j, field := range []string{l.Leaf, l.Subleaf, l.EAX, l.EBX, l.ECX, l.EDX} {
			if field == "" && j == 1 { // subleaf may be omitted
				continue
			}
			v, err := parseHex(field, 32)
			if err != nil {
				return nil, errors.Wrapf(err, "leaf entry %d", i)
			}
			words[j] = v
		}
		key := Key{uint32(words[0]), uint32(words[1])}
		if _, dup := r.Leaves[key]; dup {
			return nil, fmt.Errorf("leaf entry %d: duplicate leaf %s subleaf %s", i, hex32(key.Leaf), hex32(key.Subleaf))
		}
		r.Leaves[key] = Registers{EAX: uint32(words[2]), EBX: uint32(words[3]), ECX: uint32(words[4]), EDX: uint32(words[5])}
	}
	for i, x := range s.XCR {
		index, err := parseHex(x.Index, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "xcr entry %d", i)
		}
		value, err := parseHex(x.Value, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "xcr entry %d", i)
		}
		r.XCR[uint32(index)] = value
	}
	return r, nil
}

// LoadSnapshot reads a YAML snapshot file.
func LoadSnapshot(path string) (Snapshot, error) {
	var s Snapshot
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return s, errors.Wrap(err, "failed to read snapshot")
	}
	if err = yaml.UnmarshalStrict(data, &s); err != nil {
		return s, errors.Wrapf(err, "failed to parse snapshot %s", path)
	}
	if len(s.Leaves) == 0 {
		return s, fmt.Errorf("snapshot %s contains no leaves", path)
	}
	return s, nil
}

// LoadReplay reads a YAML snapshot file and returns a querier for it.
func LoadReplay(path string) (*Static, error) {
	s, err := LoadSnapshot(path)
	if err != nil {
		return nil, err
	}
	r, err := s.Querier()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid snapshot %s", path)
	}
	return r, nil
}

// Marshal encodes the snapshot as YAML.
func (s Snapshot) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Save writes the snapshot to path.
func (s Snapshot) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return errors.Wrap(err, "failed to encode snapshot")
	}
	if err = os.WriteFile(path, data, 0644); err != nil { // #nosec G306
		return errors.Wrap(err, "failed to write snapshot")
	}
	return nil
}

// sortLeaves orders entries by leaf then subleaf so recorded files diff cleanly.
func sortLeaves(leaves map[Key]Registers) []SnapshotLeaf {
	keys := make([]Key, 0, len(leaves))
	for k := range leaves {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Key) int {
		if c := cmp.Compare(a.Leaf, b.Leaf); c != 0 {
			return c
		}
		return cmp.Compare(a.Subleaf, b.Subleaf)
	})
	out := make([]SnapshotLeaf, 0, len(keys))
	for _, k := range keys {
		r := leaves[k]
		out = append(out, SnapshotLeaf{
			Leaf:    hex32(k.Leaf),
			Subleaf: hex32(k.Subleaf),
			EAX:     hex32(r.EAX),
			EBX:     hex32(r.EBX),
			ECX:     hex32(r.ECX),
			EDX:     hex32(r.EDX),
		})
	}
	return out
}
