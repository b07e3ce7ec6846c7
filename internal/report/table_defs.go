package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// table_defs.go defines the tables used for generating reports

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cpudesc/internal/cpus"
	"cpudesc/internal/features"
	"cpudesc/internal/table"
)

const (
	ProcessorTableName      = "Processor"
	FeatureSummaryTableName = "Feature Summary"
	ISATableName            = "Instruction Set Extensions"
	FeatureFlagsTableName   = "Feature Flags"
	FeatureWordsTableName   = "Feature Words"
	FeaturesTableName       = "Features"
)

var tableDefinitions = map[string]table.TableDefinition{
	ProcessorTableName: {
		Name:       ProcessorTableName,
		FieldsFunc: processorTableValues,
	},
	FeatureSummaryTableName: {
		Name:       FeatureSummaryTableName,
		FieldsFunc: featureSummaryTableValues,
	},
	ISATableName: {
		Name:       ISATableName,
		HasRows:    true,
		FieldsFunc: isaTableValues,
	},
	FeatureFlagsTableName: {
		Name:                  FeatureFlagsTableName,
		FieldsFunc:            featureFlagsTableValues,
		NoDataFound:           "No features reported.",
		TextTableRendererFunc: wrappedWordsTextRenderer,
		XlsxTableRendererFunc: featureFlagsXlsxRenderer,
	},
	FeatureWordsTableName: {
		Name:       FeatureWordsTableName,
		HasRows:    true,
		FieldsFunc: featureWordsTableValues,
	},
	FeaturesTableName: {
		Name:        FeaturesTableName,
		HasRows:     true,
		FieldsFunc:  featuresTableValues,
		NoDataFound: "No features reported.",
	},
}

// DescribeTableNames lists the tables of a describe report, in order.
var DescribeTableNames = []string{
	ProcessorTableName,
	FeatureSummaryTableName,
	ISATableName,
	FeatureFlagsTableName,
	FeatureWordsTableName,
	FeaturesTableName,
}

// GetTableByName retrieves a table definition by its name.
func GetTableByName(name string) table.TableDefinition {
	if t, ok := tableDefinitions[name]; ok {
		return t
	}
	panic(fmt.Sprintf("table not found: %s", name))
}

// GetTables retrieves the table definitions for the given names.
func GetTables(names []string) []table.TableDefinition {
	tables := make([]table.TableDefinition, 0, len(names))
	for _, name := range names {
		tables = append(tables, GetTableByName(name))
	}
	return tables
}

func hex(v uint32) string {
	return fmt.Sprintf("0x%x", v)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func splitWords(s string) []string {
	return strings.Fields(s)
}

func processorTableValues(source table.Source) []table.Field {
	d, id := source.Descriptor, source.Identification
	return []table.Field{
		{Name: "Vendor ID", Values: []string{id.VendorID}},
		{Name: "Processor", Values: []string{d.Processor.String()}},
		{Name: "Code", Values: []string{d.Processor.Code()}},
		{Name: "Physical Processor", Values: []string{d.PhysicalProcessor.String()}},
		{Name: "Vendor", Values: []string{d.Processor.Vendor().String()}},
		{Name: "Family", Values: []string{hex(id.Fields.DisplayFamily())}},
		{Name: "Model", Values: []string{hex(id.Fields.DisplayModel())}},
		{Name: "Stepping", Values: []string{strconv.Itoa(int(id.Fields.Stepping))}},
		{Name: "Signature", Values: []string{fmt.Sprintf("0x%08x", id.Signature)}},
		{Name: "Max Leaf", Values: []string{hex(id.MaxLeaf)}},
	}
}

// avx10Version returns the highest converged AVX10 version reported.
func avx10Version(b features.Bitmap) string {
	switch {
	case b.Has(features.AVX10_2):
		return "10.2"
	case b.Has(features.AVX10_1):
		return "10.1"
	case b.Has(features.AVX10):
		return "10.0"
	}
	return "None"
}

func avx10VectorLengths(b features.Bitmap) string {
	var lengths []string
	for _, l := range []struct {
		feature features.Feature
		bits    string
	}{
		{features.AVX10_128, "128"},
		{features.AVX10_256, "256"},
		{features.AVX10_512, "512"},
	} {
		if b.Has(l.feature) {
			lengths = append(lengths, l.bits)
		}
	}
	if len(lengths) == 0 {
		return "None"
	}
	return strings.Join(lengths, ", ")
}

func xsaveState(b features.Bitmap) string {
	var states []string
	for _, s := range []struct {
		feature features.Feature
		name    string
	}{
		{features.XSAVESSE, "SSE"},
		{features.XSAVEAVX, "AVX"},
		{features.XSAVEAVX512, "AVX-512"},
		{features.XSAVEAPX, "APX"},
	} {
		if b.Has(s.feature) {
			states = append(states, s.name)
		}
	}
	if len(states) == 0 {
		return "None"
	}
	return strings.Join(states, ", ")
}

func featureSummaryTableValues(source table.Source) []table.Field {
	d := source.Descriptor
	p := message.NewPrinter(language.English)
	named := len(features.Named())
	present := d.Features.Names().Cardinality()
	return []table.Field{
		{Name: "Processor", Values: []string{d.Processor.String()}},
		{Name: "Features Present", Values: []string{p.Sprintf("%d of %d", present, named)}},
		{Name: "Reserved Slots", Values: []string{p.Sprintf("%d", features.Count-named)}},
		{Name: "Intel 64 Baseline", Values: []string{yesNo(d.Has(features.SSE2) && d.Has(features.CMPXCHG16B))}},
		{Name: "AVX2", Values: []string{yesNo(d.Has(features.AVX2) && d.Has(features.XSAVEAVX))}},
		{Name: "AVX-512", Values: []string{yesNo(d.Has(features.AVX512F) && d.Has(features.XSAVEAVX512))}},
		{Name: "AVX10 Version", Values: []string{avx10Version(d.Features)}},
		{Name: "AVX10 Vector Lengths", Values: []string{avx10VectorLengths(d.Features)}},
		{Name: "APX", Values: []string{yesNo(d.Has(features.APX) && d.Has(features.XSAVEAPX))}},
		{Name: "XSAVE State", Values: []string{xsaveState(d.Features)}},
		{Name: "Classified", Values: []string{yesNo(d.Processor != cpus.Unknown)}},
	}
}

func featureFlagsTableValues(source table.Source) []table.Field {
	var names []string
	for _, f := range source.Descriptor.Features.Active() {
		if name := features.Name(f); name != features.NullName {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return []table.Field{}
	}
	return []table.Field{
		{Name: "Flags", Values: []string{strings.Join(names, " ")}},
	}
}

// wordSources names the register each bitmap word is copied from.
var wordSources = [features.Words]string{
	"CPUID.(01H).EDX",
	"CPUID.(01H).ECX",
	"XCR0, CPUID.(24H,0).EBX",
	"CPUID.(07H,0).EBX",
	"CPUID.(07H,0).ECX",
	"CPUID.(07H,1).EAX",
	"CPUID.(07H,1).EDX",
}

func featureWordsTableValues(source table.Source) []table.Field {
	fields := []table.Field{
		{Name: "Word"},
		{Name: "Source"},
		{Name: "Value"},
		{Name: "Set Bits"},
	}
	for word, value := range source.Descriptor.Features {
		set := 0
		for bit := range 32 {
			if value&(1<<bit) != 0 {
				set++
			}
		}
		fields[0].Values = append(fields[0].Values, strconv.Itoa(word))
		fields[1].Values = append(fields[1].Values, wordSources[word])
		fields[2].Values = append(fields[2].Values, fmt.Sprintf("0x%08x", value))
		fields[3].Values = append(fields[3].Values, strconv.Itoa(set))
	}
	return fields
}

func featuresTableValues(source table.Source) []table.Field {
	fields := []table.Field{
		{Name: "Index"},
		{Name: "Name"},
		{Name: "Word"},
		{Name: "Bit"},
	}
	for _, f := range source.Descriptor.Features.Active() {
		name := features.Name(f)
		if name == features.NullName {
			continue
		}
		fields[0].Values = append(fields[0].Values, strconv.Itoa(int(f)))
		fields[1].Values = append(fields[1].Values, name)
		fields[2].Values = append(fields[2].Values, strconv.Itoa(f.Word()))
		fields[3].Values = append(fields[3].Values, strconv.Itoa(int(f.Bit())))
	}
	return fields
}
