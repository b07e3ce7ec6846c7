// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package table provides functions for accessing and processing table definitions.
package table

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/xuri/excelize/v2"

	"cpudesc/internal/procdesc"
)

// Field represents the values for a field in a table
type Field struct {
	Name        string
	Description string // optional description of the field
	Values      []string
}

// TableValues combines the table definition with the resulting fields and their values
type TableValues struct {
	TableDefinition
	Fields []Field
}

// Source is everything a table can draw from: the descriptor and the raw identity
// it was built from.
type Source struct {
	Descriptor     procdesc.Descriptor
	Identification procdesc.Identification
}

type FieldsRetriever func(Source) []Field
type TextTableRenderer func(TableValues) string
type XlsxTableRenderer func(TableValues, *excelize.File, string, *int)

// TableDefinition defines the structure of a table in the report
type TableDefinition struct {
	Name    string
	Vendors []string // vendors, e.g., GenuineIntel, AuthenticAMD. If empty, it will be present for all vendors.
	// Fields function is called to retrieve field values from the source
	FieldsFunc  FieldsRetriever
	HasRows     bool   // table is meant to be displayed in row form, i.e., a field may have multiple values
	NoDataFound string // message to display when no data is found
	// optional renderers that replace the default for one format
	TextTableRendererFunc TextTableRenderer
	XlsxTableRendererFunc XlsxTableRenderer
}

// IsTableForSource checks if the given table applies to the processor in source
func IsTableForSource(table TableDefinition, source Source) bool {
	if len(table.Vendors) > 0 && !slices.Contains(table.Vendors, source.Identification.VendorID) {
		return false
	}
	return true
}

// ProcessTables processes the given tables and source to generate table values.
// Tables that do not apply to the source are skipped.
func ProcessTables(tables []TableDefinition, source Source) (allTableValues []TableValues) {
	for _, table := range tables {
		if !IsTableForSource(table, source) {
			slog.Debug("table does not apply", slog.String("table", table.Name), slog.String("vendor", source.Identification.VendorID))
			continue
		}
		allTableValues = append(allTableValues, GetValuesForTable(table, source))
	}
	return
}

// GetFieldIndex returns the index of a field with the given name in the TableValues structure.
// Returns:
//   - int: The index of the field if found and valid, -1 otherwise
//   - error: nil if successful, an error describing the issue otherwise
func GetFieldIndex(fieldName string, tableValues TableValues) (int, error) {
	for i, field := range tableValues.Fields {
		if field.Name == fieldName {
			if len(field.Values) == 0 {
				return -1, fmt.Errorf("field [%s] does not have associated value(s)", field.Name)
			}
			return i, nil
		}
	}
	return -1, fmt.Errorf("field [%s] not found in table [%s]", fieldName, tableValues.Name)
}

// GetValuesForTable returns the fields and their values for the table
func GetValuesForTable(table TableDefinition, source Source) TableValues {
	// FieldsFunc can't be nil
	if table.FieldsFunc == nil {
		panic(fmt.Sprintf("table %s, FieldsFunc cannot be nil", table.Name))
	}
	tableValues := TableValues{
		TableDefinition: table,
		Fields:          table.FieldsFunc(source),
	}
	// sanity check
	if err := ValidateTableValues(tableValues); err != nil {
		slog.Error("table validation failed", "table", table.Name, "error", err)
		return TableValues{
			TableDefinition: table,
			Fields:          []Field{},
		}
	}
	return tableValues
}

// ValidateTableValues checks that the table is named, every field is named, and
// every field has the same number of values.
func ValidateTableValues(tableValues TableValues) error {
	if tableValues.Name == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	// no field values is a valid state
	if len(tableValues.Fields) == 0 {
		return nil
	}
	// field names cannot be empty
	for i, field := range tableValues.Fields {
		if field.Name == "" {
			return fmt.Errorf("table %s, field %d, name cannot be empty", tableValues.Name, i)
		}
	}
	// the number of entries in each field must be the same
	numEntries := len(tableValues.Fields[0].Values)
	for i, field := range tableValues.Fields {
		if len(field.Values) != numEntries {
			return fmt.Errorf("table %s, field %d, %s, number of entries must be the same for all fields, expected %d, got %d", tableValues.Name, i, field.Name, numEntries, len(field.Values))
		}
	}
	return nil
}
