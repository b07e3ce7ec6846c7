// Package common defines data structures and functions that are used by multiple
// application commands, e.g., describe, features, check, export.
package common

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cpudesc/internal/cpuid"
	"cpudesc/internal/procdesc"
	"cpudesc/internal/report"
	"cpudesc/internal/table"
	"cpudesc/internal/util"
)

var AppName = filepath.Base(os.Args[0])

// AppContext represents the application context that can be accessed from all commands.
type AppContext struct {
	Timestamp     string // Timestamp is the application start time.
	OutputDir     string // OutputDir is the directory where the application will write output files.
	OutputDirFlag bool   // OutputDirFlag is true when OutputDir was chosen on the command line.
	LogFilePath   string // LogFilePath is empty when logging to syslog or stdout.
	Version       string // Version is the version of the application.
	Debug         bool
}

type Flag struct {
	Name string
	Help string
}
type FlagGroup struct {
	GroupName string
	Flags     []Flag
}

// UsageFunc returns a cobra usage function that prints the flags in the groups
// returned by getFlagGroups followed by the global flags.
func UsageFunc(getFlagGroups func() []FlagGroup) func(*cobra.Command) error {
	return func(cmd *cobra.Command) error {
		cmd.Printf("Usage: %s\n\n", cmd.UseLine())
		if cmd.Example != "" {
			cmd.Printf("Examples:\n%s\n\n", cmd.Example)
		}
		groups := getFlagGroups()
		if len(groups) > 0 {
			cmd.Println("Flags:")
		}
		for _, group := range groups {
			cmd.Printf("  %s:\n", group.GroupName)
			for _, flag := range group.Flags {
				flagDefault := ""
				if f := cmd.Flags().Lookup(flag.Name); f != nil && f.DefValue != "" && f.DefValue != "[]" && f.DefValue != "false" {
					flagDefault = fmt.Sprintf(" (default: %s)", f.DefValue)
				}
				cmd.Printf("    --%-20s %s%s\n", flag.Name, flag.Help, flagDefault)
			}
		}
		if cmd.HasParent() {
			cmd.Println("\nGlobal Flags:")
			cmd.Parent().PersistentFlags().VisitAll(func(pf *pflag.Flag) {
				flagDefault := ""
				if pf.DefValue != "" && pf.DefValue != "false" {
					flagDefault = fmt.Sprintf(" (default: %s)", pf.DefValue)
				}
				cmd.Printf("  --%-20s %s%s\n", pf.Name, pf.Usage, flagDefault)
			})
		}
		return nil
	}
}

// TableNameApplication is appended to every report.
const TableNameApplication = "Application"

// HostSourceName names reports describing the processor the application runs on.
const HostSourceName = "localhost"

var (
	FlagInput  string
	FlagFormat []string
)

const (
	FlagInputName  = "input"
	FlagFormatName = "format"
)

// AddInputFlag adds the snapshot replay flag to cmd.
func AddInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&FlagInput, FlagInputName, "", "")
}

// GetInputFlag returns the help entry for the flag added by AddInputFlag.
func GetInputFlag() Flag {
	return Flag{
		Name: FlagInputName,
		Help: "decode a CPUID snapshot file (see 'snapshot') instead of this processor",
	}
}

// ValidateInputFlag confirms that the --input file, if given, exists.
func ValidateInputFlag(cmd *cobra.Command) error {
	if FlagInput == "" {
		return nil
	}
	exists, err := util.FileExists(FlagInput)
	if err != nil {
		return FlagValidationError(cmd, fmt.Sprintf("failed to check input file: %v", err))
	}
	if !exists {
		return FlagValidationError(cmd, fmt.Sprintf("input file %s does not exist", FlagInput))
	}
	return nil
}

// GetAppContext returns the application context set by the root command. A zero
// AppContext is returned when none was set.
func GetAppContext(cmd *cobra.Command) AppContext {
	for c := cmd; c != nil; c = c.Parent() {
		ctx := c.Context()
		if ctx == nil {
			continue
		}
		if appContext, ok := ctx.Value(AppContext{}).(AppContext); ok {
			return appContext
		}
	}
	return AppContext{}
}

// GetQuerier returns a replay of the snapshot file named by input or, when input
// is empty, the processor the application is running on. The name identifies the
// source in report file names.
func GetQuerier(input string) (q cpuid.Querier, name string, err error) {
	if input == "" {
		return cpuid.Live{}, HostSourceName, nil
	}
	replay, err := cpuid.LoadReplay(input)
	if err != nil {
		return nil, "", err
	}
	name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return replay, name, nil
}

// GetSource describes the processor selected by input.
func GetSource(input string) (source table.Source, name string, err error) {
	q, name, err := GetQuerier(input)
	if err != nil {
		return
	}
	d, err := procdesc.Describe(q)
	if err != nil {
		return
	}
	source = table.Source{Descriptor: d, Identification: procdesc.Identify(q)}
	return
}

// ReportError prints err the way every command reports a failure and keeps
// cobra from printing usage after it.
func ReportError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	slog.Error(err.Error())
	cmd.SilenceUsage = true
	return err
}

// FlagValidationError is used to report an error with a flag
func FlagValidationError(cmd *cobra.Command, msg string) error {
	err := errors.New(msg)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	fmt.Fprintf(os.Stderr, "See '%s --help' for usage details.\n", cmd.CommandPath())
	cmd.SilenceUsage = true
	return err
}

// CreateOutputDir creates the output directory if it does not exist
func CreateOutputDir(outputDir string) error {
	err := util.CreateDirectoryIfNotExists(outputDir, 0755) // #nosec G301
	if err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// WriteReport writes report bytes to reportPath.
func WriteReport(reportBytes []byte, reportPath string) error {
	err := os.WriteFile(reportPath, reportBytes, 0644) // #nosec G306
	if err != nil {
		return fmt.Errorf("failed to write report file: %v", err)
	}
	return nil
}

type ReportingCommand struct {
	Cmd            *cobra.Command
	ReportNamePost string
	TableNames     []string
	Formats        []string
}

// Run is the common flow for commands that render report tables. The processor
// comes from FlagInput.
func (rc *ReportingCommand) Run() error {
	appContext := GetAppContext(rc.Cmd)
	source, sourceName, err := GetSource(FlagInput)
	if err != nil {
		return ReportError(rc.Cmd, fmt.Errorf("failed to describe processor: %w", err))
	}
	formats := rc.Formats
	if slices.Contains(formats, report.FormatAll) {
		formats = report.FormatOptions
	}
	allTableValues := table.ProcessTables(report.GetTables(rc.TableNames), source)
	allTableValues = append(allTableValues, applicationTableValues(appContext, sourceName))
	out := rc.Cmd.OutOrStdout()
	// a lone text report goes to stdout unless the user asked for files
	if len(formats) == 1 && formats[0] == report.FormatTxt && !appContext.OutputDirFlag {
		reportBytes, err := report.Create(report.FormatTxt, allTableValues)
		if err != nil {
			return ReportError(rc.Cmd, fmt.Errorf("failed to create report: %w", err))
		}
		fmt.Fprint(out, string(reportBytes))
		return nil
	}
	if err := CreateOutputDir(appContext.OutputDir); err != nil {
		return ReportError(rc.Cmd, err)
	}
	var reportFilePaths []string
	for _, format := range formats {
		reportBytes, err := report.Create(format, allTableValues)
		if err != nil {
			return ReportError(rc.Cmd, fmt.Errorf("failed to create report: %w", err))
		}
		if len(formats) == 1 && format == report.FormatTxt {
			fmt.Fprintf(out, "%s:\n", sourceName)
			fmt.Fprint(out, string(reportBytes))
		}
		post := ""
		if rc.ReportNamePost != "" {
			post = "_" + rc.ReportNamePost
		}
		reportPath := filepath.Join(appContext.OutputDir, sourceName+post+report.FileExtension(format))
		if err := WriteReport(reportBytes, reportPath); err != nil {
			return ReportError(rc.Cmd, fmt.Errorf("failed to write report: %w", err))
		}
		slog.Info("report written", slog.String("path", reportPath))
		reportFilePaths = append(reportFilePaths, reportPath)
	}
	if len(reportFilePaths) > 0 {
		fmt.Fprintln(out, "Report files:")
	}
	for _, reportFilePath := range reportFilePaths {
		fmt.Fprintf(out, "  %s\n", reportFilePath)
	}
	return nil
}

func applicationTableValues(appContext AppContext, sourceName string) table.TableValues {
	return table.TableValues{
		TableDefinition: table.TableDefinition{
			Name: TableNameApplication,
		},
		Fields: []table.Field{
			{Name: "Name", Values: []string{AppName}},
			{Name: "Version", Values: []string{appContext.Version}},
			{Name: "Source", Values: []string{sourceName}},
		},
	}
}
