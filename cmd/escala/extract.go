package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ukaji3/escala-go/internal/config"
	"github.com/ukaji3/escala-go/pkg/escala"
	"github.com/ukaji3/escala-go/pkg/escala/output"
	"github.com/ukaji3/escala-go/pkg/escala/parser"
)

type extractFlags struct {
	configPath string

	outputPath string
	format     string
	turno      string
	pretty     bool
	sheet      string

	inferNames     bool
	keyFieldsOnly  bool
	precedence     string
	headerLookback int
	fleetPrefixes  string
	printArea      bool
	verbose        bool
}

func newExtractCmd() *cobra.Command {
	var fl extractFlags

	cmd := &cobra.Command{
		Use:   "extract [input.xlsx]",
		Short: "Extract shift records from a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], fl)
		},
	}

	cmd.Flags().StringVar(&fl.configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVarP(&fl.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&fl.format, "format", "", "Output format: json, xlsx, csv (default: from output extension, else json)")
	cmd.Flags().StringVar(&fl.turno, "turno", "", "Shift written to every record: Noturno or Diurno")
	cmd.Flags().BoolVar(&fl.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&fl.sheet, "sheet", "", "Worksheet to read (default: active sheet)")
	cmd.Flags().BoolVar(&fl.inferNames, "infer-names", false, "Infer names from upper-case rows when no driver label exists")
	cmd.Flags().BoolVar(&fl.keyFieldsOnly, "key-fields-only", false, "Drop blocks without Frota, Placa, Rota or Motorista")
	cmd.Flags().StringVar(&fl.precedence, "label-precedence", "", "Repeated label handling: first or last")
	cmd.Flags().IntVar(&fl.headerLookback, "header-lookback", 0, "Rows above the block start searched for the vehicle id")
	cmd.Flags().StringVar(&fl.fleetPrefixes, "fleet-prefixes", "", "Letters a vehicle id may start with (default TV)")
	cmd.Flags().BoolVar(&fl.printArea, "print-area", false, "Only read cells inside the sheet's print area")
	cmd.Flags().BoolVarP(&fl.verbose, "verbose", "v", false, "Log extraction details")

	return cmd
}

func runExtract(cmd *cobra.Command, inputPath string, fl extractFlags) error {
	cfg, err := config.Load(fl.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("sheet") {
		cfg.Extraction.Sheet = fl.sheet
	}
	if flags.Changed("infer-names") {
		cfg.Extraction.InferNames = fl.inferNames
	}
	if flags.Changed("key-fields-only") && fl.keyFieldsOnly {
		cfg.Extraction.DegenerateBlocks = string(parser.DropWithoutKeyFields)
	}
	if flags.Changed("label-precedence") {
		cfg.Extraction.LabelPrecedence = fl.precedence
	}
	if flags.Changed("header-lookback") {
		cfg.Extraction.HeaderLookback = fl.headerLookback
	}
	if flags.Changed("fleet-prefixes") {
		cfg.Extraction.FleetPrefixes = fl.fleetPrefixes
	}
	if flags.Changed("print-area") {
		cfg.Extraction.RespectPrintArea = fl.printArea
	}
	if flags.Changed("turno") {
		cfg.Output.Turno = fl.turno
	}
	if fl.verbose {
		cfg.Log.Level = "debug"
	}

	if !output.ValidTurno(cfg.Output.Turno) {
		return fmt.Errorf("invalid turno: %s (must be %s or %s)", cfg.Output.Turno, output.TurnoNoturno, output.TurnoDiurno)
	}

	format, err := resolveFormat(fl.format, fl.outputPath)
	if err != nil {
		return err
	}

	logger := cfg.Logger()
	opts, err := cfg.Options(logger)
	if err != nil {
		return err
	}

	schedule, err := escala.Extract(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	if err := escala.CheckRecords(schedule); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(inputPath), err)
	}

	schedule.Records = output.ApplyTurno(schedule.Records, cfg.Output.Turno)

	var buf bytes.Buffer
	if err := output.Write(&buf, schedule, format, fl.pretty); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	outputPath := fl.outputPath
	if outputPath == "" && format == output.FormatXLSX {
		outputPath = output.FileName(cfg.Output.FilePrefix, time.Now(), format)
	}

	if outputPath == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%d blocks found, written to %s\n", len(schedule.Records), outputPath)
	return nil
}

// resolveFormat picks the explicit format, else the output file extension, else json.
func resolveFormat(format, outputPath string) (output.Format, error) {
	if format != "" {
		return output.ParseFormat(format)
	}
	if ext := filepath.Ext(outputPath); ext != "" {
		if f, err := output.ParseFormat(ext); err == nil {
			return f, nil
		}
	}
	return output.FormatJSON, nil
}
