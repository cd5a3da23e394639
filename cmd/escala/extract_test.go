package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/escala-go/pkg/escala/models"
	"github.com/ukaji3/escala-go/pkg/escala/output"
)

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		format   string
		output   string
		expected output.Format
	}{
		{"", "", output.FormatJSON},
		{"", "out.xlsx", output.FormatXLSX},
		{"", "out.CSV", output.FormatCSV},
		{"", "out.txt", output.FormatJSON},
		{"csv", "out.xlsx", output.FormatCSV},
	}

	for _, tt := range tests {
		f, err := resolveFormat(tt.format, tt.output)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, f, "format %q output %q", tt.format, tt.output)
	}

	_, err := resolveFormat("pdf", "")
	assert.Error(t, err)
}

func writeWorkbook(t *testing.T, cells map[string]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for ref, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", ref, v))
	}

	path := filepath.Join(t.TempDir(), "escala.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newExtractCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestExtractCmdJSON(t *testing.T) {
	input := writeWorkbook(t, map[string]any{
		"A1": "V77",
		"B1": "JKL5M67",
		"A2": "MOTORISTA",
		"A3": "RITA",
		"C2": "Largada",
		"C3": "6h00",
	})

	out, err := runCmd(t, input, "--turno", "Diurno")
	require.NoError(t, err)

	var schedule models.Schedule
	require.NoError(t, json.Unmarshal([]byte(out), &schedule))
	require.Len(t, schedule.Records, 1)
	assert.Equal(t, models.Record{
		Frota:     "V77",
		Placa:     "JKL5M67",
		Motorista: "RITA",
		Turno:     "Diurno",
		Largada:   "06:00",
	}, schedule.Records[0])
}

func TestExtractCmdCSVFile(t *testing.T) {
	input := writeWorkbook(t, map[string]any{"A1": "T10", "A2": "4455"})
	target := filepath.Join(t.TempDir(), "out.csv")

	_, err := runCmd(t, input, "-o", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "Frota,Placa,Rota,Motorista,Ajudante 1,Ajudante 2,Turno,Largada\nT10,,04455,,,,Noturno,\n", string(data))
}

func TestExtractCmdErrors(t *testing.T) {
	empty := writeWorkbook(t, map[string]any{"A1": "nada"})

	_, err := runCmd(t, empty)
	assert.ErrorContains(t, err, "no blocks detected")

	_, err = runCmd(t, filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorContains(t, err, "file not found")

	_, err = runCmd(t, empty, "--turno", "Tarde")
	assert.ErrorContains(t, err, "invalid turno")
}
