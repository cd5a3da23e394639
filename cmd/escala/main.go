// Package main provides the CLI entry point for escala-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "escala",
		Short: "Extract shift schedules from block-structured Excel files",
		Long: `escala-go finds vehicle blocks in a schedule workbook and extracts
Frota, Placa, Rota, Motorista, Ajudante 1, Ajudante 2 and Largada for each one.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newExtractCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
