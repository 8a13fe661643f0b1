package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/habitrack/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagExportFormat string
	flagExportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every habit and completion as JSON or YAML",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFormat, "format", store.FormatJSON, "Output format: json or yaml")
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	var w io.Writer = os.Stdout
	if flagExportOutput != "" {
		//nolint:gosec // output path is chosen by the local user
		f, err := os.Create(flagExportOutput)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := store.Export(w, s.tr.Snapshot(), flagExportFormat); err != nil {
		return err
	}

	if flagExportOutput != "" && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Exported %d habits to %s\n", s.tr.Len(), flagExportOutput)
	}
	return nil
}
