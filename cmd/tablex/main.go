// Package main provides the CLI entry point for tablex.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shangtechnology/excel-table-extractor/internal/logging"
	"github.com/shangtechnology/excel-table-extractor/pkg/tablex"
	"github.com/shangtechnology/excel-table-extractor/pkg/tablex/models"
	"github.com/shangtechnology/excel-table-extractor/pkg/tablex/output"
)

var (
	keywords   []string
	format     string
	pretty     bool
	outputPath string
	sheetsDir  string
	sheetName  string
	stream     bool
	verbose    bool
	seqURL     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tablex [input.xlsx]",
		Short: "Extract embedded tables from Excel sheets",
		Long: `tablex finds the tables buried in loosely-structured Excel sheets,
detects each table's header row, aligns the data rows beneath it, and
emits one clean table per block.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringSliceVar(&keywords, "keywords", tablex.DefaultKeywords(),
		"Comma-separated header keywords (case-insensitive substrings)")
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format: json, toon, text")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Extract only the named sheet")
	rootCmd.Flags().BoolVar(&stream, "stream", false, "Use the streaming reader for large workbooks")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging (per-row classification)")
	rootCmd.Flags().StringVar(&seqURL, "seq-url", "", "Ship logs to a Seq server at this URL")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	logger, closeLogs := logging.Setup(verbose, seqURL)
	defer closeLogs()

	opts := tablex.Options{
		HeaderKeywords: keywords,
		Logger:         logger,
	}

	var (
		wb  *models.WorkbookTables
		err error
	)
	if stream {
		wb, err = tablex.ExtractStream(inputPath, opts)
	} else {
		wb, err = tablex.ExtractFile(inputPath, opts)
	}
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if sheetName != "" {
		sheet, ok := wb.Sheets[sheetName]
		if !ok {
			return fmt.Errorf("sheet not found: %s", sheetName)
		}
		wb.Sheets = map[string]models.SheetTables{sheetName: sheet}
	}

	if sheetsDir != "" {
		return writeSheetFiles(wb, sheetsDir)
	}
	return writeResult(cmd, wb)
}

func writeResult(cmd *cobra.Command, wb *models.WorkbookTables) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		data, err = output.ToJSON(wb, pretty)
	case "toon":
		var s string
		s, err = output.ToTOON(wb)
		data = []byte(s)
	case "text":
		data, err = renderAll(wb)
	default:
		return fmt.Errorf("invalid format: %s (must be json, toon, or text)", format)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, data, 0644)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func renderAll(wb *models.WorkbookTables) ([]byte, error) {
	names := make([]string, 0, len(wb.Sheets))
	for name := range wb.Sheets {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		for i, t := range wb.Sheets[name].Tables {
			fmt.Fprintf(&sb, "%s: table %d (header row %d)\n", name, i+1, t.Header.Row+1)
			if err := output.RenderText(&sb, t); err != nil {
				return nil, err
			}
			sb.WriteString("\n")
		}
	}
	return []byte(sb.String()), nil
}

func writeSheetFiles(wb *models.WorkbookTables, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for name, sheet := range wb.Sheets {
		data, err := output.SheetToJSON(&sheet, pretty)
		if err != nil {
			return err
		}
		filename := filepath.Join(dir, name+".json")
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return err
		}
	}
	return nil
}
