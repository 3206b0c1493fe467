package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/signature-studio/internal/export"
	"github.com/jonathan/signature-studio/internal/importing"
	"github.com/jonathan/signature-studio/internal/observability"
	"github.com/jonathan/signature-studio/internal/types"
	"github.com/spf13/cobra"
)

var bulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "Render signatures for a whole roster",
	Long:  "Imports contact records from a CSV, TSV, or vCard file and renders one HTML signature per record, packaged as a ZIP archive, a preview page, or individual files.",
	RunE:  runBulk,
}

var (
	bulkInputFile    string
	bulkFormat       string
	bulkTemplateFile string
	bulkPrefsPath    string
	bulkZipFile      string
	bulkPreviewFile  string
	bulkOutputDir    string
	bulkSets         []string
	bulkVerbose      bool
)

func init() {
	bulkCmd.Flags().StringVarP(&bulkInputFile, "input", "i", "", "Path to CSV, TSV, or vCard input file (required)")
	bulkCmd.Flags().StringVarP(&bulkFormat, "format", "f", "auto", "Input format: auto, csv, tsv, or vcard")
	bulkCmd.Flags().StringVarP(&bulkTemplateFile, "template", "t", "", "Path to a company template JSON file")
	bulkCmd.Flags().StringVar(&bulkPrefsPath, "prefs", "", "Path to the design preferences file")
	bulkCmd.Flags().StringVar(&bulkZipFile, "zip", "", "Path to output ZIP archive")
	bulkCmd.Flags().StringVar(&bulkPreviewFile, "preview", "", "Path to output preview HTML page")
	bulkCmd.Flags().StringVarP(&bulkOutputDir, "out-dir", "d", "", "Directory for individual HTML files")
	bulkCmd.Flags().StringArrayVar(&bulkSets, "set", nil, "Override a design option (key=value, repeatable)")
	bulkCmd.Flags().BoolVarP(&bulkVerbose, "verbose", "v", false, "Print import and batch summaries")

	_ = bulkCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(bulkCmd)
}

func runBulk(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	result, err := importRecords(bulkInputFile, bulkFormat)
	if err != nil {
		return err
	}

	templatePath := bulkTemplateFile
	if templatePath == "" {
		templatePath = cfg.Template
	}

	store, err := resolvePrefsStore(bulkPrefsPath, cfg.PrefsPath)
	if err != nil {
		return err
	}

	opts, tpl, err := loadDesign(store, templatePath, bulkSets)
	if err != nil {
		return err
	}
	if tpl != nil {
		for i := range result.Records {
			tpl.ApplyCompanyDefaults(&result.Records[i])
		}
	}

	verbose := bulkVerbose || cfg.Verbose
	printer := observability.NewPrinter(os.Stderr)
	if verbose {
		printer.PrintImportSummary(result)
		printer.PrintDesignSummary(opts)
	}

	// Default destination when none was requested: a dated ZIP in the output
	// directory (or the current directory).
	zipFile := bulkZipFile
	if zipFile == "" && bulkPreviewFile == "" && bulkOutputDir == "" {
		zipFile = filepath.Join(cfg.OutputDir, export.ArchiveName(time.Now()))
	}

	ctx := context.Background()

	if zipFile != "" {
		archive, err := export.BuildArchive(ctx, result.Records, opts)
		if err != nil {
			return err
		}
		if err := writeOutput(zipFile, string(archive)); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Wrote %s (%d signatures)\n", zipFile, len(result.Records))
	}

	if bulkPreviewFile != "" {
		page, err := export.PreviewPage(ctx, result.Records, opts)
		if err != nil {
			return err
		}
		if err := writeOutput(bulkPreviewFile, page); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Wrote %s\n", bulkPreviewFile)
	}

	if bulkOutputDir != "" {
		rendered, err := export.RenderBatch(ctx, result.Records, opts)
		if err != nil {
			return err
		}
		filenames := importing.GenerateFilenames(result.Records)
		for i, html := range rendered {
			path := filepath.Join(bulkOutputDir, filenames[i]+".html")
			if err := writeOutput(path, html); err != nil {
				return err
			}
		}
		if verbose {
			printer.PrintBatchSummary(result.Records, filenames)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Wrote %d files to %s\n", len(rendered), bulkOutputDir)
	}

	return nil
}

// importRecords parses the input file, resolving "auto" format from the file
// extension.
func importRecords(path, format string) (*types.ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	if format == "auto" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".vcf", ".vcard":
			format = "vcard"
		case ".tsv", ".txt":
			format = "tsv"
		default:
			format = "csv"
		}
	}

	switch format {
	case "csv":
		return importing.ParseCSV(string(data))
	case "tsv":
		return importing.ParseTSV(string(data))
	case "vcard":
		return importing.ParseVCards(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unknown format %q (valid: auto, csv, tsv, vcard)", format)
	}
}
