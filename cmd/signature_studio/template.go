package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jonathan/signature-studio/internal/export"
	"github.com/jonathan/signature-studio/internal/types"
	"github.com/spf13/cobra"
)

var validateTemplateCmd = &cobra.Command{
	Use:   "validate-template",
	Short: "Validate a company template file",
	Long:  "Checks a company template JSON file against the template schema and reports its type and name.",
	RunE:  runValidateTemplate,
}

var exportTemplateCmd = &cobra.Command{
	Use:   "export-template",
	Short: "Export the current design as a shareable template",
	Long:  "Bundles the stored design preferences (and optionally the company-wide fields of a record) into a template JSON file for distribution.",
	RunE:  runExportTemplate,
}

var csvTemplateCmd = &cobra.Command{
	Use:   "csv-template",
	Short: "Write the CSV starter template",
	Long:  "Writes the starter CSV with the expected header row and example data, ready to fill in and feed back to the bulk command.",
	RunE:  runCSVTemplate,
}

var (
	validateTemplateFile string

	exportTemplateName       string
	exportTemplateRecordFile string
	exportTemplatePrefsPath  string
	exportTemplateOutputFile string

	csvTemplateOutputFile string
)

func init() {
	validateTemplateCmd.Flags().StringVarP(&validateTemplateFile, "file", "f", "", "Path to the template JSON file (required)")
	_ = validateTemplateCmd.MarkFlagRequired("file")

	exportTemplateCmd.Flags().StringVarP(&exportTemplateName, "name", "n", "", "Template display name")
	exportTemplateCmd.Flags().StringVarP(&exportTemplateRecordFile, "record", "r", "", "Contact record JSON whose company fields become template defaults")
	exportTemplateCmd.Flags().StringVar(&exportTemplatePrefsPath, "prefs", "", "Path to the design preferences file")
	exportTemplateCmd.Flags().StringVarP(&exportTemplateOutputFile, "out", "o", "", "Path to output template JSON file (required)")
	_ = exportTemplateCmd.MarkFlagRequired("out")

	csvTemplateCmd.Flags().StringVarP(&csvTemplateOutputFile, "out", "o", export.CSVTemplateFilename, "Path to output CSV file")

	rootCmd.AddCommand(validateTemplateCmd)
	rootCmd.AddCommand(exportTemplateCmd)
	rootCmd.AddCommand(csvTemplateCmd)
}

func runValidateTemplate(_ *cobra.Command, _ []string) error {
	tpl, err := loadTemplate(validateTemplateFile)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Template is valid\n")
	_, _ = fmt.Fprintf(os.Stdout, "Type: %s\n", tpl.Type)
	if tpl.TemplateName != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Name: %s\n", tpl.TemplateName)
	}
	if len(tpl.CompanyFields) > 0 {
		_, _ = fmt.Fprintf(os.Stdout, "Company fields: %d\n", len(tpl.CompanyFields))
	}
	return nil
}

func runExportTemplate(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	store, err := resolvePrefsStore(exportTemplatePrefsPath, cfg.PrefsPath)
	if err != nil {
		return err
	}
	opts, err := store.Load()
	if err != nil {
		return err
	}

	var record types.ContactRecord
	if exportTemplateRecordFile != "" {
		loaded, err := loadRecord(exportTemplateRecordFile)
		if err != nil {
			return err
		}
		record = *loaded
	}

	tpl := types.NewCompanyTemplate(exportTemplateName, opts, record, time.Now)
	data, err := tpl.MarshalIndent()
	if err != nil {
		return err
	}

	if err := writeOutput(exportTemplateOutputFile, string(data)+"\n"); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Wrote %s (%s)\n", exportTemplateOutputFile, tpl.Type)
	return nil
}

func runCSVTemplate(_ *cobra.Command, _ []string) error {
	if err := writeOutput(csvTemplateOutputFile, export.CSVTemplate()+"\n"); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Wrote %s\n", csvTemplateOutputFile)
	return nil
}
