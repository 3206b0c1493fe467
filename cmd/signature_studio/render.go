package main

import (
	"fmt"
	"os"

	"github.com/jonathan/signature-studio/internal/observability"
	"github.com/jonathan/signature-studio/internal/rendering"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a single HTML signature",
	Long:  "Renders an email-client-safe HTML signature from a contact record JSON file, applying stored design preferences, an optional company template, and per-call overrides.",
	RunE:  runRender,
}

var (
	renderRecordFile   string
	renderTemplateFile string
	renderPrefsPath    string
	renderOutputFile   string
	renderSets         []string
	renderVerbose      bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderRecordFile, "record", "r", "", "Path to contact record JSON file (required)")
	renderCmd.Flags().StringVarP(&renderTemplateFile, "template", "t", "", "Path to a company template JSON file")
	renderCmd.Flags().StringVar(&renderPrefsPath, "prefs", "", "Path to the design preferences file")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output HTML file (default: stdout)")
	renderCmd.Flags().StringArrayVar(&renderSets, "set", nil, "Override a design option (key=value, repeatable)")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print the effective design options")

	_ = renderCmd.MarkFlagRequired("record")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	record, err := loadRecord(renderRecordFile)
	if err != nil {
		return err
	}
	if !record.HasName() {
		return fmt.Errorf("record has no name")
	}

	templatePath := renderTemplateFile
	if templatePath == "" {
		templatePath = cfg.Template
	}

	store, err := resolvePrefsStore(renderPrefsPath, cfg.PrefsPath)
	if err != nil {
		return err
	}

	opts, tpl, err := loadDesign(store, templatePath, renderSets)
	if err != nil {
		return err
	}
	if tpl != nil {
		tpl.ApplyCompanyDefaults(record)
	}

	if renderVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintDesignSummary(opts)
	}

	html := rendering.Render(*record, opts)

	if renderOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, html)
		return nil
	}

	if err := writeOutput(renderOutputFile, html); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Wrote %s\n", renderOutputFile)
	return nil
}
