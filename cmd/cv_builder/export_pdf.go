package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/printing"
	"github.com/jonathan/cv-builder/internal/templates"
	"github.com/spf13/cobra"
)

var exportPDFCmd = &cobra.Command{
	Use:   "export-pdf",
	Short: "Render a CV document to a PDF file",
	Long: `Renders a CV document to a print-faithful A4 PDF through a headless browser, using the selected template's styling.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runExportPDF,
}

var (
	exportPDFConfigPath   string
	exportPDFDocumentFile string
	exportPDFTemplateID   string
	exportPDFOutputFile   string
	exportPDFChromePath   string
	exportPDFTimeoutSec   int
	exportPDFVerbose      bool
)

func init() {
	exportPDFCmd.Flags().StringVar(&exportPDFConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	exportPDFCmd.Flags().StringVarP(&exportPDFDocumentFile, "document", "d", "", "Path to CV JSON file (optional, sample document if omitted)")
	exportPDFCmd.Flags().StringVarP(&exportPDFTemplateID, "template", "t", "", "Template id (unknown ids fall back to the default)")
	exportPDFCmd.Flags().StringVarP(&exportPDFOutputFile, "out", "o", "", "Path to output PDF file (optional, derived from the candidate name)")
	exportPDFCmd.Flags().StringVar(&exportPDFChromePath, "chrome-path", "", "Path to Chrome/Chromium binary (optional, auto-detected)")
	exportPDFCmd.Flags().IntVar(&exportPDFTimeoutSec, "timeout", 0, "Export timeout in seconds")
	exportPDFCmd.Flags().BoolVarP(&exportPDFVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(exportPDFCmd)
}

func runExportPDF(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadCommandConfig(exportPDFConfigPath)
	if err != nil {
		return err
	}

	// Flag values win; config file and environment fill in the rest
	flagCfg := config.Config{
		Document:         exportPDFDocumentFile,
		Template:         exportPDFTemplateID,
		ChromePath:       exportPDFChromePath,
		ExportTimeoutSec: exportPDFTimeoutSec,
		Verbose:          exportPDFVerbose,
	}
	cfg := flagCfg.MergeWithDefaults(fileCfg)
	verbose := exportPDFVerbose || fileCfg.Verbose

	doc, err := loadDocument(cfg.Document)
	if err != nil {
		return err
	}

	registry := templates.Builtin()

	printer := observability.NewPrinter(os.Stdout)
	if verbose {
		printer.PrintDocumentSummary(doc)
		printer.PrintTemplateList(registry.List(), registry.Resolve(cfg.Template).ID)
	}

	opts := []printing.Option{printing.WithExecPath(cfg.ChromePath)}
	if cfg.ExportTimeoutSec > 0 {
		opts = append(opts, printing.WithTimeout(time.Duration(cfg.ExportTimeoutSec)*time.Second))
	}
	generator := printing.NewGenerator(opts...)

	outputPath := exportPDFOutputFile
	if outputPath == "" {
		outputPath = printing.DefaultFilename(doc.Basics.Name)
	}
	outputPath = resolveOutputPath(cfg.OutputDir, outputPath)

	start := time.Now()
	data, err := generator.Generate(context.Background(), doc, cfg.Template, registry)
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	outputDir := filepath.Dir(outputPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if verbose {
		printer.PrintExportResult(outputPath, len(data), time.Since(start))
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully exported PDF\n")
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outputPath)
	}

	return nil
}
