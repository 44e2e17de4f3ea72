package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/session"
	"github.com/spf13/cobra"
)

var exportJSONCmd = &cobra.Command{
	Use:   "export-json",
	Short: "Write a CV document as normalized export JSON",
	Long:  "Decodes a CV document, normalizes it (missing sections become empty lists) and writes the canonical export JSON.",
	RunE:  runExportJSON,
}

var (
	exportJSONConfigPath   string
	exportJSONDocumentFile string
	exportJSONOutputFile   string
)

func init() {
	exportJSONCmd.Flags().StringVar(&exportJSONConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	exportJSONCmd.Flags().StringVarP(&exportJSONDocumentFile, "document", "d", "", "Path to CV JSON file (optional, sample document if omitted)")
	exportJSONCmd.Flags().StringVarP(&exportJSONOutputFile, "out", "o", session.JSONFilename, "Path to output JSON file")

	rootCmd.AddCommand(exportJSONCmd)
}

func runExportJSON(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadCommandConfig(exportJSONConfigPath)
	if err != nil {
		return err
	}
	cfg := (&config.Config{Document: exportJSONDocumentFile}).MergeWithDefaults(fileCfg)

	doc, err := loadDocument(cfg.Document)
	if err != nil {
		return err
	}

	data, err := document.Encode(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	outputPath := resolveOutputPath(cfg.OutputDir, exportJSONOutputFile)

	outputDir := filepath.Dir(outputPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully exported JSON\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outputPath)

	return nil
}
