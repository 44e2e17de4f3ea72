package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for editing the CV document, switching templates, previewing HTML and exporting JSON or PDF.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runServe,
}

var (
	serveConfigPath    string
	servePort          int
	serveChromePath    string
	serveTimeoutSec    int
	serveTemplate      string
	serveDocumentFile  string
	serveVerboseOutput bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveChromePath, "chrome-path", "", "Path to Chrome/Chromium binary for PDF export (optional, auto-detected)")
	serveCmd.Flags().IntVar(&serveTimeoutSec, "export-timeout", 0, "PDF export timeout in seconds")
	serveCmd.Flags().StringVarP(&serveTemplate, "template", "t", "", "Template id selected on startup")
	serveCmd.Flags().StringVarP(&serveDocumentFile, "document", "d", "", "Path to a CV JSON file loaded on startup (sample document if omitted)")
	serveCmd.Flags().BoolVarP(&serveVerboseOutput, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file (if provided) with environment overrides
	cfg, err := loadCommandConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if serveConfigPath != "" && serveVerboseOutput {
		_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", serveConfigPath)
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("chrome-path") {
		cfg.ChromePath = serveChromePath
	}
	if cmd.Flags().Changed("export-timeout") {
		cfg.ExportTimeoutSec = serveTimeoutSec
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = serveTemplate
	}
	if cmd.Flags().Changed("document") {
		cfg.Document = serveDocumentFile
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = serveVerboseOutput
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{Port: 8080})

	srv := server.New(server.Config{
		Port:            cfg.Port,
		ChromePath:      cfg.ChromePath,
		ExportTimeout:   time.Duration(cfg.ExportTimeoutSec) * time.Second,
		DefaultTemplate: cfg.Template,
	})

	// Step 4: Seed the session with the configured document
	if cfg.Document != "" {
		if err := seedSessionDocument(srv.Session(), cfg.Document); err != nil {
			return err
		}
	}

	return srv.Start()
}
