package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/session"
	"github.com/jonathan/cv-builder/internal/types"
)

// loadDocument reads and decodes a CV JSON file. An empty path returns the
// sample document so export commands work out of the box.
func loadDocument(path string) (*types.CVDocument, error) {
	if path == "" {
		return document.Sample(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}

	doc, err := document.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	return doc, nil
}

// loadCommandConfig loads and validates an optional config file, then applies
// environment overrides. An empty path yields an env-only config.
func loadCommandConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg.FromEnv()
	return cfg, nil
}

// seedSessionDocument loads a CV JSON file into the session, replacing the
// sample document it was seeded with.
func seedSessionDocument(sess *session.Session, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read document file: %w", err)
	}

	if err := sess.Import(data); err != nil {
		return fmt.Errorf("failed to load document %s: %w", path, err)
	}

	return nil
}

// resolveOutputPath places a bare relative output filename under the
// configured output directory. Absolute paths and paths that already name a
// directory are kept as given.
func resolveOutputPath(outputDir, path string) string {
	if outputDir == "" || filepath.IsAbs(path) || filepath.Dir(path) != "." {
		return path
	}
	return filepath.Join(outputDir, path)
}
