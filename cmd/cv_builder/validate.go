package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a CV JSON file",
	Long:  "Checks a CV JSON file against the document schema and the decoder's shape rules, reporting per-field errors.",
	RunE:  runValidate,
}

var validateDocumentFile string

func init() {
	validateCmd.Flags().StringVarP(&validateDocumentFile, "document", "d", "", "Path to CV JSON file (required)")
	_ = validateCmd.MarkFlagRequired("document")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(validateDocumentFile)
	if err != nil {
		return fmt.Errorf("failed to read document file: %w", err)
	}

	if err := schemas.ValidateDocument(data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(os.Stderr, "%s", validationErr.Error())
			return fmt.Errorf("document failed schema validation (%d errors)", len(validationErr.Errors))
		}
		return err
	}

	// The decoder enforces container shapes the schema cannot express the
	// same way, so run it as the second gate.
	if _, err := document.Decode(data); err != nil {
		return fmt.Errorf("document failed decoding: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Document is valid: %s\n", validateDocumentFile)
	return nil
}
