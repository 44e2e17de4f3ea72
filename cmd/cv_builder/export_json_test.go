package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/document"
)

func TestRunExportJSON_SampleDocument(t *testing.T) {
	exportJSONDocumentFile = ""
	exportJSONOutputFile = filepath.Join(t.TempDir(), "cv.json")
	defer func() { exportJSONOutputFile = "" }()

	require.NoError(t, runExportJSON(exportJSONCmd, nil))

	data, err := os.ReadFile(exportJSONOutputFile)
	require.NoError(t, err)

	doc, err := document.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", doc.Basics.Name)
}

func TestRunExportJSON_NormalizesPartialInput(t *testing.T) {
	inputPath := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(`{"basics":{"name":"Jane Doe"}}`), 0644))

	exportJSONDocumentFile = inputPath
	exportJSONOutputFile = filepath.Join(t.TempDir(), "out.json")
	defer func() {
		exportJSONDocumentFile = ""
		exportJSONOutputFile = ""
	}()

	require.NoError(t, runExportJSON(exportJSONCmd, nil))

	data, err := os.ReadFile(exportJSONOutputFile)
	require.NoError(t, err)

	// Missing sections appear as empty lists in the export
	assert.Contains(t, string(data), `"work": []`)
	assert.Contains(t, string(data), `"volunteer": []`)
}

func TestRunExportJSON_ConfigDocumentAndOutputDir(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "jane.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(`{"basics":{"name":"Jane Doe"}}`), 0644))

	outputDir := filepath.Join(dir, "exports")
	configPath := filepath.Join(dir, "config.json")
	configJSON := `{"document": "` + inputPath + `", "output_dir": "` + outputDir + `"}`
	require.NoError(t, os.WriteFile(configPath, []byte(configJSON), 0644))

	exportJSONConfigPath = configPath
	exportJSONOutputFile = "cv.json"
	defer func() {
		exportJSONConfigPath = ""
		exportJSONOutputFile = ""
	}()

	require.NoError(t, runExportJSON(exportJSONCmd, nil))

	data, err := os.ReadFile(filepath.Join(outputDir, "cv.json"))
	require.NoError(t, err)

	doc, err := document.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", doc.Basics.Name)
}

func TestRunExportJSON_MalformedInput(t *testing.T) {
	inputPath := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(`{"education": 42}`), 0644))

	exportJSONDocumentFile = inputPath
	defer func() { exportJSONDocumentFile = "" }()

	err := runExportJSON(exportJSONCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode document")
}
