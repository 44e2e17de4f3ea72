package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/session"
	"github.com/jonathan/cv-builder/internal/templates"
)

func TestSeedSessionDocument_ReplacesSample(t *testing.T) {
	sess := session.New(templates.Builtin(), nil)
	path := writeDocumentFile(t, []byte(`{"basics":{"name":"Jane Doe"}}`))

	require.NoError(t, seedSessionDocument(sess, path))

	assert.Equal(t, "Jane Doe", sess.Document().Basics.Name)
	assert.Empty(t, sess.Document().Work)
}

func TestSeedSessionDocument_MalformedKeepsSample(t *testing.T) {
	sess := session.New(templates.Builtin(), nil)
	path := writeDocumentFile(t, []byte(`{"work": "not-a-list"}`))

	err := seedSessionDocument(sess, path)
	require.Error(t, err)
	assert.Equal(t, "John Doe", sess.Document().Basics.Name)
}

func TestSeedSessionDocument_MissingFile(t *testing.T) {
	sess := session.New(templates.Builtin(), nil)

	err := seedSessionDocument(sess, "/nonexistent/cv.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read document file")
}

func TestResolveOutputPath(t *testing.T) {
	tests := []struct {
		name      string
		outputDir string
		path      string
		want      string
	}{
		{"no output dir", "", "cv.pdf", "cv.pdf"},
		{"bare filename", "exports", "cv.pdf", filepath.Join("exports", "cv.pdf")},
		{"absolute path wins", "exports", "/tmp/cv.pdf", "/tmp/cv.pdf"},
		{"explicit directory wins", "exports", "out/cv.pdf", "out/cv.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveOutputPath(tt.outputDir, tt.path))
		})
	}
}

func TestLoadCommandConfig_FileAndEnv(t *testing.T) {
	t.Setenv("CV_BUILDER_TEMPLATE", "classic")

	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"template": "modern", "output_dir": "exports"}`), 0644))

	cfg, err := loadCommandConfig(configPath)
	require.NoError(t, err)

	// Environment wins over the file; untouched fields come from the file
	assert.Equal(t, "classic", cfg.Template)
	assert.Equal(t, "exports", cfg.OutputDir)
}

func TestLoadCommandConfig_EmptyPath(t *testing.T) {
	cfg, err := loadCommandConfig("")
	require.NoError(t, err)
	assert.Zero(t, cfg.Port)
}
