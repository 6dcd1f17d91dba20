package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoD(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, ".dod.yml", DefaultFileName)
	assert.Equal(t, "CHECK_COMMIT", EnvPrefix)
}

func TestLoad_PreservesOrder(t *testing.T) {
	path := writeDoD(t, `
issue_reference_required: true
checklist:
  - "Tests pass."
  - "Docs updated."
  - "Security reviewed."
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.IssueReferenceRequired)
	assert.Equal(t, []string{"Tests pass.", "Docs updated.", "Security reviewed."}, cfg.Items)
}

func TestLoad_IssueReferenceDefaultsToFalse(t *testing.T) {
	path := writeDoD(t, "checklist:\n  - \"Tests pass.\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.IssueReferenceRequired)
	assert.Len(t, cfg.Items, 1)
}

func TestLoad_EmptyChecklist(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "empty list", content: "checklist: []\n"},
		{name: "only flag", content: "issue_reference_required: false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeDoD(t, tt.content))
			require.NoError(t, err)
			assert.Empty(t, cfg.Items)
			assert.False(t, cfg.IssueReferenceRequired)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), DefaultFileName))

	assert.ErrorIs(t, err, ErrChecklistNotFound)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid yaml", content: "checklist:\n  - \"unterminated\n  bad: [\n"},
		{name: "non-boolean flag", content: "issue_reference_required: maybe\nchecklist: []\n"},
		{name: "blank item", content: "checklist:\n  - \"Tests pass.\"\n  - \"   \"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeDoD(t, tt.content))
			assert.ErrorIs(t, err, ErrChecklistInvalid)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestLoad_TrimsItems(t *testing.T) {
	cfg, err := Load(writeDoD(t, "checklist:\n  - \"  Tests pass.  \"\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Tests pass."}, cfg.Items)
}

func TestResolvePath(t *testing.T) {
	t.Setenv("CHECK_COMMIT_DOD_FILE", "")

	assert.Equal(t, filepath.Join("/repo", ".dod.yml"), ResolvePath("/repo", ""))
	assert.Equal(t, filepath.Join("/repo", "team/dod.yaml"), ResolvePath("/repo", "team/dod.yaml"))
	assert.Equal(t, "/etc/dod.yml", ResolvePath("/repo", "/etc/dod.yml"))
	assert.Equal(t, ".dod.yml", ResolvePath("", ""))
}

func TestResolvePath_Env(t *testing.T) {
	t.Setenv("CHECK_COMMIT_DOD_FILE", "ci/dod.yml")

	assert.Equal(t, filepath.Join("/repo", "ci/dod.yml"), ResolvePath("/repo", ""))
	assert.Equal(t, filepath.Join("/repo", "flag.yml"), ResolvePath("/repo", "flag.yml"))
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	require.NoError(t, Write(path, DefaultChecklist(), false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultChecklist(), cfg)
}

func TestWrite_RefusesOverwrite(t *testing.T) {
	path := writeDoD(t, "checklist: []\n")

	err := Write(path, DefaultChecklist(), false)
	assert.ErrorIs(t, err, ErrChecklistExists)

	require.NoError(t, Write(path, DefaultChecklist(), true))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Items, 5)
}

func TestDefaultChecklist_ReturnsCopy(t *testing.T) {
	first := DefaultChecklist()
	first.Items[0] = "changed"

	assert.NotEqual(t, "changed", DefaultChecklist().Items[0])
}
