package skills_installer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInstallSucceeds(t *testing.T) {
	config := testConfig(t)
	translator := NewTranslatorVar(config.Variables)
	require.NotNil(t, translator)
	target := t.TempDir()

	assert.Equal(t, 0, RunInstall(target, translator, config))
	assert.FileExists(t, filepath.Join(target, ".claude", "skills", "obsidian", "SKILL.md"))
	assert.FileExists(t, filepath.Join(target, ".claude", "commands", "obsidian.md"))
}

func TestRunInstallMissingTargetFails(t *testing.T) {
	config := testConfig(t)
	translator := NewTranslatorVar(config.Variables)
	parent := t.TempDir()
	missing := filepath.Join(parent, "does-not-exist")

	assert.Equal(t, 1, RunInstall(missing, translator, config))
	assert.NoDirExists(t, missing)
}
