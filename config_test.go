package skills_installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	config, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, ".claude", config.ClaudeDir)
	assert.Equal(t, "skills", config.SkillsDir)
	assert.Equal(t, "commands", config.CommandsDir)
	assert.Equal(t, "obsidian", config.SkillName)
	assert.NotEmpty(t, config.Product)
	assert.NotEmpty(t, config.Version)
}

func TestNewConfigMirrorsVariables(t *testing.T) {
	config, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, config.Product, config.Variables["product"])
	assert.Equal(t, config.Version, config.Variables["version"])
	assert.Equal(t, config.SkillName, config.Variables["skillName"])
	// extra variables from the config file survive the mirroring
	assert.Equal(t, "skilldeck", config.Variables["vendor"])
}
