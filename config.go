package skills_installer

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

const configFilename = "config.yml"

// Config holds the installer's own settings, parsed from the bundled
// config.yml. ClaudeDir and CommandsDir/SkillsDir are the subpaths created
// inside the target project, Variables feed the translator's template
// expansion.
type Config struct {
	Product     string    `yaml:"product"`
	Version     string    `yaml:"version"`
	ClaudeDir   string    `yaml:"claude_dir"`
	SkillsDir   string    `yaml:"skills_dir"`
	CommandsDir string    `yaml:"commands_dir"`
	SkillName   string    `yaml:"skill_name"`
	Variables   StringMap `yaml:"variables"`
}

// NewConfig parses the bundled config file. The product name, version and
// skill name are mirrored into the variables map so that language strings
// can reference them as templates.
func NewConfig() (*Config, error) {
	configFile, err := GetResource(configFilename)
	if err != nil {
		return nil, err
	}
	config := &Config{}
	err = yaml.Unmarshal([]byte(configFile), config)
	if err != nil {
		return nil, fmt.Errorf("unable to parse config file %s: %w", configFilename, err)
	}
	if config.Variables == nil {
		config.Variables = make(StringMap)
	}
	config.Variables["product"] = config.Product
	config.Variables["version"] = config.Version
	config.Variables["skillName"] = config.SkillName
	return config, nil
}
