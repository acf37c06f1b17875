package skills_installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslatorLanguages(t *testing.T) {
	translator := NewTranslator()
	require.NotNil(t, translator)
	assert.Equal(t, []string{"en", "de"}, translator.GetLanguages())
}

func TestTranslatorSetLanguage(t *testing.T) {
	translator := NewTranslator()
	require.NoError(t, translator.SetLanguage("de"))
	assert.Equal(t, "de", translator.GetLanguage())
	assert.Error(t, translator.SetLanguage("tlh"))
	assert.Equal(t, "de", translator.GetLanguage())
}

func TestTranslatorExpandsVariables(t *testing.T) {
	translator := NewTranslatorVar(StringMap{
		"product":   "Example Installer",
		"version":   "0.0.1",
		"skillName": "obsidian",
	})
	require.NotNil(t, translator)
	require.NoError(t, translator.SetLanguage("en"))
	assert.Equal(t, "Example Installer 0.0.1", translator.Get("title"))
}

func TestTranslatorPromptMatchesContract(t *testing.T) {
	translator := NewTranslator()
	for _, lang := range translator.GetLanguages() {
		require.NoError(t, translator.SetLanguage(lang))
		assert.Equal(t, "Enter choice [1-3]: ", translator.Get("prompt_choice"), "language %s", lang)
	}
}

func TestTranslatorUnknownKeyIsEmpty(t *testing.T) {
	translator := NewTranslator()
	assert.Equal(t, "", translator.Get("no_such_key"))
}

func TestTranslatorFallsBackToDefaultLanguage(t *testing.T) {
	translator := NewTranslator()
	require.NoError(t, translator.SetLanguage("de"))
	for _, key := range []string{"err_invalid_choice", "err_target_not_found", "install_done"} {
		assert.NotEmpty(t, translator.Get(key), "key %s", key)
	}
}

func TestTranslatorGetAllStrings(t *testing.T) {
	translator := NewTranslator()
	require.NoError(t, translator.SetLanguage("en"))
	strs := translator.GetAllStrings()
	assert.Contains(t, strs, "menu_option_here")
	assert.Contains(t, strs, "cancelled")
}
