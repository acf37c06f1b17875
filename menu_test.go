package skills_installer

import (
	"bufio"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	for input, expected := range map[string]menuChoice{
		"1":     choiceInstallHere,
		"2\n":   choiceInstallOther,
		"  3\n": choiceCancel,
	} {
		choice, err := parseChoice(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, expected, choice, "input %q", input)
	}
}

func TestParseChoiceRejectsEverythingElse(t *testing.T) {
	for _, input := range []string{"", "\n", "0", "4", "12", "x", "install"} {
		_, err := parseChoice(input)
		require.Error(t, err, "input %q", input)
		assert.Equal(t, "err_invalid_choice", err.Error())
	}
}

func TestExpandTargetPath(t *testing.T) {
	home := filepath.Join("/home", "u")
	cwd := filepath.Join("/tmp", "proj")
	for input, expected := range map[string]string{
		"~":           home,
		"~/proj2":     filepath.Join(home, "proj2"),
		"~/a/../b":    filepath.Join(home, "b"),
		"sub":         filepath.Join(cwd, "sub"),
		"./sub":       filepath.Join(cwd, "sub"),
		"/abs/path":   filepath.Join("/abs", "path"),
		" /abs/path ": filepath.Join("/abs", "path"),
	} {
		path, err := expandTargetPath(input, home, cwd)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, expected, path, "input %q", input)
	}
}

func TestExpandTargetPathMatchesExplicitHomeExpansion(t *testing.T) {
	home := "/home/u"
	cwd := "/tmp/proj"
	tilde, err := expandTargetPath("~/proj2", home, cwd)
	require.NoError(t, err)
	explicit, err := expandTargetPath("/home/u/proj2", home, cwd)
	require.NoError(t, err)
	assert.Equal(t, explicit, tilde)
}

func TestExpandTargetPathRejectsEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n"} {
		_, err := expandTargetPath(input, "/home/u", "/tmp")
		require.Error(t, err, "input %q", input)
		assert.Equal(t, "err_no_target", err.Error())
	}
}

// '~user' expansion is not supported; such paths are treated as relative.
func TestExpandTargetPathLeavesTildeUserAlone(t *testing.T) {
	path, err := expandTargetPath("~other/proj", "/home/u", "/tmp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp", "~other", "proj"), path)
}

func TestPromptChoiceReadsFromReader(t *testing.T) {
	translator := NewTranslator()
	require.NotNil(t, translator)
	in := bufio.NewReader(strings.NewReader("2\n"))
	choice, err := promptChoice(in, translator)
	require.NoError(t, err)
	assert.Equal(t, choiceInstallOther, choice)
}

func TestPromptChoiceOnClosedInput(t *testing.T) {
	translator := NewTranslator()
	in := bufio.NewReader(strings.NewReader(""))
	_, err := promptChoice(in, translator)
	require.Error(t, err)
}

func TestPromptTargetDirResolvesInput(t *testing.T) {
	translator := NewTranslator()
	in := bufio.NewReader(strings.NewReader("~/proj2\n"))
	path, err := promptTargetDir(in, translator, "/home/u", "/tmp/proj")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home", "u", "proj2"), path)
}
