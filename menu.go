package skills_installer

import (
	"bufio"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type menuChoice int

const (
	choiceInstallHere menuChoice = iota + 1
	choiceInstallOther
	choiceCancel
)

// printMenu writes the menu header and the three install options.
func printMenu(translator *Translator) {
	fmt.Println(translator.Get("title"))
	fmt.Println(translator.Get("menu_header"))
	fmt.Println()
	fmt.Println("  1) " + translator.Get("menu_option_here"))
	fmt.Println("  2) " + translator.Get("menu_option_other"))
	fmt.Println("  3) " + translator.Get("menu_option_cancel"))
	fmt.Println()
}

// promptChoice prompts for a menu selection and parses the reply. Anything
// other than 1, 2 or 3 is an error.
func promptChoice(in *bufio.Reader, translator *Translator) (menuChoice, error) {
	fmt.Print(translator.Get("prompt_choice"))
	line, err := in.ReadString('\n')
	if err != nil && len(line) == 0 {
		return 0, errors.New("err_invalid_choice")
	}
	return parseChoice(line)
}

// parseChoice maps a raw input line onto one of the three menu choices.
func parseChoice(line string) (menuChoice, error) {
	switch strings.TrimSpace(line) {
	case "1":
		return choiceInstallHere, nil
	case "2":
		return choiceInstallOther, nil
	case "3":
		return choiceCancel, nil
	default:
		return 0, errors.New("err_invalid_choice")
	}
}

// promptTargetDir prompts for the target project directory and resolves the
// reply against the given home and working directories.
func promptTargetDir(in *bufio.Reader, translator *Translator, home, cwd string) (string, error) {
	fmt.Print(translator.Get("prompt_target"))
	line, err := in.ReadString('\n')
	if err != nil && len(line) == 0 {
		return "", errors.New("err_no_target")
	}
	return expandTargetPath(line, home, cwd)
}

// expandTargetPath turns raw user input into an absolute, cleaned path. A
// leading '~' refers to the given home directory, relative paths are
// resolved against the given working directory.
func expandTargetPath(input, home, cwd string) (string, error) {
	path := strings.TrimSpace(input)
	if path == "" {
		return "", errors.New("err_no_target")
	}
	if path == "~" {
		path = home
	} else if strings.HasPrefix(path, "~/") {
		path = filepath.Join(home, path[2:])
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	return filepath.Clean(path), nil
}
