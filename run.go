package skills_installer

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	// Linux terminal command string to clear the current line and reset the cursor
	clearLineVT100      = "\033[2K\r"
	installerMaxLineLen = 80
)

// Run parses commandline options (if any) and either starts the interactive
// menu or runs a non-interactive ("silent") install.
//
// Commandline parameters are:
//
//	-target   // Project directory to install into, skips the menu
//	-lang     // Choose installer language. This also affects the menu mode.
//	-version  // Print version information and exit
//
// Without parameters the installer shows a three-option menu: install into
// the current directory, install into another directory, or cancel.
//
// The return value is the process exit code: 0 on success or cancellation, 1
// on any error.
func Run() int {
	logrus.SetOutput(os.Stderr)

	if err := openBoxes(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	config, err := NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	translator := NewTranslatorVar(config.Variables)

	target := flag.String("target", "", translator.Get("cli_help_target"))
	lang := flag.String("lang", "", translator.Get("cli_help_lang")+" "+strings.Join(translator.GetLanguages(), ", "))
	showVersion := flag.Bool("version", false, translator.Get("cli_help_version"))
	flag.Parse()

	if len(*lang) > 0 {
		if err := translator.SetLanguage(*lang); err != nil {
			fmt.Printf("Language '%s' not available\n", *lang)
		}
	}
	if *showVersion {
		fmt.Printf("%s %s\n", config.Product, config.Version)
		return 0
	}
	if len(*target) > 0 {
		home, cwd := homeAndCwd()
		resolved, err := expandTargetPath(*target, home, cwd)
		if err != nil {
			fmt.Println(translator.Get(err.Error()))
			return 1
		}
		return RunInstall(resolved, translator, config)
	}
	return RunMenuInstall(translator, config)
}

// RunMenuInstall shows the interactive menu and dispatches on the choice.
func RunMenuInstall(translator *Translator, config *Config) int {
	home, cwd := homeAndCwd()
	in := bufio.NewReader(os.Stdin)
	printMenu(translator)
	choice, err := promptChoice(in, translator)
	if err != nil {
		fmt.Println(translator.Get(err.Error()))
		return 1
	}
	switch choice {
	case choiceInstallHere:
		return RunInstall(cwd, translator, config)
	case choiceInstallOther:
		targetDir, err := promptTargetDir(in, translator, home, cwd)
		if err != nil {
			fmt.Println(translator.Get(err.Error()))
			return 1
		}
		return RunInstall(targetDir, translator, config)
	default:
		fmt.Println(translator.Get("cancelled"))
		return 0
	}
}

// RunInstall copies the skill bundle into the given project directory,
// printing per-file progress while copying and the destination paths on
// success. Ctrl-C during the copy rolls back the files written so far.
func RunInstall(targetDir string, translator *Translator, config *Config) int {
	installer := NewInstallerTo(targetDir, config)
	if err := installer.CheckSetTargetDir(targetDir); err != nil {
		logrus.WithField("target", targetDir).Warn(err.Error())
		fmt.Println(translator.Get(err.Error()))
		return 1
	}
	cancelChannel := make(chan os.Signal, 1)
	signal.Notify(cancelChannel, os.Interrupt)
	installer.SetProgressFunction(func(status InstallStatus) {
		if file := installer.NextFile(); file != nil {
			line := file.Target
			if len(line) > installerMaxLineLen {
				line = "..." + line[len(line)-(installerMaxLineLen-3):]
			}
			fmt.Print(clearLineVT100 + line)
		}
	})
	fmt.Println(translator.Get("installing"))
	installer.StartInstall()
	go func() {
		for range cancelChannel {
			installer.Rollback()
		}
	}()
	installer.WaitForDone()
	// stop signal delivery before reporting, so a late Ctrl-C cannot race a
	// rollback against the success output
	signal.Stop(cancelChannel)
	close(cancelChannel)
	if installer.Error() != nil {
		fmt.Println(clearLineVT100 + translator.Get("install_failed"))
		return 1
	}
	if installer.Aborted() {
		fmt.Println(clearLineVT100 + translator.Get("cancelled"))
		return 0
	}
	fmt.Println(clearLineVT100 + installer.SizeString())
	fmt.Println(translator.Get("install_done"))
	fmt.Println("  " + installer.SkillPath())
	fmt.Println("  " + installer.CommandPath())
	return 0
}

// homeAndCwd returns the invoking user's home directory and the current
// working directory. Both fall back to "." if they cannot be determined.
func homeAndCwd() (home, cwd string) {
	home, cwd = ".", "."
	if usr, err := user.Current(); err == nil {
		home = usr.HomeDir
	}
	if wd, err := os.Getwd(); err == nil {
		cwd = wd
	}
	return home, cwd
}
