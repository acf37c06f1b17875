package main

import (
	"os"

	"github.com/skilldeck/skills_installer"
)

func main() {
	os.Exit(skills_installer.Run())
}
