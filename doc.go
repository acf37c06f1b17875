// A small terminal installer for the bundled Obsidian plugin-development
// skill.
//
// The installer ships a set of markdown reference files and a command file as
// an embedded payload, and copies them into a target project's ".claude"
// configuration directory, either interactively via a terminal menu or
// non-interactively with the -target flag.
//
// See the README.md for usage info and customization instructions.
package skills_installer
