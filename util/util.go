package util

import (
	"os"

	"github.com/mattn/go-isatty"
)

const (
	TerminalReset  = "\033[0m"
	TerminalRed    = "\033[31m"
	TerminalGreen  = "\033[32m"
	TerminalYellow = "\033[33m"
	TerminalBlue   = "\033[34m"
	TerminalPurple = "\033[35m"
	TerminalCyan   = "\033[36m"
	TerminalWhite  = "\033[37m"
)

// IsTerminal reports whether f is attached to a terminal, cygwin ptys included
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Colorize wraps s in the given colour when enabled
func Colorize(s string, color string, enabled bool) string {
	if !enabled {
		return s
	}
	return color + s + TerminalReset
}

func CheckDirIsValid(dirName string) (bool, error) {
	info, err := os.Stat(dirName)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil // Directory does not exist
		}
		return false, err // Some other error occurred
	}
	return info.IsDir(), nil
}

// ListSubDirectories returns the names of the directories directly under dirName
func ListSubDirectories(dirName string) ([]string, error) {
	files, err := os.ReadDir(dirName)
	if err != nil {
		return nil, err
	}

	directories := []string{}
	for _, f := range files {
		if f.IsDir() {
			if f.Name() == ".git" {
				continue
			}
			directories = append(directories, f.Name())
		}
	}
	return directories, nil
}
