// Package utils provides utility functions for ratcycle.
package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// expandHome expands ~ to the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// ExpandPath expands ~ and normalizes the path. Bare command names are
// returned untouched so they can still be looked up on PATH.
func ExpandPath(path string) string {
	expanded := expandHome(path)
	if !strings.Contains(expanded, string(os.PathSeparator)) {
		return expanded
	}
	return filepath.Clean(expanded)
}

// ResolveExecutable finds command either as an existing path (when it
// contains a separator) or on PATH.
func ResolveExecutable(command string) (string, bool) {
	if command == "" {
		return "", false
	}
	if filepath.IsAbs(command) || strings.Contains(command, string(os.PathSeparator)) {
		info, err := os.Stat(command)
		if err != nil || info.IsDir() {
			return "", false
		}
		return command, true
	}
	path, err := exec.LookPath(command)
	if err != nil {
		return "", false
	}
	return path, true
}
