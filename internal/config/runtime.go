package config

import (
	"os"
	"path/filepath"
)

func GetRuntimePath() string {
	return resolveRuntimePath(os.Getenv("ROSTER_RUNTIME_PATH"))
}

// resolveRuntimePath anchors a relative runtime path in the home directory.
func resolveRuntimePath(path string) string {
	if path == "" {
		path = ".roster"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
