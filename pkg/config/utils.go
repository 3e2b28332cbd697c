package config

import (
	"os"
	"path/filepath"
)

// FindEnvTest walks up from the working directory and returns the first
// path holding filename (".env" when empty). The walk stops after the
// directory containing go.mod so tests never pick up files outside the repo.
func FindEnvTest(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		if isModuleRoot(dir) {
			return "", os.ErrNotExist
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

func isModuleRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "go.mod"))
	return err == nil
}
