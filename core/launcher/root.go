package launcher

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveRoot returns the absolute directory containing the running executable.
func ResolveRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}

	return filepath.Dir(exe), nil
}

// EnterRoot resolves the serving root and makes it the working directory.
func EnterRoot() (string, error) {
	root, err := ResolveRoot()
	if err != nil {
		return "", err
	}

	if err := os.Chdir(root); err != nil {
		return "", fmt.Errorf("failed to enter serving root: %w", err)
	}

	return root, nil
}
