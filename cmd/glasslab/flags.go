package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

func validateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatYAML:
		return nil
	}
	return fmt.Errorf("unsupported format %q (want %s or %s)", format, formatText, formatYAML)
}
