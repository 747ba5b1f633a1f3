package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	glerrors "github.com/alexisbeaulieu97/glasslab/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultPath is where settings are looked up when no path is given.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".glasslab", "config.yaml"), nil
}

// Load returns the settings at path. An empty path means DefaultPath, and a
// missing default file yields the built-in defaults. An explicit path must exist.
func Load(path string) (*Settings, error) {
	if path != "" {
		return ParseSettings(path)
	}

	def, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(def); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return ParseSettings(def)
}

// ParseSettings reads a settings file, merges it over the defaults and validates the result.
func ParseSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, glerrors.NewParseError(path, 0, err)
	}

	settings, err := Decode(data)
	if err != nil {
		var ve *glerrors.ValidationError
		if errors.As(err, &ve) {
			return nil, err
		}
		return nil, glerrors.NewParseError(path, extractLine(err), err)
	}
	return settings, nil
}

// Decode parses a YAML document over the defaults and validates it.
func Decode(data []byte) (*Settings, error) {
	settings := Default()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
