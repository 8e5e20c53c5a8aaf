package engine

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Suite file formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// LoadSuite reads a suite from a JSON or YAML file. The format
// is chosen by the file extension.
func LoadSuite(path string) (*Suite, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read suite file %s", path)
	}

	suite, err := ParseSuite(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "parse suite file %s", path)
	}
	return suite, nil
}

// ParseSuite decodes a suite in the given format and checks that
// every check names a target and a matcher type.
func ParseSuite(data []byte, format string) (*Suite, error) {
	var suite Suite

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &suite); err != nil {
			return nil, errors.Wrap(err, "decode json")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &suite); err != nil {
			return nil, errors.Wrap(err, "decode yaml")
		}
	default:
		return nil, errors.Errorf("unsupported suite format %q", format)
	}

	for i, check := range suite.Checks {
		if check.Target == "" {
			return nil, errors.Wrapf(
				ErrInvalidDefinition,
				"check at index %d has no target", i,
			)
		}
		if check.Matcher.Type == "" {
			return nil, errors.Wrapf(
				ErrInvalidDefinition,
				"check at index %d has no matcher type", i,
			)
		}
	}
	return &suite, nil
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.Errorf("unsupported suite file %s", path)
}
