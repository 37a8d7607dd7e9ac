// Package config loads formatter settings from YAML or TOML files.
//
// A file may either hold the options at top level:
//
//	format: "%timestamp% %priorityName%: %message%"
//	dateTimeFormat: "2006-01-02 15:04:05"
//
// or nest them in a "formatter" section, which lets the settings live in a
// larger application config:
//
//	[formatter]
//	format = "%priorityName%: %message%"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/simplelog/formatter"
)

// Section is the key of the nested formatter section
const Section = "formatter"

// Format is a config file encoding
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat determines the encoding from the file extension. Files
// without a known extension are treated as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes config content into an untyped record
func Parse(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("toml parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	if data == nil {
		data = map[string]interface{}{}
	}
	return data, nil
}

// Options extracts the formatter options from a decoded config: the
// "formatter" section when present, the top level otherwise.
func Options(data map[string]interface{}) (map[string]interface{}, error) {
	section, ok := data[Section]
	if !ok {
		return data, nil
	}
	opts, ok := section.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s section must be a table, got %T", formatter.ErrInvalidArgument, Section, section)
	}
	return opts, nil
}

// Load reads a config file and returns its formatter options
func Load(path string) (map[string]interface{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	data, err := Parse(content, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return Options(data)
}

// LoadFormatter reads a config file and builds the formatter it describes
func LoadFormatter(path string) (*formatter.Simple, error) {
	opts, err := Load(path)
	if err != nil {
		return nil, err
	}

	f, err := formatter.NewSimpleFromOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}
