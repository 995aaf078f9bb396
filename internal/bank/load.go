package bank

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed datos.json
var defaultBank []byte

// ErrUnsupportedFormat is returned for bank files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported bank format")

// Format is the encoding of a bank file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Default decodes the bank bundled with the binary.
func Default() (any, error) {
	return Decode(defaultBank, FormatJSON)
}

// LoadFile reads a bank from disk; the format follows the file extension.
func LoadFile(path string) (any, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = FormatJSON
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	return Decode(b, format)
}

// Load returns the bank at path, or the bundled bank when path is empty.
func Load(path string) (any, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Decode parses raw bank bytes into generic maps and lists.
func Decode(data []byte, format Format) (any, error) {
	var raw any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode json bank: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode yaml bank: %w", err)
		}
		raw = normalizeYAML(raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return raw, nil
}

// normalizeYAML rewrites maps with non-string keys (numeric case ids) into
// the string-keyed maps the adapter expects.
func normalizeYAML(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeYAML(val)
		}
		return x
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[toString(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		for i, val := range x {
			x[i] = normalizeYAML(val)
		}
		return x
	}
	return v
}
