package wire

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a graph file encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatOf picks the encoding from a file extension; anything that is not
// .yaml or .yml is treated as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// DecodeGraph parses data as a Graph document in the given format and
// validates it.
func DecodeGraph(data []byte, f Format) (*Graph, error) {
	var g Graph
	var err error
	if f == YAML {
		err = yaml.Unmarshal(data, &g)
	} else {
		err = json.Unmarshal(data, &g)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s graph: %w", f, err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return &g, nil
}

// ReadGraphFile loads and validates the graph document at path.
func ReadGraphFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file %s: %w", path, err)
	}

	return DecodeGraph(data, FormatOf(path))
}

// Encode writes v to w as indented JSON or as YAML.
func Encode(w io.Writer, v any, f Format) error {
	if f == YAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
