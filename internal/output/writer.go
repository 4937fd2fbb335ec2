// Package output serializes form documents and writes them to disk.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"csv-adui-converter/internal/common"
	"csv-adui-converter/internal/form"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Format is an output serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultSuffix is appended to the input stem to form the default output name.
const DefaultSuffix = "_enhanced"

// Extension returns the file extension of the format, with the leading dot.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yaml"
	}

	return ".json"
}

// ParseFormat parses a format name. An empty name means JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json or yaml)", s)
	}
}

// Marshal serializes doc. JSON output is indented by indent spaces and keeps
// non-ASCII text and HTML characters unescaped.
func Marshal(doc *form.Document, format Format, indent int) ([]byte, error) {
	switch format {
	case FormatYAML:
		return marshalYAML(doc, indent)
	case FormatJSON, "":
		return marshalJSON(doc, indent)
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func marshalJSON(doc *form.Document, indent int) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	err := enc.Encode(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}

	return buf.Bytes(), nil
}

func marshalYAML(doc *form.Document, indent int) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	if indent > 0 {
		enc.SetIndent(indent)
	}

	err := enc.Encode(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes a document serialized in format.
func Unmarshal(data []byte, format Format) (*form.Document, error) {
	var doc form.Document

	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}

	if err != nil {
		return nil, fmt.Errorf("decoding %s document: %w", format, err)
	}

	return &doc, nil
}

// DefaultPath returns the output path for input: the input's directory and
// stem with suffix and the format's extension, e.g. "in/Plan_enhanced.json".
func DefaultPath(input, suffix string, format Format) string {
	return filepath.Join(filepath.Dir(input), common.Stem(input)+suffix+format.Extension())
}

// WriteFile writes data to path. The data goes to a temporary file in the
// same directory first and is renamed into place, so path is either left
// untouched or fully written.
func WriteFile(fsys afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)

	err := fsys.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := afero.TempFile(fsys, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}

	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		_ = fsys.Remove(tmpName)

		return fmt.Errorf("writing file %s: %w", path, err)
	}

	err = fsys.Chmod(tmpName, filePerm)
	if err != nil {
		_ = fsys.Remove(tmpName)

		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}

	err = fsys.Rename(tmpName, path)
	if err != nil {
		_ = fsys.Remove(tmpName)

		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
