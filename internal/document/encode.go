package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects the serialization of a document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json" and "yaml" (and "yml").
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected json or yaml)", s)
	}
}

// EncodeJSON writes doc as JSON. Map keys are sorted, so equal documents
// produce identical bytes.
func EncodeJSON(w io.Writer, doc *Document, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if indent {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode document as JSON: %w", err)
	}

	return nil
}

// EncodeYAML writes doc as YAML.
func EncodeYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode document as YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML encoder: %w", err)
	}

	return nil
}

// Marshal serializes doc in format.
func Marshal(doc *Document, format Format, indent bool) ([]byte, error) {
	var buf bytes.Buffer

	var err error

	switch format {
	case FormatJSON:
		err = EncodeJSON(&buf, doc, indent)
	case FormatYAML:
		err = EncodeYAML(&buf, doc)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}

	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
