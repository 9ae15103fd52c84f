package tokendrift

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDocument reads a design-token document from a JSON or YAML file into
// the plain map/slice/scalar tree the diff engine walks. The format is
// chosen by extension; anything that is not .yaml/.yml is parsed as JSON.
func LoadDocument(path string) (map[string]any, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAMLDocument(content)
	default:
		return ParseJSONDocument(content)
	}
}

// ParseJSONDocument decodes a JSON token document.
func ParseJSONDocument(content []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse json document: %w", err)
	}
	return doc, nil
}

// ParseYAMLDocument decodes a YAML token document and rewrites any
// interface-keyed maps so the tree matches what JSON decoding produces.
func ParseYAMLDocument(content []byte) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml document: %w", err)
	}

	doc, ok := normalizeTree(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parse yaml document: top level must be a mapping")
	}
	return doc, nil
}

// normalizeTree converts map[any]any nodes (legacy yaml decoding) into
// map[string]any so the diff engine sees one mapping shape.
func normalizeTree(v any) any {
	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			node[k] = normalizeTree(child)
		}
		return node
	case map[any]any:
		converted := make(map[string]any, len(node))
		for k, child := range node {
			converted[fmt.Sprintf("%v", k)] = normalizeTree(child)
		}
		return converted
	case []any:
		for i, child := range node {
			node[i] = normalizeTree(child)
		}
		return node
	default:
		return v
	}
}

// WriteDocument marshals a token document as indented JSON to path, creating
// parent directories as needed.
func WriteDocument(path string, doc map[string]any) error {
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	content = append(content, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
