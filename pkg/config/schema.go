package config

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/fulmenhq/feedline/pkg/safeio"
)

// SchemaVersion is the version of the embedded configuration schema
const SchemaVersion = "1.0.0"

//go:embed schemas/feedline-config-v1.0.0.json
var configSchemaV1 []byte

// ValidateConfig validates a YAML or JSON configuration document against the
// embedded schema.
func ValidateConfig(configData []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(configData, &doc); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if doc == nil {
		// An empty file sets nothing.
		return nil
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(configSchemaV1),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("configuration validation failed (schema v%s):\n%s", SchemaVersion, strings.Join(problems, "\n"))
	}

	return nil
}

// ValidateFile reads path and validates it. Only YAML and JSON files are
// accepted.
func ValidateFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case "", ".yaml", ".yml", ".json":
	default:
		return fmt.Errorf("unsupported config format %q (use YAML or JSON)", filepath.Ext(path))
	}

	data, err := safeio.ReadFileClean(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := ValidateConfig(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
