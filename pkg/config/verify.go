package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/invopop/jsonschema"
	validator "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/umputun/eduflow/pkg/domain"
)

//go:embed schema.json
var embeddedSchema string

const schemaURL = "schema.json"

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	return verify(cfg, []byte(embeddedSchema))
}

// VerifyAgainstSchema validates the config against the JSON schema from file
func VerifyAgainstSchema(cfg *Config, schemaPath string) error {
	// read schema file
	schemaData, err := os.ReadFile(schemaPath) //nolint:gosec // schema path is controlled by us
	if err != nil {
		return fmt.Errorf("read schema file: %w", err)
	}
	return verify(cfg, schemaData)
}

func verify(cfg *Config, schemaData []byte) error {
	schemaDoc, err := validator.UnmarshalJSON(bytes.NewReader(schemaData))
	if err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}

	compiler := validator.NewCompiler()
	if err := compiler.AddResource(schemaURL, schemaDoc); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	// an absent item list is an empty array, not null
	c := *cfg
	if c.Feed.Items == nil {
		c.Feed.Items = []domain.FeedItem{}
	}
	configData, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	instance, err := validator.UnmarshalJSON(bytes.NewReader(configData))
	if err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("validation failed: %w", withLocation(err))
	}
	return nil
}

// withLocation prefixes a validation error with the dotted path of its first failing field
func withLocation(err error) error {
	var verr *validator.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	leaf := verr
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	if len(leaf.InstanceLocation) == 0 {
		return err
	}
	return fmt.Errorf("%s: %w", strings.Join(leaf.InstanceLocation, "."), err)
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
