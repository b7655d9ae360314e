// Command schema writes the JSON schema of the eduflow configuration file.
// Usage: schema [output], output defaults to schema.json.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/umputun/eduflow/pkg/config"
)

func main() {
	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}
	if err := writeSchema(outputPath); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	fmt.Printf("config schema written to %s\n", outputPath)
}

func writeSchema(path string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
