package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/OCharnyshevich/tilemap/internal/config"
)

func main() {
	outPath := flag.String("out", "", "path to write the JSON schema (default: stdout)")
	flag.Parse()

	schema := buildSchema()

	if *outPath == "" {
		data, err := marshalSchema(schema)
		if err != nil {
			log.Fatalf("schema failed: %v", err)
		}
		os.Stdout.Write(data)
		return
	}

	if err := writeSchema(*outPath, schema); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("schema: written to %s\n", *outPath)
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		ExpandedStruct:            true,
	}
	schema := reflector.Reflect(new(config.Config))
	schema.Title = "worldgen config"
	schema.Description = "Validates files passed to worldgen -config or -preset"
	return schema
}

func marshalSchema(schema *jsonschema.Schema) ([]byte, error) {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := marshalSchema(schema)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
