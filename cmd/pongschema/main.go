// Command pongschema writes JSON schemas for the frames the server
// streams and for the configuration file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/lguibr/solopong/game"
	"github.com/lguibr/solopong/utils"
)

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "", "directory to write the schemas into")
	flag.Parse()

	if outDir == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	for name, schema := range buildSchemas() {
		path := filepath.Join(outDir, name)
		if err := writeSchema(path, schema); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("wrote", path)
	}
}

func buildSchemas() map[string]*jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}

	frame := reflector.Reflect(new(game.Frame))
	frame.Title = "solopong frame"
	frame.Description = "One tick of a session as streamed on /subscribe and returned by /state."

	config := reflector.Reflect(new(utils.Config))
	config.Title = "solopong config"
	config.Description = "Session configuration. Durations are nanoseconds in JSON."

	return map[string]*jsonschema.Schema{
		"frame.schema.json":  frame,
		"config.schema.json": config,
	}
}

func writeSchema(path string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
