// Command schema regenerates pkg/config/schema.json, the JSON schema the
// config loader checks every parsed configuration against.
package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/warit/newsgen/pkg/config"
)

func main() {
	out := "schema.json"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	schema, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("generate schema: %v", err)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("marshal schema: %v", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(out, data, 0o600); err != nil {
		log.Fatalf("write schema to %s: %v", out, err)
	}
	log.Printf("schema written to %s", out)
}
