package main

import (
	"encoding/json"
	"os"
)

// printJSON writes v to stdout as indented JSON, using the same
// two-space indent as the on-disk store.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
