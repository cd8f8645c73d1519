// Package schemas bundles the JSON Schemas describing the backend API's
// response shapes and validates responses against them. The schemas double
// as machine-checked documentation of the wire contract in internal/types.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	validation "github.com/jonathan/jobdeck/internal/schemas"
)

//go:embed *.schema.json
var files embed.FS

// listSchemas maps array-valued responses to the schema of their elements.
var listSchemas = map[string]string{
	"job_list":       "job",
	"email_list":     "email",
	"search_results": "search_result",
}

// Get returns the raw schema content for a name (without the .schema.json
// suffix).
func Get(name string) ([]byte, error) {
	data, err := files.ReadFile(name + ".schema.json")
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q: %w", name, err)
	}
	return data, nil
}

// Names lists the bundled schema names in sorted order.
func Names() []string {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".schema.json"))
	}
	sort.Strings(names)
	return names
}

// ValidateResponse validates a response body against the named schema.
// List schemas validate each element against the element schema so a single
// malformed record is reported with its index.
func ValidateResponse(name string, body []byte) error {
	if elemName, ok := listSchemas[name]; ok {
		return validateList(name, elemName, body)
	}

	schema, err := Get(name)
	if err != nil {
		return err
	}
	return validation.ValidateJSONString(string(schema), string(body))
}

func validateList(name, elemName string, body []byte) error {
	schema, err := Get(elemName)
	if err != nil {
		return err
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		return fmt.Errorf("%s: expected a JSON array: %w", name, err)
	}

	for i, element := range elements {
		if err := validation.ValidateJSONString(string(schema), string(element)); err != nil {
			return fmt.Errorf("%s[%d]: %w", name, i, err)
		}
	}
	return nil
}
