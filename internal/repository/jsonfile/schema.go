package jsonfile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tasks.schema.json
var schemaSource string

var documentSchema = jsonschema.MustCompileString("tasks.schema.json", schemaSource)

// validateDocument checks raw JSON against the task list schema and returns
// one error naming the first offending location.
func validateDocument(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	err := documentSchema.Validate(doc)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	leaf := firstLeaf(ve)
	location := strings.TrimPrefix(leaf.InstanceLocation, "/")
	if location == "" {
		location = "document"
	}
	return fmt.Errorf("schema violation at %s: %s", location, leaf.Message)
}

func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
