package scenario

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed scenario_schema.json
var schemaJSON string

// SchemaJSON returns the JSON Schema document the validator applies to
// raw scenario documents. It is also served as the scenario://schema
// resource.
func SchemaJSON() string { return schemaJSON }

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("scenario_schema.json", strings.NewReader(schemaJSON)); err != nil {
		panic(fmt.Sprintf("scenario schema: %v", err))
	}
	return compiler.MustCompile("scenario_schema.json")
}

// ValidateDocument checks a raw JSON scenario document: first structurally
// against the embedded schema, then semantically via Validate. The error
// return is non-nil only when data is not well-formed JSON; schema and
// semantic violations come back in the list.
func ValidateDocument(data []byte) ([]ValidationError, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scenario document: %w", err)
	}

	var r Result
	if err := compiledSchema.Validate(doc); err != nil {
		if verr, ok := err.(*jsonschema.ValidationError); ok {
			collectSchemaErrors(verr, &r)
		} else {
			r.Add("", err.Error())
		}
		// Structural failure: the document may not decode into
		// ScenarioConfig, so the semantic pass is skipped.
		return r.Errors, nil
	}

	var cfg ScenarioConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode scenario document: %w", err)
	}
	return append(r.Errors, Validate(&cfg)...), nil
}

// collectSchemaErrors flattens a jsonschema error tree into the result,
// leaf causes first.
func collectSchemaErrors(err *jsonschema.ValidationError, r *Result) {
	if len(err.Causes) == 0 {
		r.Add(fieldFromPointer(err.InstanceLocation), err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, r)
	}
}

// fieldFromPointer converts a JSON Pointer like "/refund_result/total_refund"
// into the dotted path the semantic validator uses.
func fieldFromPointer(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	return strings.ReplaceAll(ptr, "/", ".")
}
