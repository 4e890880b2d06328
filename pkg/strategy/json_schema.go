package strategy

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// ToJSONSchema converts a struct to a JSON schema
func ToJSONSchema[T any](t T) (string, error) {
	return toJSONSchema(t, "")
}

// ToIndentedJSONSchema is ToJSONSchema with indented output, for printing.
func ToIndentedJSONSchema[T any](t T) (string, error) {
	return toJSONSchema(t, "  ")
}

func toJSONSchema(t any, indent string) (string, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = true
	schema := r.Reflect(t)

	var (
		jsonSchemaBytes []byte
		err             error
	)

	if indent == "" {
		jsonSchemaBytes, err = json.Marshal(schema)
	} else {
		jsonSchemaBytes, err = json.MarshalIndent(schema, "", indent)
	}

	if err != nil {
		return "", err
	}

	return string(jsonSchemaBytes), nil
}
