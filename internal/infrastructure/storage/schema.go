package storage

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// payloadSchemaJSON describes a well-formed stored draft document.
// Validation is advisory: Load reconciles damaged payloads instead of
// rejecting them, but doctor uses this to tell the user exactly what is
// off with the stored bytes.
const payloadSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["clientInfo", "checklist", "generalNotes"],
  "properties": {
    "clientInfo": {
      "type": "object",
      "properties": {
        "clientName": { "type": "string" },
        "propertyAddress": { "type": "string" },
        "inspectionDate": { "type": "string" },
        "engineerName": { "type": "string" },
        "registrationNumber": { "type": "string" }
      }
    },
    "checklist": {
      "type": "array",
      "minItems": 8,
      "maxItems": 8,
      "items": {
        "type": "object",
        "required": ["id", "status"],
        "properties": {
          "id": { "type": "string" },
          "label": { "type": "string" },
          "notes": { "type": "string" },
          "status": {
            "type": "string",
            "enum": ["satisfactory", "monitor", "defect_action_required"]
          },
          "photoUri": { "type": "string" }
        }
      }
    },
    "generalNotes": { "type": "string" }
  }
}`

var payloadSchemaLoader = gojsonschema.NewStringLoader(payloadSchemaJSON)

// ValidatePayload checks stored draft bytes against the document schema
// and returns a description of each violation. A nil slice means the
// payload is well formed.
func ValidatePayload(data []byte) ([]string, error) {
	result, err := gojsonschema.Validate(payloadSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to validate payload: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return problems, nil
}
