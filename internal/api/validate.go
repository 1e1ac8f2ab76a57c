package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// payloadSchema pairs a schema name with its JSON Schema definition.
type payloadSchema struct {
	name       string
	definition map[string]any
}

// quizSchema constrains the generate endpoint's quiz payload.
var quizSchema = payloadSchema{
	name: "quiz",
	definition: map[string]any{
		"type":     "object",
		"required": []any{"quiz_id", "skill", "questions"},
		"properties": map[string]any{
			"quiz_id":         map[string]any{"type": "string", "minLength": 1},
			"skill":           map[string]any{"type": "string"},
			"difficulty":      map[string]any{"type": "string"},
			"total_questions": map[string]any{"type": "integer"},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []any{"id", "question", "options"},
					"properties": map[string]any{
						"id":       map[string]any{"type": "string", "minLength": 1},
						"question": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":     "array",
							"minItems": 2,
							"items":    map[string]any{"type": "string"},
						},
					},
				},
			},
		},
	},
}

// quizResultSchema constrains the evaluate endpoint's results payload.
var quizResultSchema = payloadSchema{
	name: "quiz-result",
	definition: map[string]any{
		"type":     "object",
		"required": []any{"quiz_id", "score_percentage", "results"},
		"properties": map[string]any{
			"quiz_id":          map[string]any{"type": "string"},
			"total_questions":  map[string]any{"type": "integer"},
			"correct_answers":  map[string]any{"type": "integer"},
			"score_percentage": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			"passed":           map[string]any{"type": "boolean"},
			"xp_earned":        map[string]any{"type": "integer", "minimum": 0},
			"feedback":         map[string]any{"type": "string"},
			"results": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"question", "is_correct"},
					"properties": map[string]any{
						"question":   map[string]any{"type": "string"},
						"is_correct": map[string]any{"type": "boolean"},
					},
				},
			},
		},
	},
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validatePayload validates raw JSON against the given schema definition.
// Returns *ErrInvalidResponse on failure.
func validatePayload(schema payloadSchema, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{
			Body: raw,
			Err:  fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{
			Body: raw,
			Err:  fmt.Errorf("compile schema %q: %w", schema.name, err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{
			Body: raw,
			Err:  fmt.Errorf("schema validation failed: %w", err),
		}
	}

	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and
// caches it.
func getCompiledSchema(schema payloadSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value, not raw bytes.
	// Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(schema.definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.name, compiled)
	return compiled, nil
}
