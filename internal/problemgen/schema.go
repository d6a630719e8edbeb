package problemgen

// BankSchema defines the JSON schema for imported question bank files.
var BankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"description": "Bank file format version",
		},
		"pairs": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"grade": map[string]any{
						"type":    "integer",
						"minimum": 2,
						"maximum": 3,
					},
					"difficulty": map[string]any{
						"type":    "integer",
						"minimum": 1,
						"maximum": 10,
					},
					"a": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
					"b": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
				},
				"required":             []any{"grade", "difficulty", "a", "b"},
				"additionalProperties": false,
			},
			"description": "Operand pairs bucketed by grade and difficulty",
		},
	},
	"required":             []any{"version", "pairs"},
	"additionalProperties": false,
}
