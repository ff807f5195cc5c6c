package grading

import "github.com/abhisek/dbquest/internal/llm"

// AnswerCheckSchema defines the JSON schema for essay grading responses.
var AnswerCheckSchema = &llm.Schema{
	Name:        "answer-check",
	Description: "Judgment of a free-text learner answer against a target concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the answer demonstrates understanding of the target concept",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Short constructive feedback in Korean, under 100 characters",
			},
		},
		"required":             []any{"is_correct", "feedback"},
		"additionalProperties": false,
	},
}
