// Package prompts provides a loader for externalized LLM prompt templates.
// Prompts are stored as a JSON file and embedded at compile time.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed grading.json
var gradingFile []byte

var (
	loadOnce sync.Once
	loaded   map[string]string
	loadErr  error
)

// Get retrieves a grading prompt template by key.
// Returns an error if the embedded file cannot be parsed or the key is missing.
func Get(key string) (string, error) {
	loadOnce.Do(func() {
		loadErr = json.Unmarshal(gradingFile, &loaded)
	})
	if loadErr != nil {
		return "", fmt.Errorf("failed to parse embedded prompt file: %w", loadErr)
	}

	prompt, exists := loaded[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return prompt, nil
}

// MustGet retrieves a prompt by key, panicking if not found.
// Use this for prompts that are required at initialization time.
func MustGet(key string) string {
	prompt, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces template placeholders in the form {{.Key}} with values
// from data. This is a simple template system for prompt customization.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
