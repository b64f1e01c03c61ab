// Package prompts provides the embedded prompt templates sent to the text
// generator. Templates live in JSON files keyed by prompt name.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// CompatibilityFile holds the system and user prompts for an analysis.
const CompatibilityFile = "compatibility.json"

// Prompt keys in CompatibilityFile.
const (
	KeySystem = "compatibility-system"
	KeyUser   = "compatibility-user"
)

//go:embed *.json
var promptFiles embed.FS

var (
	cache   = make(map[string]map[string]string)
	cacheMu sync.RWMutex
)

// Get returns the prompt stored under key in filename.
func Get(filename, key string) (string, error) {
	set, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	prompt, ok := set[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// Format substitutes {{.Key}} placeholders. Placeholders with no value are left as-is.
func Format(template string, data map[string]string) string {
	pairs := make([]string, 0, len(data)*2)
	for key, value := range data {
		pairs = append(pairs, "{{."+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Compatibility renders the system and user prompts for a pair of types,
// each given with the display name shown next to its code.
func Compatibility(typeOne, typeOneName, typeTwo, typeTwoName string) (system, user string, err error) {
	system, err = Get(CompatibilityFile, KeySystem)
	if err != nil {
		return "", "", err
	}
	tmpl, err := Get(CompatibilityFile, KeyUser)
	if err != nil {
		return "", "", err
	}

	user = Format(tmpl, map[string]string{
		"TypeOne":     typeOne,
		"TypeOneName": typeOneName,
		"TypeTwo":     typeTwo,
		"TypeTwoName": typeTwoName,
	})
	return system, user, nil
}

func loadFile(filename string) (map[string]string, error) {
	cacheMu.RLock()
	set, ok := cache[filename]
	cacheMu.RUnlock()
	if ok {
		return set, nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = set
	cacheMu.Unlock()
	return set, nil
}

// ClearCache drops parsed prompt files. Tests use it to force a reload.
func ClearCache() {
	cacheMu.Lock()
	cache = make(map[string]map[string]string)
	cacheMu.Unlock()
}
