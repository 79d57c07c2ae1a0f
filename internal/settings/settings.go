// Package settings manages the guard's registration in Claude Code
// settings files. Only the hooks section is interpreted; every other key
// in the file is preserved byte for byte.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const preToolUseEvent = "PreToolUse"

// DefaultPath is the project-level Claude Code settings file.
const DefaultPath = ".claude/settings.json"

// hookCommand is a single command entry in a hook matcher.
type hookCommand struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"`
}

// hookMatcher groups hook commands under a tool-name matcher.
type hookMatcher struct {
	Matcher string        `json:"matcher,omitempty"`
	Hooks   []hookCommand `json:"hooks"`
}

// Install registers command as a PreToolUse hook for the Bash tool in the
// settings file at path, creating the file and its parent directory when
// missing. Returns true when the hook was added and false when the command
// was already registered.
func Install(path, command string) (bool, error) {
	doc, err := loadDocument(path)
	if err != nil {
		return false, err
	}

	hooksByEvent, err := decodeHooks(doc)
	if err != nil {
		return false, err
	}

	if isRegistered(hooksByEvent[preToolUseEvent], command) {
		return false, nil
	}

	hooksByEvent[preToolUseEvent] = append(hooksByEvent[preToolUseEvent], hookMatcher{
		Matcher: "Bash",
		Hooks: []hookCommand{
			{Type: "command", Command: command},
		},
	})

	encoded, err := json.Marshal(hooksByEvent)
	if err != nil {
		return false, fmt.Errorf("failed to encode hooks: %w", err)
	}
	doc["hooks"] = encoded

	if err := writeDocument(path, doc); err != nil {
		return false, err
	}

	return true, nil
}

// IsInstalled reports whether command is registered as a PreToolUse hook
// in the settings file at path. A missing file means not installed.
func IsInstalled(path, command string) (bool, error) {
	doc, err := loadDocument(path)
	if err != nil {
		return false, err
	}

	hooksByEvent, err := decodeHooks(doc)
	if err != nil {
		return false, err
	}

	return isRegistered(hooksByEvent[preToolUseEvent], command), nil
}

// isRegistered reports whether any matcher carries the given hook command.
func isRegistered(matchers []hookMatcher, command string) bool {
	for _, matcher := range matchers {
		for _, hook := range matcher.Hooks {
			if hook.Type == "command" && hook.Command == command {
				return true
			}
		}
	}
	return false
}

// loadDocument reads the settings file as a raw key-value document.
// A missing file yields an empty document.
func loadDocument(path string) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	doc := map[string]json.RawMessage{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
		}
	}

	return doc, nil
}

// decodeHooks extracts the hooks section from a settings document.
func decodeHooks(doc map[string]json.RawMessage) (map[string][]hookMatcher, error) {
	hooksByEvent := map[string][]hookMatcher{}

	raw, ok := doc["hooks"]
	if !ok {
		return hooksByEvent, nil
	}

	if err := json.Unmarshal(raw, &hooksByEvent); err != nil {
		return nil, fmt.Errorf("failed to parse hooks section: %w", err)
	}

	return hooksByEvent, nil
}

// writeDocument writes the settings document back to path.
func writeDocument(path string, doc map[string]json.RawMessage) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}

	return nil
}
