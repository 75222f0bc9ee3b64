package calc

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// sessionDisk is the on-disk form of a saved session: the variable bindings
// as a plain YAML mapping.
type sessionDisk struct {
	Variables map[string]Value `yaml:"variables"`
}

// SaveVariables writes the current variable bindings to a YAML session
// file, so a later LoadVariables can restore them.
func (calc *Calculator) SaveVariables(path string) error {
	data := sessionDisk{Variables: calc.Variables()}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("session: marshal %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("session: encoder close: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("session: write %s: %w", path, err)
	}
	return nil
}

// LoadVariables replaces the current variable bindings with the ones stored
// in a YAML session file. The file is decoded in full before the
// environment is touched, a malformed file leaves the session unchanged.
func (calc *Calculator) LoadVariables(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw sessionDisk
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return fmt.Errorf("session: parse %s: %w", path, err)
	}

	calc.interpreter.Environment().Replace(raw.Variables)
	return nil
}
