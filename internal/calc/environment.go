package calc

import "fmt"

// Environment maps variable names to their last-assigned values. A single
// flat scope lives for the whole calculator session.
type Environment struct {
	values map[string]Value
}

func NewEnvironment() *Environment {
	return &Environment{make(map[string]Value)}
}

// Define binds the value to the name, replacing any previous binding
func (env *Environment) Define(name string, value Value) {
	env.values[name] = value
}

// Get returns the value bound to the name referenced by the given token
func (env *Environment) Get(name *Token) (Value, error) {
	if value, ok := env.values[name.Lexeme]; ok {
		return value, nil
	}
	msg := fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)
	return Value{}, NewEvalError(name, msg)
}

// Snapshot returns a copy of all current bindings
func (env *Environment) Snapshot() map[string]Value {
	values := make(map[string]Value, len(env.values))
	for name, value := range env.values {
		values[name] = value
	}
	return values
}

// Replace swaps the current bindings for a copy of the given ones
func (env *Environment) Replace(values map[string]Value) {
	env.values = make(map[string]Value, len(values))
	for name, value := range values {
		env.values[name] = value
	}
}

// Clear removes every binding
func (env *Environment) Clear() {
	env.values = make(map[string]Value)
}
