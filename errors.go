package kazuka

import "fmt"

// ConfigError is returned when a strategy's sync_state (or any other
// startup-only step) fails to load its configuration, e.g. a malformed CSV
// pool map. It aborts engine startup.
type ConfigError struct {
	Component string
	Err       error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %v", e.Component, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// InvariantError indicates a programming error that should never occur at
// runtime, e.g. a map lookup that succeeded by address but then missed the
// value it was known to hold. Callers that detect one of these should
// panic; they are not meant to be recovered from.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "invariant violated: " + e.Msg
}
