// Package action binds user input to calendar operations.
package action

// Action is an operation triggered by user input.
type Action interface {
	// Do performs the action and reports whether it had an effect.
	Do() bool
	// Explain describes the action, e.g. for a help line.
	Explain() string
}
