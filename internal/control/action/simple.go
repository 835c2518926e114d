package action

// Simple implements the Action interface.
// It models a simple action as a func() bool which is called on Do.
type Simple struct {
	action  func() bool
	explain func() string
}

// Do performs this simple action.
func (a *Simple) Do() bool {
	return a.action()
}

// Explain returns the explanation for this simple action's Do member.
func (a *Simple) Explain() string {
	return a.explain()
}

// NewSimple returns a pointer to a new simple action, which stores the given
// action function and the given explainer to use when prompted with Do or
// Explain respectively.
func NewSimple(explainer func() string, action func() bool) *Simple {
	return &Simple{
		action:  action,
		explain: explainer,
	}
}

// Always wraps an action without an outcome into one that always reports an
// effect.
func Always(action func()) func() bool {
	return func() bool {
		action()
		return true
	}
}
