package action

import (
	"fmt"
	"strings"
)

// Keymap maps keys to actions, remembering the order of binding for help
// output.
type Keymap struct {
	bindings map[rune]Action
	order    []rune
}

// NewKeymap returns an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: map[rune]Action{}}
}

// Bind binds the key to the action, replacing any previous binding.
func (k *Keymap) Bind(key rune, action Action) *Keymap {
	if _, ok := k.bindings[key]; !ok {
		k.order = append(k.order, key)
	}
	k.bindings[key] = action
	return k
}

// Lookup returns the action bound to the key.
func (k *Keymap) Lookup(key rune) (Action, bool) {
	a, ok := k.bindings[key]
	return a, ok
}

// Help returns a one-line summary of all bindings, e.g.
// "n: next month, p: previous month".
func (k *Keymap) Help() string {
	parts := make([]string, 0, len(k.order))
	for _, key := range k.order {
		parts = append(parts, fmt.Sprintf("%c: %s", key, k.bindings[key].Explain()))
	}
	return strings.Join(parts, ", ")
}
