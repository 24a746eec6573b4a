package agent

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode"
)

var (
	// ErrDuplicateAction is returned when two registered actions share a name.
	ErrDuplicateAction = errors.New("action already registered")

	// ErrInvalidAction is returned when an action lacks a name or a handler.
	ErrInvalidAction = errors.New("invalid action")

	// ErrUnknownAction is returned when no registered action has the requested name.
	ErrUnknownAction = errors.New("unknown action")

	// ErrNoMatch is returned when a message matches no registered action.
	ErrNoMatch = errors.New("no action matches the message")

	// ErrRejected is returned when the action's validation predicate declines the invocation.
	ErrRejected = errors.New("action rejected the invocation")
)

// Host keeps the registered plugins and dispatches invocations to their actions.
// It is safe for concurrent use.
type Host struct {
	runtime Runtime

	mu      sync.RWMutex
	plugins []Plugin
	actions []Action // registration order
	byName  map[string]int
}

// NewHost creates an empty Host that runs actions under rt.
func NewHost(rt Runtime) *Host {
	return &Host{
		runtime: rt,
		byName:  make(map[string]int),
	}
}

// Register adds every action of p to the host. Registration is all or
// nothing: on error none of the plugin's actions are added.
func (h *Host) Register(p Plugin) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	seen := make(map[string]struct{}, len(p.Actions))
	for _, a := range p.Actions {
		if a.Name == "" || a.Handler == nil {
			return fmt.Errorf("%w: plugin %q: action %q", ErrInvalidAction, p.Name, a.Name)
		}

		key := strings.ToUpper(a.Name)
		if _, ok := h.byName[key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateAction, a.Name)
		}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateAction, a.Name)
		}
		seen[key] = struct{}{}
	}

	for _, a := range p.Actions {
		h.byName[strings.ToUpper(a.Name)] = len(h.actions)
		h.actions = append(h.actions, a)
	}
	h.plugins = append(h.plugins, p)

	return nil
}

// Plugins returns the registered plugins in registration order.
func (h *Host) Plugins() []Plugin {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return slices.Clone(h.plugins)
}

// Actions returns the registered actions in registration order.
func (h *Host) Actions() []Action {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return slices.Clone(h.actions)
}

// Action looks up an action by name, ignoring case.
func (h *Host) Action(name string) (Action, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	i, ok := h.byName[strings.ToUpper(name)]
	if !ok {
		return Action{}, false
	}
	return h.actions[i], true
}

// Match picks the action whose name or simile appears in text as a whole
// phrase, ignoring case. Underscores in names and similes count as spaces, so
// GET_LATEST_BLOCK matches "get latest block". The longest matching phrase
// wins; ties go to the action registered first.
func (h *Host) Match(text string) (Action, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	words := phraseWords(text)

	var (
		best    Action
		bestLen int
	)
	for _, a := range h.actions {
		for _, phrase := range append([]string{a.Name}, a.Similes...) {
			p := phraseWords(phrase)
			if len(p) > bestLen && containsPhrase(words, p) {
				best, bestLen = a, len(p)
			}
		}
	}

	return best, bestLen > 0
}

// Invoke runs the named action. The boolean reports whether a reply was produced.
func (h *Host) Invoke(ctx context.Context, name string, inv Invocation) (Content, bool, error) {
	a, ok := h.Action(name)
	if !ok {
		return Content{}, false, fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}

	return h.run(ctx, a, inv)
}

// Ask matches the message text to an action and runs it.
func (h *Host) Ask(ctx context.Context, inv Invocation) (Content, bool, error) {
	a, ok := h.Match(inv.Message.Text)
	if !ok {
		return Content{}, false, ErrNoMatch
	}

	return h.run(ctx, a, inv)
}

func (h *Host) run(ctx context.Context, a Action, inv Invocation) (Content, bool, error) {
	if a.Validate != nil && !a.Validate(ctx, h.runtime, inv) {
		return Content{}, false, fmt.Errorf("%w: %s", ErrRejected, a.Name)
	}

	content, ok := a.Handler(ctx, h.runtime, inv)
	return content, ok, nil
}

// phraseWords lowercases s and splits it into runs of letters and digits.
func phraseWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// containsPhrase reports whether phrase occurs as a contiguous run in words.
func containsPhrase(words, phrase []string) bool {
	if len(phrase) == 0 {
		return false
	}

	for i := 0; i+len(phrase) <= len(words); i++ {
		if slices.Equal(words[i:i+len(phrase)], phrase) {
			return true
		}
	}
	return false
}
