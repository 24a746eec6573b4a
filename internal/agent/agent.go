// Package agent defines the contract between a conversational agent host and
// the plugins it loads.
//
// A Plugin bundles Actions. Each Action pairs a validation predicate with a
// Handler; the host picks an action for an incoming message, asks Validate
// whether it applies and then runs the Handler, which produces at most one
// reply. Host is a small in-process implementation of that host side.
package agent

import "context"

// Message is the incoming chat message that triggered an action.
type Message struct {
	Text string // free text typed by the user
}

// State is the conversational state the host keeps between turns.
type State map[string]any

// Options carries caller-supplied parameters for a single invocation.
type Options map[string]any

// String returns the option stored under key when it is a non-empty string.
func (o Options) String(key string) (string, bool) {
	v, ok := o[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Invocation is everything a Handler receives besides the context and runtime.
type Invocation struct {
	Message Message
	State   State
	Options Options

	// Silent means the caller declines delivery of a reply. Handlers must not
	// do any work for a silent invocation.
	Silent bool
}

// Content is a reply produced by a Handler.
type Content struct {
	Text   string // reply shown to the user
	Action string // name of the action that produced the reply
}

// Runtime exposes the host to plugins.
type Runtime interface {
	// AgentID identifies the agent instance running the action.
	AgentID() string
}

// Validator reports whether an action applies to the invocation.
type Validator func(ctx context.Context, rt Runtime, inv Invocation) bool

// Handler runs an action. The boolean is false when no reply is produced.
type Handler func(ctx context.Context, rt Runtime, inv Invocation) (Content, bool)

// ExampleMessage is one turn of an example dialogue.
type ExampleMessage struct {
	User    string
	Content Content
}

// Action describes a capability offered by a plugin.
type Action struct {
	Name        string             // unique identifier, e.g. GET_BALANCE
	Similes     []string           // alias phrases used for intent matching
	Description string             // human readable summary
	Examples    [][]ExampleMessage // sample dialogues for few-shot prompting
	Validate    Validator
	Handler     Handler
}

// Evaluator inspects a conversation after a reply has been produced.
type Evaluator interface {
	Name() string
}

// Provider contributes context to the agent before it decides on an action.
type Provider interface {
	Name() string
}

// Service is a long-lived component owned by the host on behalf of a plugin.
type Service interface {
	Name() string
}

// Plugin groups the collaborators a plugin registers with the host.
type Plugin struct {
	Name        string
	Description string
	Actions     []Action
	Evaluators  []Evaluator
	Providers   []Provider
	Services    []Service
}

// runtime is a fixed-identity Runtime.
type runtime struct {
	agentID string
}

// Ensure compile-time compliance with the Runtime interface.
var _ Runtime = (*runtime)(nil)

// NewRuntime returns a Runtime identified by agentID.
func NewRuntime(agentID string) *runtime {
	return &runtime{
		agentID: agentID,
	}
}

func (r *runtime) AgentID() string {
	return r.agentID
}
