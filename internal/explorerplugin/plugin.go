// Package explorerplugin exposes the explorer Service to an agent host as a
// plugin with three actions: GET_BALANCE, GET_LATEST_BLOCK and
// GET_TRANSACTIONS.
//
// Every handler produces exactly one reply per non-silent invocation. Explorer
// failures never escape as errors; they are turned into reply text here.
package explorerplugin

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/modescope/internal/agent"
	"github.com/gabapcia/modescope/internal/explorer"
	"github.com/gabapcia/modescope/internal/pkg/logger"
	"github.com/gabapcia/modescope/internal/pkg/telemetry"
	"github.com/gabapcia/modescope/internal/pkg/types"
	"github.com/gabapcia/modescope/internal/pkg/validator"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// Name is the plugin name announced to the host.
	Name = "modescope"

	// OptionAddress is the invocation option that overrides address extraction.
	OptionAddress = "address"

	ActionBalance      = "GET_BALANCE"
	ActionLatestBlock  = "GET_LATEST_BLOCK"
	ActionTransactions = "GET_TRANSACTIONS"

	// PromptAddress is the reply sent when no address can be resolved.
	PromptAddress = "Please provide a valid address."
)

// ErrNoAddress is returned when neither the message nor the options carry an address.
var ErrNoAddress = errors.New("no address found in message or options")

// outcome labels recorded on the invocation counter.
const (
	outcomeSuccess         = "success"
	outcomeNoAddress       = "no_address"
	outcomeEmptyResponse   = "empty_response"
	outcomeUpstreamFailure = "upstream_failure"
	outcomeError           = "error"
)

// plugin holds what the action handlers share. It carries no per-invocation state.
type plugin struct {
	svc         explorer.Service
	invocations metric.Int64Counter
}

// New builds the plugin value registered with the host.
func New(svc explorer.Service) (agent.Plugin, error) {
	invocations, err := telemetry.Meter().Int64Counter("modescope.action.invocations",
		metric.WithDescription("Number of explorer action invocations by action and outcome."),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return agent.Plugin{}, fmt.Errorf("creating invocation counter: %w", err)
	}

	p := &plugin{
		svc:         svc,
		invocations: invocations,
	}

	return agent.Plugin{
		Name:        Name,
		Description: "Query the Mode network explorer for balances, blocks and transactions.",
		Actions: []agent.Action{
			p.balanceAction(),
			p.latestBlockAction(),
			p.transactionsAction(),
		},
		Evaluators: []agent.Evaluator{},
		Providers:  []agent.Provider{},
		Services:   []agent.Service{},
	}, nil
}

// always accepts every invocation; address problems are reported by the handler.
func always(context.Context, agent.Runtime, agent.Invocation) bool {
	return true
}

// run wraps the body of an action with the behavior every handler shares:
// silent invocations are skipped, a per-invocation logger is derived and the
// outcome is counted.
func (p *plugin) run(action string, body func(ctx context.Context, inv agent.Invocation) (string, string)) agent.Handler {
	return func(ctx context.Context, rt agent.Runtime, inv agent.Invocation) (agent.Content, bool) {
		if inv.Silent {
			return agent.Content{}, false
		}

		ctx = logger.Derive(ctx,
			"invocation.id", newInvocationID(),
			"action.name", action,
			"agent.id", agentID(rt),
		)

		text, outcome := body(ctx, inv)
		p.invocations.Add(ctx, 1, metric.WithAttributes(
			attribute.String("action", action),
			attribute.String("outcome", outcome),
		))

		logger.Debug(ctx, "action completed", "outcome", outcome)
		return agent.Content{Text: text, Action: action}, true
	}
}

// resolveAddress returns the first address in the message text, falling back
// to a well-shaped address option.
func resolveAddress(inv agent.Invocation) (string, error) {
	if address, ok := types.FindAddress(inv.Message.Text); ok {
		return address, nil
	}

	if address, ok := inv.Options.String(OptionAddress); ok {
		if err := validator.Var(address, "required,eth_addr"); err == nil {
			return address, nil
		}
	}

	return "", ErrNoAddress
}

// replyForError maps a service error to the reply text and outcome label.
func replyForError(ctx context.Context, operation string, err error) (string, string) {
	generic := "Failed to fetch " + operation

	if errors.Is(err, explorer.ErrEmptyResponse) {
		return generic, outcomeEmptyResponse
	}

	var apiErr *explorer.APIError
	if errors.As(err, &apiErr) {
		logger.Warn(ctx, "explorer reported a failure", "status", apiErr.StatusCode, "message", apiErr.Message)
		if apiErr.Message == "" {
			return generic, outcomeUpstreamFailure
		}
		return apiErr.Message, outcomeUpstreamFailure
	}

	logger.Error(ctx, "explorer request failed", "operation", operation, "error", err)
	return fmt.Sprintf("%s: %s", generic, err.Error()), outcomeError
}

func newInvocationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func agentID(rt agent.Runtime) string {
	if rt == nil {
		return ""
	}
	return rt.AgentID()
}
