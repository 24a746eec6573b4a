package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabapcia/modescope/internal/agent"
	"github.com/gabapcia/modescope/internal/explorerplugin"

	"github.com/urfave/cli/v3"
)

// errNoReply is returned when a non-silent invocation produced no reply.
var errNoReply = errors.New("action produced no reply")

// reply runs the named action with the given invocation and prints its reply.
func reply(ctx context.Context, h *agent.Host, w io.Writer, action string, inv agent.Invocation) error {
	content, ok, err := h.Invoke(ctx, action, inv)
	if err != nil {
		return err
	}
	if !ok {
		return errNoReply
	}

	_, err = fmt.Fprintln(w, content.Text)
	return err
}

func addressOptions(address string) agent.Options {
	if address == "" {
		return nil
	}
	return agent.Options{explorerplugin.OptionAddress: address}
}

// balanceCommand returns a CLI command that prints the balance of an address.
//
// Usage example:
//
//	modescope balance --address 0xABC123...
func balanceCommand(h *agent.Host, w io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "balance",
		Description: "Print the native coin balance of an address on the Mode network.",
		Usage:       "Fetches the balance of an address. Must provide the address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Account address (0x followed by 40 hex characters)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return reply(ctx, h, w, explorerplugin.ActionBalance, agent.Invocation{
				Options: addressOptions(c.String("address")),
			})
		},
	}
}

// latestBlockCommand returns a CLI command that prints the latest block.
//
// Usage example:
//
//	modescope block
func latestBlockCommand(h *agent.Host, w io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "block",
		Description: "Print the most recent block of the Mode network.",
		Usage:       "Fetches the latest block.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return reply(ctx, h, w, explorerplugin.ActionLatestBlock, agent.Invocation{})
		},
	}
}

// transactionsCommand returns a CLI command that prints the recent transactions of an address.
//
// Usage example:
//
//	modescope transactions --address 0xABC123...
func transactionsCommand(h *agent.Host, w io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "transactions",
		Description: "Print the most recent transactions of an address on the Mode network.",
		Usage:       "Fetches recent transactions of an address. Must provide the address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Account address (0x followed by 40 hex characters)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return reply(ctx, h, w, explorerplugin.ActionTransactions, agent.Invocation{
				Options: addressOptions(c.String("address")),
			})
		},
	}
}

// askCommand returns a CLI command that routes a free-text message to the
// action matching it, the way a chat host would.
//
// Usage example:
//
//	modescope ask what is the balance of 0xABC123...
func askCommand(h *agent.Host, w io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "ask",
		Description: "Send a chat message and print the reply of the action it matches.",
		Usage:       "Matches the message against action names and similes, then runs the action.",
		ArgsUsage:   "<message...>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Address used when the message does not contain one",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			text := strings.Join(c.Args().Slice(), " ")
			if strings.TrimSpace(text) == "" {
				return errors.New("a message is required")
			}

			content, ok, err := h.Ask(ctx, agent.Invocation{
				Message: agent.Message{Text: text},
				Options: addressOptions(c.String("address")),
			})
			if err != nil {
				return err
			}
			if !ok {
				return errNoReply
			}

			_, err = fmt.Fprintln(w, content.Text)
			return err
		},
	}
}

// listActionsCommand returns a CLI command that lists the registered actions.
//
// Usage example:
//
//	modescope actions
func listActionsCommand(h *agent.Host, w io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "actions",
		Description: "List the actions registered with the agent host.",
		Usage:       "Prints each action with its description and similes.",
		Action: func(ctx context.Context, c *cli.Command) error {
			for _, a := range h.Actions() {
				if _, err := fmt.Fprintf(w, "%s: %s\n  similes: %s\n", a.Name, a.Description, strings.Join(a.Similes, ", ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
