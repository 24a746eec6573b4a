package cli

import (
	"context"
	"io"
	"os"

	"github.com/gabapcia/modescope/internal/agent"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the modescope CLI application.
//
// It registers all available commands, including:
//
//   - `balance`: Replies with the balance of an address.
//   - `block`: Replies with the latest block.
//   - `transactions`: Replies with the recent transactions of an address.
//   - `ask`: Routes a free-text message to the matching action.
//   - `actions`: Lists the registered actions.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - h: The agent host holding the registered plugins.
//
// Replies are written to standard output.
func Run(ctx context.Context, h *agent.Host) error {
	return newApp(h, os.Stdout).Run(ctx, os.Args)
}

// newApp builds the command tree writing replies to w.
func newApp(h *agent.Host, w io.Writer) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "modescope",
		Description:           "Query the Mode network explorer through the modescope agent actions.",
		Usage:                 "modescope [command] [flags]",
		Writer:                w,
		Commands: []*cli.Command{
			balanceCommand(h, w),
			latestBlockCommand(h, w),
			transactionsCommand(h, w),
			askCommand(h, w),
			listActionsCommand(h, w),
		},
	}
}
