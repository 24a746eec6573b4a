package explorerplugin

import (
	"context"

	"github.com/gabapcia/modescope/internal/agent"
)

const exampleAddress = "0x52908400098527886E0F7030069857D2E4169EE7"

func (p *plugin) balanceAction() agent.Action {
	return agent.Action{
		Name:        ActionBalance,
		Similes:     []string{"CHECK_BALANCE", "WALLET_BALANCE", "ADDRESS_BALANCE", "BALANCE"},
		Description: "Get the native coin balance of an address on the Mode network.",
		Examples: [][]agent.ExampleMessage{
			{
				{User: "{{user1}}", Content: agent.Content{Text: "What's the balance of " + exampleAddress + "?"}},
				{User: "{{agent}}", Content: agent.Content{Text: "Let me check that balance for you.", Action: ActionBalance}},
			},
		},
		Validate: always,
		Handler: p.run(ActionBalance, func(ctx context.Context, inv agent.Invocation) (string, string) {
			address, err := resolveAddress(inv)
			if err != nil {
				return PromptAddress, outcomeNoAddress
			}

			reply, err := p.svc.Balance(ctx, address)
			if err != nil {
				return replyForError(ctx, "balance", err)
			}
			return reply, outcomeSuccess
		}),
	}
}

func (p *plugin) latestBlockAction() agent.Action {
	return agent.Action{
		Name:        ActionLatestBlock,
		Similes:     []string{"LATEST_BLOCK", "CURRENT_BLOCK", "BLOCK_NUMBER", "BLOCK_HEIGHT"},
		Description: "Get the most recent block produced on the Mode network.",
		Examples: [][]agent.ExampleMessage{
			{
				{User: "{{user1}}", Content: agent.Content{Text: "What's the latest block on Mode?"}},
				{User: "{{agent}}", Content: agent.Content{Text: "Fetching the latest block.", Action: ActionLatestBlock}},
			},
		},
		Validate: always,
		Handler: p.run(ActionLatestBlock, func(ctx context.Context, _ agent.Invocation) (string, string) {
			reply, err := p.svc.LatestBlock(ctx)
			if err != nil {
				return replyForError(ctx, "latest block", err)
			}
			return reply, outcomeSuccess
		}),
	}
}

func (p *plugin) transactionsAction() agent.Action {
	return agent.Action{
		Name:        ActionTransactions,
		Similes:     []string{"RECENT_TRANSACTIONS", "TRANSACTION_HISTORY", "LIST_TRANSACTIONS", "TRANSACTIONS"},
		Description: "List the most recent transactions of an address on the Mode network.",
		Examples: [][]agent.ExampleMessage{
			{
				{User: "{{user1}}", Content: agent.Content{Text: "Show me recent transactions for " + exampleAddress}},
				{User: "{{agent}}", Content: agent.Content{Text: "Here are the latest transactions.", Action: ActionTransactions}},
			},
		},
		Validate: always,
		Handler: p.run(ActionTransactions, func(ctx context.Context, inv agent.Invocation) (string, string) {
			address, err := resolveAddress(inv)
			if err != nil {
				return PromptAddress, outcomeNoAddress
			}

			reply, err := p.svc.RecentTransactions(ctx, address)
			if err != nil {
				return replyForError(ctx, "transactions", err)
			}
			return reply, outcomeSuccess
		}),
	}
}
