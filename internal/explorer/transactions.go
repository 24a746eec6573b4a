package explorer

import (
	"context"
	"fmt"
	"strings"
)

// MaxTransactions caps how many transactions a reply lists.
const MaxTransactions = 5

// FormatTransaction renders one transaction as three lines.
func FormatTransaction(tx Transaction) string {
	return fmt.Sprintf("Hash: %s\nValue: %s\nTimestamp: %s",
		tx.Hash.Or(notAvailable),
		tx.Value.Or("0"),
		tx.Timestamp.Or(notAvailable),
	)
}

// FormatTransactions renders up to MaxTransactions entries of txs, separated
// by blank lines, under a header naming address.
func FormatTransactions(address string, txs []Transaction) string {
	if len(txs) == 0 {
		return fmt.Sprintf("No transactions found for %s", address)
	}

	if len(txs) > MaxTransactions {
		txs = txs[:MaxTransactions]
	}

	entries := make([]string, 0, len(txs))
	for _, tx := range txs {
		entries = append(entries, FormatTransaction(tx))
	}

	return fmt.Sprintf("Recent transactions for %s:\n\n%s", address, strings.Join(entries, "\n\n"))
}

// RecentTransactions fetches the first page of transactions involving address.
func (s *service) RecentTransactions(ctx context.Context, address string) (string, error) {
	txs, err := s.client.GetAddressTransactions(ctx, address)
	if err != nil {
		return "", err
	}

	return FormatTransactions(address, txs), nil
}
