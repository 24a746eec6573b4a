package explorer

import (
	"context"
	"fmt"
)

// notAvailable replaces block and transaction fields the explorer left out.
const notAvailable = "N/A"

// FormatBlock renders b as the latest block reply.
func FormatBlock(b Block) string {
	return fmt.Sprintf("Latest block:\nNumber: %s\nTimestamp: %s\nHash: %s",
		b.Height.Or(notAvailable),
		b.Timestamp.Or(notAvailable),
		b.Hash.Or(notAvailable),
	)
}

// LatestBlock fetches the first page of blocks and renders its first entry,
// which the explorer sorts newest first.
func (s *service) LatestBlock(ctx context.Context) (string, error) {
	blocks, err := s.client.GetBlocks(ctx)
	if err != nil {
		return "", err
	}

	if len(blocks) == 0 {
		return "No blocks found", nil
	}

	return FormatBlock(blocks[0]), nil
}
