// Package explorer turns Mode network explorer data into chat replies.
//
// The Service fetches one resource per call through a Client (the explorer
// REST API adapter) and renders it as the text a chat user reads. Failures
// are returned as errors classified by the sentinels in this package; it is
// up to the caller to decide how they reach the user.
package explorer

import "context"

// Client is the port to the explorer REST API. Each method issues exactly one
// request and never retries.
type Client interface {
	// GetAddress fetches the account summary of address.
	GetAddress(ctx context.Context, address string) (AddressInfo, error)

	// GetBlocks fetches the first page of blocks, newest first.
	GetBlocks(ctx context.Context) ([]Block, error)

	// GetAddressTransactions fetches the first page of transactions involving address.
	GetAddressTransactions(ctx context.Context, address string) ([]Transaction, error)
}

// Service renders explorer data as reply text.
type Service interface {
	// Balance returns the native coin balance of address.
	Balance(ctx context.Context, address string) (string, error)

	// LatestBlock returns the height, timestamp and hash of the newest block.
	LatestBlock(ctx context.Context) (string, error)

	// RecentTransactions returns up to the first MaxTransactions transactions of address.
	RecentTransactions(ctx context.Context, address string) (string, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	client Client
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a Service backed by the given explorer Client.
func New(c Client) *service {
	return &service{
		client: c,
	}
}
