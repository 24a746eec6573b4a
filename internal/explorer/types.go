package explorer

import (
	"net/http"

	"github.com/gabapcia/modescope/internal/pkg/types"
)

// StatusOK is the envelope status value that marks a successful answer.
const StatusOK = "1"

// Envelope carries the outcome fields the explorer may add next to a payload.
//
// Blockscout v2 endpoints only send them on failure (typically a bare
// {"message": "..."} with a 4xx code), while Etherscan-compatible gateways
// always send a status. Both shapes are covered by Err.
type Envelope struct {
	Status  *string `json:"status,omitempty"`
	Message string  `json:"message,omitempty"`
}

// Err reports the failure described by the HTTP status code and the envelope.
// An answer is a failure when the code is not 2xx or when a status is present
// and differs from StatusOK.
func (e Envelope) Err(statusCode int) error {
	ok := statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
	if ok && (e.Status == nil || *e.Status == StatusOK) {
		return nil
	}

	return &APIError{StatusCode: statusCode, Message: e.Message}
}

// AddressInfo is the account summary returned by /v2/addresses/{address}.
type AddressInfo struct {
	Envelope

	Hash        string  `json:"hash"`
	CoinBalance *string `json:"coin_balance"` // wei as a decimal string, null when unknown
}

// Block is one entry of /v2/blocks.
type Block struct {
	Height    types.Text `json:"height"`
	Timestamp types.Text `json:"timestamp"`
	Hash      types.Text `json:"hash"`
}

// Transaction is one entry of /v2/addresses/{address}/transactions.
type Transaction struct {
	Hash      types.Text `json:"hash"`
	Value     types.Text `json:"value"`
	Timestamp types.Text `json:"timestamp"`
}
