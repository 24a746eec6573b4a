package explorer

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gabapcia/modescope/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/params"
)

// balanceDecimals is the number of decimal places shown for a balance.
const balanceDecimals = 5

// FormatWei converts a wei amount given as a decimal (or 0x-prefixed hex)
// string into ETH with five decimal places. It reports false when the value
// is not a valid unsigned 256-bit integer.
func FormatWei(wei string) (string, bool) {
	if wei == "" {
		return "", false
	}

	v, ok := math.ParseBig256(wei)
	if !ok || v.Sign() < 0 {
		return "", false
	}

	eth := new(big.Float).SetPrec(256).SetInt(v)
	eth.Quo(eth, new(big.Float).SetPrec(256).SetInt(big.NewInt(params.Ether)))
	return eth.Text('f', balanceDecimals), true
}

// Balance fetches the account summary of address and renders its coin balance.
//
// A missing or malformed coin_balance is rendered as unavailable rather than
// guessed.
func (s *service) Balance(ctx context.Context, address string) (string, error) {
	info, err := s.client.GetAddress(ctx, address)
	if err != nil {
		return "", err
	}

	if info.CoinBalance == nil {
		logger.Warn(ctx, "coin balance missing from explorer answer", "address", address)
		return fmt.Sprintf("The balance for %s is unavailable", address), nil
	}

	balance, ok := FormatWei(*info.CoinBalance)
	if !ok {
		logger.Warn(ctx, "coin balance is not a number", "address", address, "coin_balance", *info.CoinBalance)
		return fmt.Sprintf("The balance for %s is unavailable", address), nil
	}

	logger.Info(ctx, "balance computed", "address", address, "balance", balance)
	return fmt.Sprintf("The balance for %s is %s ETH", address, balance), nil
}
