package evm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/smartcontractkit/scaffold/sdk"
)

const (
	// DefaultConfirmTimeout bounds how long Confirm waits for a receipt.
	DefaultConfirmTimeout = 2 * time.Minute

	defaultPollInterval = time.Second
)

// ErrTransactionReverted is returned when a transaction was mined but its execution failed.
var ErrTransactionReverted = errors.New("transaction reverted")

// Confirmer blocks until a sent transaction has been mined.
type Confirmer interface {
	Confirm(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

var _ Confirmer = (*ReceiptConfirmer)(nil)

// ReceiptConfirmer confirms transactions by polling for their receipt.
type ReceiptConfirmer struct {
	backend      bind.DeployBackend
	timeout      time.Duration
	pollInterval time.Duration
}

// NewReceiptConfirmer creates a ReceiptConfirmer. A zero timeout waits until ctx is done.
func NewReceiptConfirmer(backend bind.DeployBackend, timeout time.Duration) *ReceiptConfirmer {
	return &ReceiptConfirmer{
		backend:      backend,
		timeout:      timeout,
		pollInterval: defaultPollInterval,
	}
}

// Confirm waits for the receipt of tx and fails if the transaction reverted.
func (c *ReceiptConfirmer) Confirm(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	queryTicker := time.NewTicker(c.pollInterval)
	defer queryTicker.Stop()

	for {
		receipt, err := c.backend.TransactionReceipt(ctx, tx.Hash())
		if err == nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				return receipt, fmt.Errorf("%w: %s", ErrTransactionReverted, tx.Hash().Hex())
			}

			return receipt, nil
		}

		if !errors.Is(err, ethereum.NotFound) {
			sdk.LoggerFrom(ctx).Infof("receipt retrieval for %s failed: %v", tx.Hash().Hex(), err)
		}

		// Wait for the next round.
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to confirm transaction %s: %w", tx.Hash().Hex(), ctx.Err())
		case <-queryTicker.C:
		}
	}
}
