// Package ledgertest provides an in-memory ledger for tests.
package ledgertest

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/MineRewards_Go/internal/domain"
	"github.com/osse101/MineRewards_Go/internal/ledger"
)

// FakeClient is an in-memory ledger.Client.
// Hashes that were never added report domain.ErrNotFound. Setting Err makes every call fail with it.
type FakeClient struct {
	mu       sync.RWMutex
	receipts map[common.Hash]*ledger.Receipt
	txs      map[common.Hash]*ledger.Transaction
	Err      error
	calls    int
}

var _ ledger.Client = (*FakeClient)(nil)

func NewFakeClient() *FakeClient {
	return &FakeClient{
		receipts: make(map[common.Hash]*ledger.Receipt),
		txs:      make(map[common.Hash]*ledger.Transaction),
	}
}

// Put stores a transaction and its receipt under tx.Hash.
func (f *FakeClient) Put(tx *ledger.Transaction, receipt *ledger.Receipt) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if tx != nil {
		f.txs[tx.Hash] = tx
	}
	if receipt != nil {
		f.receipts[receipt.TxHash] = receipt
	}
}

// Calls returns how many ledger calls were made.
func (f *FakeClient) Calls() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.calls
}

func (f *FakeClient) TransactionReceipt(_ context.Context, hash common.Hash) (*ledger.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.Err != nil {
		return nil, f.Err
	}
	r, ok := f.receipts[hash]
	if !ok {
		return nil, fmt.Errorf("%w: receipt %s", domain.ErrNotFound, hash.Hex())
	}
	return r, nil
}

func (f *FakeClient) TransactionByHash(_ context.Context, hash common.Hash) (*ledger.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.Err != nil {
		return nil, f.Err
	}
	tx, ok := f.txs[hash]
	if !ok {
		return nil, fmt.Errorf("%w: transaction %s", domain.ErrNotFound, hash.Hex())
	}
	return tx, nil
}
