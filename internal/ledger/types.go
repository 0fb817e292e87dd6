package ledger

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// ReceiptStatusSuccess is the execution status of a transaction that did not revert.
const ReceiptStatusSuccess uint64 = 1

// Log is one event emitted by a transaction.
type Log struct {
	Address common.Address
	Topics  []common.Hash
	Data    []byte
}

// Receipt is the inclusion receipt of a mined transaction.
type Receipt struct {
	TxHash common.Hash
	Status uint64
	Logs   []Log
}

// Succeeded reports whether the transaction executed without reverting.
func (r *Receipt) Succeeded() bool {
	return r.Status == ReceiptStatusSuccess
}

// Transaction is the body of a transaction: its destination and call data.
type Transaction struct {
	Hash  common.Hash
	To    *common.Address // nil for contract creation
	Input []byte
}

// Client is the read-only gateway to the external ledger.
// Both methods return an error wrapping domain.ErrNotFound when the hash is unknown,
// and one wrapping domain.ErrLedgerUnavailable on transport failure or timeout.
type Client interface {
	TransactionReceipt(ctx context.Context, hash common.Hash) (*Receipt, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*Transaction, error)
}
