package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/time/rate"

	"github.com/osse101/MineRewards_Go/internal/domain"
	"github.com/osse101/MineRewards_Go/internal/logger"
	"github.com/osse101/MineRewards_Go/internal/metrics"
)

// ethBackend is the subset of ethclient.Client used here.
type ethBackend interface {
	TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
}

// EthConfig configures the JSON-RPC ledger client.
type EthConfig struct {
	URL     string
	Timeout time.Duration
	// RPS caps outbound RPC calls per second. Zero disables throttling.
	RPS float64
}

// EthClient implements Client against a JSON-RPC node.
type EthClient struct {
	backend ethBackend
	closer  func()
	timeout time.Duration
	limiter *rate.Limiter
}

// DialEth connects to the node at cfg.URL.
func DialEth(ctx context.Context, cfg EthConfig) (*EthClient, error) {
	rpc, err := ethclient.DialContext(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %w", domain.ErrLedgerUnavailable, cfg.URL, err)
	}
	logger.FromContext(ctx).Info(LogMsgLedgerConnected, "url", cfg.URL)
	c := newEthClient(rpc, cfg)
	c.closer = rpc.Close
	return c, nil
}

func newEthClient(backend ethBackend, cfg EthConfig) *EthClient {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RPS > 0 {
		burst := int(cfg.RPS)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), burst)
	}
	return &EthClient{
		backend: backend,
		timeout: cfg.Timeout,
		limiter: limiter,
	}
}

// Close releases the underlying connection.
func (c *EthClient) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// TransactionReceipt fetches the inclusion receipt of hash.
func (c *EthClient) TransactionReceipt(ctx context.Context, hash common.Hash) (*Receipt, error) {
	var out *Receipt
	err := c.call(ctx, MethodReceipt, hash, func(ctx context.Context) error {
		r, err := c.backend.TransactionReceipt(ctx, hash)
		if err != nil {
			return err
		}
		out = convertReceipt(r)
		return nil
	})
	return out, err
}

// TransactionByHash fetches the body of hash. Pending transactions count as not found.
func (c *EthClient) TransactionByHash(ctx context.Context, hash common.Hash) (*Transaction, error) {
	var out *Transaction
	err := c.call(ctx, MethodTransaction, hash, func(ctx context.Context) error {
		tx, pending, err := c.backend.TransactionByHash(ctx, hash)
		if err != nil {
			return err
		}
		if pending {
			return ethereum.NotFound
		}
		out = &Transaction{Hash: tx.Hash(), To: tx.To(), Input: tx.Data()}
		return nil
	})
	return out, err
}

func (c *EthClient) call(ctx context.Context, method string, hash common.Hash, fn func(context.Context) error) error {
	start := time.Now()
	outcome := metrics.OutcomeSuccess
	defer func() {
		metrics.LedgerRequestDuration.WithLabelValues(method, outcome).Observe(time.Since(start).Seconds())
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		outcome = metrics.OutcomeError
		return fmt.Errorf("%w: %s: %w", domain.ErrLedgerUnavailable, method, err)
	}

	callCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	err := fn(callCtx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ethereum.NotFound):
		outcome = metrics.OutcomeNotFound
		return fmt.Errorf("%w: %s %s", domain.ErrNotFound, method, hash.Hex())
	default:
		outcome = metrics.OutcomeError
		logger.FromContext(ctx).Warn(LogMsgLedgerCallFailed,
			LogFieldMethod, method,
			LogFieldTxHash, hash.Hex(),
			LogFieldError, err)
		return fmt.Errorf("%w: %s: %w", domain.ErrLedgerUnavailable, method, err)
	}
}

func convertReceipt(r *types.Receipt) *Receipt {
	logs := make([]Log, 0, len(r.Logs))
	for _, l := range r.Logs {
		if l == nil {
			continue
		}
		logs = append(logs, Log{Address: l.Address, Topics: l.Topics, Data: l.Data})
	}
	return &Receipt{TxHash: r.TxHash, Status: r.Status, Logs: logs}
}
