package ledger

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"

	"github.com/osse101/MineRewards_Go/internal/domain"
)

// Fixed-layout decoding. Every helper checks exact widths and fails closed.

// ParseTxHash parses a 0x-prefixed 32-byte transaction hash.
func ParseTxHash(s string) (common.Hash, error) {
	b, err := hexutil.Decode(strings.TrimSpace(s))
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: tx hash %q: %v", domain.ErrInvalidInput, s, err)
	}
	if len(b) != HashLength {
		return common.Hash{}, fmt.Errorf("%w: tx hash must be %d bytes, got %d", domain.ErrInvalidInput, HashLength, len(b))
	}
	return common.BytesToHash(b), nil
}

// ParseAddress parses a 0x-prefixed 20-byte account address.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	hasPrefix := strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
	if !hasPrefix || !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: address %q", domain.ErrInvalidInput, s)
	}
	return common.HexToAddress(s), nil
}

// SplitCall separates call data into its selector and argument bytes.
func SplitCall(input []byte) (Selector, []byte, error) {
	var sel Selector
	if len(input) < SelectorLength {
		return sel, nil, fmt.Errorf("%w: call data is %d bytes, need at least %d", domain.ErrMalformedData, len(input), SelectorLength)
	}
	copy(sel[:], input[:SelectorLength])
	return sel, input[SelectorLength:], nil
}

// DecodeUint256Arg decodes a call whose arguments are exactly one uint256 word.
func DecodeUint256Arg(args []byte) (*big.Int, error) {
	if len(args) != WordLength {
		return nil, fmt.Errorf("%w: expected %d argument bytes, got %d", domain.ErrMalformedData, WordLength, len(args))
	}
	return new(big.Int).SetBytes(args), nil
}

// TopicAddress decodes an indexed address topic. The 12 padding bytes must be zero.
func TopicAddress(topic common.Hash) (common.Address, error) {
	pad := HashLength - AddressLength
	for _, b := range topic[:pad] {
		if b != 0 {
			return common.Address{}, fmt.Errorf("%w: address topic %s has non-zero padding", domain.ErrMalformedData, topic.Hex())
		}
	}
	return common.BytesToAddress(topic[pad:]), nil
}

// TransferLog is a decoded Transfer(address,address,uint256) event.
type TransferLog struct {
	Token  common.Address
	From   common.Address
	To     common.Address
	Amount *big.Int
}

// IsTransfer reports whether the log's first topic is the Transfer event hash.
func IsTransfer(l Log) bool {
	return len(l.Topics) > 0 && l.Topics[0] == TransferEventTopic
}

// DecodeTransfer decodes a Transfer log: 3 topics (signature, from, to) and one data word.
func DecodeTransfer(l Log) (TransferLog, error) {
	if !IsTransfer(l) {
		return TransferLog{}, fmt.Errorf("%w: not a transfer log", domain.ErrMalformedData)
	}
	if len(l.Topics) != 3 {
		return TransferLog{}, fmt.Errorf("%w: transfer log has %d topics, want 3", domain.ErrMalformedData, len(l.Topics))
	}
	if len(l.Data) != WordLength {
		return TransferLog{}, fmt.Errorf("%w: transfer data is %d bytes, want %d", domain.ErrMalformedData, len(l.Data), WordLength)
	}
	from, err := TopicAddress(l.Topics[1])
	if err != nil {
		return TransferLog{}, err
	}
	to, err := TopicAddress(l.Topics[2])
	if err != nil {
		return TransferLog{}, err
	}
	return TransferLog{
		Token:  l.Address,
		From:   from,
		To:     to,
		Amount: new(big.Int).SetBytes(l.Data),
	}, nil
}

// ToDecimal scales a raw token amount by the token's declared precision.
func ToDecimal(raw *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(raw, -TokenDecimals)
}

// FromDecimal converts a human amount into raw token units. Sub-unit digits are an error.
func FromDecimal(d decimal.Decimal) (*big.Int, error) {
	scaled := d.Shift(TokenDecimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, fmt.Errorf("%w: amount %s exceeds %d decimals", domain.ErrInvalidInput, d, TokenDecimals)
	}
	if scaled.IsNegative() {
		return nil, fmt.Errorf("%w: amount %s is negative", domain.ErrInvalidInput, d)
	}
	return scaled.BigInt(), nil
}

// EncodeUint256Call builds call data for a single-uint256 function.
func EncodeUint256Call(sel Selector, amount *big.Int) []byte {
	out := make([]byte, SelectorLength+WordLength)
	copy(out, sel[:])
	amount.FillBytes(out[SelectorLength:])
	return out
}

// NewTransferLog builds a Transfer event emitted by token.
func NewTransferLog(token, from, to common.Address, amount *big.Int) Log {
	data := make([]byte, WordLength)
	amount.FillBytes(data)
	return Log{
		Address: token,
		Topics: []common.Hash{
			TransferEventTopic,
			common.BytesToHash(from.Bytes()),
			common.BytesToHash(to.Bytes()),
		},
		Data: data,
	}
}
