package ledger

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/osse101/MineRewards_Go/internal/domain"
)

// ============================================================================
// Contract ABI constants
// ============================================================================

// Function and event signatures the verifier recognizes.
const (
	DirectBurnSignature          = "burn(uint256)"
	DefaultDiscountBurnSignature = "burnForDiscount(uint256)"
	TransferEventSignature       = "Transfer(address,address,uint256)"
)

// TokenDecimals is the fixed-point precision declared by the burned token.
// Raw uint256 amounts are scaled by 10^-TokenDecimals before comparison.
const TokenDecimals int32 = 18

// Fixed-layout widths, in bytes.
const (
	SelectorLength = 4
	WordLength     = 32
	AddressLength  = common.AddressLength
	HashLength     = common.HashLength
)

// Selector is the leading 4 bytes of a contract call's input.
type Selector [SelectorLength]byte

// String returns the 0x-prefixed hex form.
func (s Selector) String() string {
	return "0x" + hex.EncodeToString(s[:])
}

// DirectBurnSelector is the selector of the token's burn(uint256) entry point.
var DirectBurnSelector = Selector{0x42, 0x96, 0x6c, 0x68}

// TransferEventTopic is topic[0] of the standard fungible Transfer event.
var TransferEventTopic = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")

// BurnAddress is the canonical all-zero destruction address.
var BurnAddress = common.Address{}

// SelectorFor derives the 4-byte selector of a function signature.
func SelectorFor(signature string) Selector {
	var s Selector
	copy(s[:], crypto.Keccak256([]byte(signature))[:SelectorLength])
	return s
}

// TopicFor derives the topic hash of an event signature.
func TopicFor(signature string) common.Hash {
	return crypto.Keccak256Hash([]byte(signature))
}

// SelfCheck recomputes the hard-coded constants from their signatures.
// It runs once at startup so a typo in a constant stops the process.
func SelfCheck() error {
	if got := SelectorFor(DirectBurnSignature); got != DirectBurnSelector {
		return fmt.Errorf("%w: burn selector %s does not match %s", domain.ErrConfigurationDefect, DirectBurnSelector, got)
	}
	if got := TopicFor(TransferEventSignature); got != TransferEventTopic {
		return fmt.Errorf("%w: transfer topic %s does not match %s", domain.ErrConfigurationDefect, TransferEventTopic.Hex(), got.Hex())
	}
	if !bytes.Equal(BurnAddress.Bytes(), make([]byte, AddressLength)) {
		return fmt.Errorf("%w: burn address is not zero", domain.ErrConfigurationDefect)
	}
	return nil
}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgLedgerCallFailed = "Ledger call failed"
	LogMsgLedgerConnected  = "Connected to ledger RPC"
)

const (
	LogFieldMethod = "method"
	LogFieldTxHash = "tx_hash"
	LogFieldError  = "error"
)

// Ledger method labels, used for metrics and logs.
const (
	MethodReceipt     = "eth_getTransactionReceipt"
	MethodTransaction = "eth_getTransactionByHash"
)
