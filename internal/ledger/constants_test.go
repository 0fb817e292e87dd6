package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfCheck(t *testing.T) {
	require.NoError(t, SelfCheck())
}

func TestSelectorFor(t *testing.T) {
	t.Run("burn selector matches the hard-coded value", func(t *testing.T) {
		assert.Equal(t, DirectBurnSelector, SelectorFor(DirectBurnSignature))
		assert.Equal(t, "0x42966c68", SelectorFor(DirectBurnSignature).String())
	})

	t.Run("transfer selector is the well-known value", func(t *testing.T) {
		assert.Equal(t, "0xa9059cbb", SelectorFor("transfer(address,uint256)").String())
	})

	t.Run("different signatures give different selectors", func(t *testing.T) {
		assert.NotEqual(t, SelectorFor(DirectBurnSignature), SelectorFor(DefaultDiscountBurnSignature))
	})
}

func TestTopicFor(t *testing.T) {
	assert.Equal(t, TransferEventTopic, TopicFor(TransferEventSignature))
}
