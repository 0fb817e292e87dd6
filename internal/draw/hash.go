package draw

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/osse101/MineRewards_Go/internal/domain"
)

// entropyOffset is where the 4-byte entropy window starts inside a 32-byte hash.
const entropyOffset = common.HashLength - 4

// Seed is the last 4 bytes of h as a big-endian uint32.
func Seed(h common.Hash) uint32 {
	return binary.BigEndian.Uint32(h[entropyOffset:])
}

// HashValue reduces h to an outcome in [0,99].
func HashValue(h common.Hash) int {
	return int(Seed(h) % domain.OutcomeRange)
}

// TieBit is the parity of the hex digit just before the entropy window, the low bit of h[27].
// It is not the parity of the hash's final hex digit, which always matches the parity of
// HashValue and so at 99 would always pick the second Legendary entry.
// Auditors recomputing a tie must read h[27].
func TieBit(h common.Hash) int {
	return int(h[entropyOffset-1] & 1)
}

// DeriveHash returns the entropy hash for the index-th weighted draw of txHash.
// Draw 1 uses txHash itself; later draws use Keccak-256(txHash || uint32be(index)).
func DeriveHash(txHash common.Hash, index int) common.Hash {
	if index <= 1 {
		return txHash
	}
	var buf [common.HashLength + 4]byte
	copy(buf[:], txHash[:])
	binary.BigEndian.PutUint32(buf[common.HashLength:], uint32(index))
	return crypto.Keccak256Hash(buf[:])
}
