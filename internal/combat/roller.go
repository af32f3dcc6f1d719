package combat

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Roller is the single uniform random source used by the resolvers.
// *rand.Rand satisfies it.
type Roller interface {
	Intn(n int) int
}

// NewRoller creates a seeded pseudo-random roller
func NewRoller(seed int64) *rand.Rand {
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a high-entropy seed using crypto/rand
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// RollPercent returns a uniform integer in [1, 100]
func RollPercent(r Roller) int {
	return r.Intn(PercentRollSides) + 1
}

// Chance reports whether a percent-chance roll succeeds
func Chance(r Roller, percent int) bool {
	return r.Intn(PercentRollSides) < percent
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
