package sampler

import (
	"context"
	"hash/fnv"
	"math/rand"
)

// SeededRNG is the default ports.RNGPort implementation. It derives an
// independent deterministic stream per operation name by folding the name
// into the base seed, so two differently named operations sharing a seed do
// not consume the same stream.
type SeededRNG struct{}

// NewSeededRNG creates a deterministic RNG provider.
func NewSeededRNG() *SeededRNG {
	return &SeededRNG{}
}

// SeededStream returns a generator for the named operation and seed.
func (r *SeededRNG) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	h := fnv.New64a()
	h.Write([]byte(name))
	return rand.New(rand.NewSource(seed ^ int64(h.Sum64()))), nil
}
