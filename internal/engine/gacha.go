package engine

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"
)

// RandomSource supplies the randomness for draws. Injecting it keeps draw
// sequences reproducible in tests.
type RandomSource interface {
	// IntN returns a uniform value in [0, n). n must be > 0.
	IntN(n int) int
}

type cryptoSource struct{}

func (cryptoSource) IntN(n int) int {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return rand.IntN(n)
	}
	return int(binary.BigEndian.Uint64(buf[:]) % uint64(n))
}

// DefaultRandomSource returns the crypto-backed source used outside tests.
func DefaultRandomSource() RandomSource { return cryptoSource{} }

type seededSource struct{ r *rand.Rand }

// NewSeededSource returns a deterministic source for reproducible draws.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) IntN(n int) int { return s.r.IntN(n) }

// DefaultRarityWeights is the stock weight table; weights are relative
// shares, not percentages, though the defaults happen to sum to 100.
var DefaultRarityWeights = map[Rarity]int{
	RarityCommon:    60,
	RarityRare:      25,
	RarityEpic:      10,
	RarityLegendary: 5,
}

// DrawEngine performs weighted random draws over a fixed catalog.
//
// The distribution is the replicate-then-choose one: conceptually every
// item appears weight[item.Rarity] times in a pool and one copy is chosen
// uniformly, so P(item) = weight[item.Rarity] / sum over ALL items of
// weight[item.Rarity]. Two items of the same rarity each carry the full
// rarity weight; the rarity's mass is not split across its bucket.
type DrawEngine struct {
	catalog []Item
	weights map[Rarity]int
	total   int
	rng     RandomSource
}

// NewDrawEngine validates the catalog against the weight table and builds
// a draw engine. Validation happens here so Roll can never fail: the
// catalog must be non-empty and every item's rarity must have a positive
// weight. rng may be nil, in which case the crypto-backed default is used.
func NewDrawEngine(catalog []Item, weights map[Rarity]int, rng RandomSource) (*DrawEngine, error) {
	if len(catalog) == 0 {
		return nil, fmt.Errorf("draw engine: catalog is empty")
	}
	if len(weights) == 0 {
		weights = DefaultRarityWeights
	}

	var errs []string
	total := 0
	for _, it := range catalog {
		w, ok := weights[it.Rarity]
		if !ok {
			errs = append(errs, fmt.Sprintf("item %q has rarity %q with no weight", it.Name, it.Rarity))
			continue
		}
		if w <= 0 {
			errs = append(errs, fmt.Sprintf("rarity %q has non-positive weight %d", it.Rarity, w))
			continue
		}
		total += w
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("draw engine validation failed: %s", strings.Join(errs, "; "))
	}

	if rng == nil {
		rng = DefaultRandomSource()
	}

	cp := make(map[Rarity]int, len(weights))
	for r, w := range weights {
		cp[r] = w
	}
	return &DrawEngine{
		catalog: append([]Item(nil), catalog...),
		weights: cp,
		total:   total,
		rng:     rng,
	}, nil
}

// Roll draws one item. It walks the catalog accumulating per-item weight,
// which is distribution-identical to materializing the replicated pool.
func (d *DrawEngine) Roll() Item {
	pick := d.rng.IntN(d.total)
	acc := 0
	for _, it := range d.catalog {
		acc += d.weights[it.Rarity]
		if pick < acc {
			return it
		}
	}
	// Unreachable after construction-time validation.
	return d.catalog[len(d.catalog)-1]
}

// Catalog returns a copy of the engine's catalog snapshot.
func (d *DrawEngine) Catalog() []Item {
	return append([]Item(nil), d.catalog...)
}
