package loot

import (
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrEmptyPool means the sampler drew a rarity the catalog has no items
// for. That is a deployment error, not a runtime condition to retry.
var ErrEmptyPool = errors.New("no items in rarity pool")

// Rand is the random source the sampler draws from. *math/rand.Rand
// satisfies it; tests substitute deterministic implementations.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// lockedRand guards a single generator so concurrent redemptions can share
// it. Draws are O(1), contention is negligible.
type lockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}

// rarityWeights is one chest tier's probability vector over the five
// rarities. Fields are exhaustive so a new rarity cannot be silently
// forgotten; each vector sums to 1.
type rarityWeights struct {
	Common    float64
	Uncommon  float64
	Rare      float64
	Epic      float64
	Legendary float64
}

func (w rarityWeights) vector() [5]float64 {
	return [5]float64{w.Common, w.Uncommon, w.Rare, w.Epic, w.Legendary}
}

// tierWeights holds the shipped distributions. Richness grows strictly
// with the tier: epic-and-above mass never decreases, common mass never
// increases.
var tierWeights = map[Tier]rarityWeights{
	TierBasic:  {Common: 0.75, Uncommon: 0.15, Rare: 0.07, Epic: 0.02, Legendary: 0.01},
	TierRare:   {Common: 0.50, Uncommon: 0.25, Rare: 0.15, Epic: 0.07, Legendary: 0.03},
	TierEpic:   {Common: 0.30, Uncommon: 0.25, Rare: 0.20, Epic: 0.15, Legendary: 0.10},
	TierExotic: {Common: 0.05, Uncommon: 0.10, Rare: 0.20, Epic: 0.30, Legendary: 0.35},
}

// WeightsForTier exposes a tier's probability vector in Rarities order.
// Unknown tiers fall back to basic.
func WeightsForTier(tier Tier) [5]float64 {
	w, ok := tierWeights[tier]
	if !ok {
		w = tierWeights[TierBasic]
	}
	return w.vector()
}

// Sampler draws loot from a catalog with an injectable random source.
type Sampler struct {
	catalog *Catalog
	rng     Rand
}

// NewSampler builds a sampler over the catalog. A nil rng gets a
// mutex-guarded generator seeded from the clock.
func NewSampler(catalog *Catalog, rng Rand) *Sampler {
	if rng == nil {
		rng = &lockedRand{src: rand.New(rand.NewSource(time.Now().UnixNano()))}
	}
	return &Sampler{catalog: catalog, rng: rng}
}

// Draw picks a rarity according to the tier's weights, then an item
// uniformly from that rarity's pool. Unknown tiers use the basic
// distribution.
func (s *Sampler) Draw(tier Tier) (Rarity, string, error) {
	rarity := s.drawRarity(tier)

	pool := s.catalog.Pool(rarity)
	if len(pool) == 0 {
		return rarity, "", errors.Wrapf(ErrEmptyPool, "tier %s rarity %s", tier, rarity)
	}

	item := pool[s.rng.Intn(len(pool))]
	return rarity, item.ID, nil
}

func (s *Sampler) drawRarity(tier Tier) Rarity {
	weights := WeightsForTier(tier)

	roll := s.rng.Float64()
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return Rarities[i]
		}
	}
	// Floating-point residue: the roll landed past the accumulated sum.
	return Rarities[len(Rarities)-1]
}
