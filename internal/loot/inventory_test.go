package loot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_NewItemIsKept(t *testing.T) {
	sampler := NewSampler(DefaultCatalog(), rand.New(rand.NewSource(7)))

	added, final := sampler.Reconcile(nil, "fish_blue", RarityCommon)

	assert.True(t, added)
	assert.Equal(t, "fish_blue", final)
}

func TestReconcile_DuplicateRerollsWithinRarity(t *testing.T) {
	sampler := NewSampler(DefaultCatalog(), rand.New(rand.NewSource(7)))
	owned := []string{"fish_blue"}

	added, final := sampler.Reconcile(owned, "fish_blue", RarityCommon)

	assert.True(t, added)
	assert.NotEqual(t, "fish_blue", final)
	assert.Contains(t, []string{"small_plant", "bubble_small"}, final)
}

func TestReconcile_ExhaustedRarityIsNoOp(t *testing.T) {
	sampler := NewSampler(DefaultCatalog(), rand.New(rand.NewSource(7)))
	owned := []string{"fish_blue", "small_plant", "bubble_small"}

	added, final := sampler.Reconcile(owned, "fish_blue", RarityCommon)

	assert.False(t, added)
	assert.Equal(t, "fish_blue", final)
	// No cross-rarity fallback: the caller keeps the owned set untouched.
	assert.Len(t, owned, 3)
}

func TestReconcile_RepeatedDrawsNeverDuplicate(t *testing.T) {
	sampler := NewSampler(DefaultCatalog(), rand.New(rand.NewSource(7)))

	var owned []string
	for i := 0; i < 5; i++ {
		added, final := sampler.Reconcile(owned, "fish_blue", RarityCommon)
		if added {
			owned = append(owned, final)
		}
	}

	seen := make(map[string]bool)
	for _, id := range owned {
		require.False(t, seen[id], "duplicate %s in inventory", id)
		seen[id] = true
	}
	assert.Contains(t, owned, "fish_blue")
	// Pool size three: the two rerolls drain it, the last two draws no-op.
	assert.Len(t, owned, 3)
}

func TestReconcile_SingleItemPool(t *testing.T) {
	catalog := NewCatalog([]Item{
		{ID: "fish_dragon", Rarity: RarityLegendary, DisplayName: "Poisson Dragon"},
	})
	sampler := NewSampler(catalog, rand.New(rand.NewSource(7)))

	added, final := sampler.Reconcile(nil, "fish_dragon", RarityLegendary)
	require.True(t, added)
	require.Equal(t, "fish_dragon", final)

	// Second draw of the only legendary: never re-added.
	added, final = sampler.Reconcile([]string{"fish_dragon"}, "fish_dragon", RarityLegendary)
	assert.False(t, added)
	assert.Equal(t, "fish_dragon", final)
}
