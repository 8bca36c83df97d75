package loot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCatalog_EveryRarityStocked(t *testing.T) {
	catalog := DefaultCatalog()

	for _, rarity := range Rarities {
		pool := catalog.Pool(rarity)
		assert.NotEmpty(t, pool, "rarity %s has no items", rarity)

		for _, item := range pool {
			assert.Equal(t, rarity, item.Rarity)
			assert.NotEmpty(t, item.ID)
			assert.NotEmpty(t, item.DisplayName)
		}
	}
}

func TestDefaultCatalog_NoDuplicateIDs(t *testing.T) {
	catalog := DefaultCatalog()

	seen := make(map[string]bool)
	for _, rarity := range Rarities {
		for _, item := range catalog.Pool(rarity) {
			assert.False(t, seen[item.ID], "duplicate item id %s", item.ID)
			seen[item.ID] = true
		}
	}
}

func TestCatalog_Name(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, "Petit Poisson Bleu", catalog.Name("fish_blue"))
	assert.Equal(t, "Poisson Dragon", catalog.Name("fish_dragon"))

	// Unknown ids echo back rather than failing.
	assert.Equal(t, "unknown_item", catalog.Name("unknown_item"))
}
