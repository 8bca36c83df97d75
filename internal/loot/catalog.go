package loot

// Rarity classifies catalog items. Ordering is poorest to richest.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists all rarities poorest first. Sampling and weight tables
// iterate in this order.
var Rarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
}

type Item struct {
	ID          string
	Rarity      Rarity
	DisplayName string
}

// Catalog is the static set of droppable aquarium decorations. It is
// immutable once built; a deployed catalog must hold at least one item per
// rarity.
type Catalog struct {
	pools map[Rarity][]Item
	names map[string]string
}

func NewCatalog(items []Item) *Catalog {
	c := &Catalog{
		pools: make(map[Rarity][]Item),
		names: make(map[string]string, len(items)),
	}
	for _, item := range items {
		c.pools[item.Rarity] = append(c.pools[item.Rarity], item)
		c.names[item.ID] = item.DisplayName
	}
	return c
}

// Pool returns the items of the given rarity. The returned slice must not
// be mutated.
func (c *Catalog) Pool(rarity Rarity) []Item {
	return c.pools[rarity]
}

// Name returns the display name for an item id, or the id itself when the
// item is unknown.
func (c *Catalog) Name(itemID string) string {
	if name, ok := c.names[itemID]; ok {
		return name
	}
	return itemID
}

// DefaultCatalog is the shipped aquarium decoration set.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Item{
		{ID: "fish_blue", Rarity: RarityCommon, DisplayName: "Petit Poisson Bleu"},
		{ID: "small_plant", Rarity: RarityCommon, DisplayName: "Petite Plante"},
		{ID: "bubble_small", Rarity: RarityCommon, DisplayName: "Petite Bulle"},

		{ID: "fish_yellow", Rarity: RarityUncommon, DisplayName: "Poisson Jaune"},
		{ID: "coral_blue", Rarity: RarityUncommon, DisplayName: "Corail Bleu"},
		{ID: "plant_medium", Rarity: RarityUncommon, DisplayName: "Plante Moyenne"},

		{ID: "fish_red", Rarity: RarityRare, DisplayName: "Poisson Rouge"},
		{ID: "coral_large", Rarity: RarityRare, DisplayName: "Grand Corail"},
		{ID: "plant_big", Rarity: RarityRare, DisplayName: "Grande Plante"},

		{ID: "fish_shiny", Rarity: RarityEpic, DisplayName: "Poisson Scintillant"},
		{ID: "statue_small", Rarity: RarityEpic, DisplayName: "Petite Statue"},
		{ID: "coral_pink", Rarity: RarityEpic, DisplayName: "Corail Rose"},

		{ID: "fish_dragon", Rarity: RarityLegendary, DisplayName: "Poisson Dragon"},
		{ID: "coral_gold", Rarity: RarityLegendary, DisplayName: "Corail Doré"},
		{ID: "plant_glow", Rarity: RarityLegendary, DisplayName: "Plante Lumineuse"},
	})
}
