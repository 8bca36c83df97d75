package loot

// Reconcile applies a drawn item to an owned set. An unowned drop is kept
// as-is. A duplicate rerolls uniformly among the unowned items of the same
// rarity. When the whole rarity is owned the draw becomes a no-op:
// added=false and nothing should be inserted. There is no cross-rarity
// fallback.
func (s *Sampler) Reconcile(owned []string, drawn string, rarity Rarity) (added bool, final string) {
	if !contains(owned, drawn) {
		return true, drawn
	}

	var candidates []string
	for _, item := range s.catalog.Pool(rarity) {
		if !contains(owned, item.ID) {
			candidates = append(candidates, item.ID)
		}
	}
	if len(candidates) == 0 {
		return false, drawn
	}

	return true, candidates[s.rng.Intn(len(candidates))]
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
