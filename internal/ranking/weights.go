package ranking

import (
	"fmt"
	"slices"

	"github.com/julianstephens/watchlit/internal/models"
)

// WeightCount is one row of the weight histogram.
type WeightCount struct {
	Weight int
	Count  int
}

// ExistingWeights returns how many shows use each weight, highest weight
// first.
func ExistingWeights(shows []*models.Show) []WeightCount {
	counts := make(map[int]int)
	for _, show := range shows {
		counts[show.Weight]++
	}

	out := make([]WeightCount, 0, len(counts))
	for weight, count := range counts {
		out = append(out, WeightCount{Weight: weight, Count: count})
	}
	slices.SortFunc(out, func(a, b WeightCount) int {
		return b.Weight - a.Weight
	})
	return out
}

// ChangeWeights applies an old-to-new weight mapping. Each show is remapped at
// most once, so chained mappings such as {1: 2, 2: 3} do not cascade. It
// returns the shows whose weight changed.
func ChangeWeights(shows []*models.Show, mapping map[int]int) []*models.Show {
	var changed []*models.Show
	for _, show := range shows {
		newWeight, ok := mapping[show.Weight]
		if !ok || newWeight == show.Weight {
			continue
		}
		show.Weight = newWeight
		changed = append(changed, show)
	}
	return changed
}

// ShiftWeights moves a block of the histogram by delta. A positive delta
// raises the row at index and every heavier row; a negative delta lowers the
// row at index and every lighter row. The returned mapping feeds
// ChangeWeights.
func ShiftWeights(counts []WeightCount, index, delta int) ([]WeightCount, map[int]int, error) {
	if index < 0 || index >= len(counts) {
		return nil, nil, fmt.Errorf("weight index %d out of range (0-%d)", index, len(counts)-1)
	}

	shifted := make([]WeightCount, len(counts))
	mapping := make(map[int]int, len(counts))
	for i, wc := range counts {
		newWeight := wc.Weight
		if (delta > 0 && i <= index) || (delta < 0 && i >= index) {
			newWeight += delta
		}
		shifted[i] = WeightCount{Weight: newWeight, Count: wc.Count}
		mapping[wc.Weight] = newWeight
	}
	return shifted, mapping, nil
}
