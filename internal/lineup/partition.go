package lineup

import (
	"sort"

	"github.com/omarshaarawi/coachrank/internal/models"
)

// Partition orders a roster by submission rank and splits it into starters and
// bench. The input slice is left untouched.
func Partition(players []models.PlayerRecord) (starters, bench []models.PlayerRecord) {
	sorted := append([]models.PlayerRecord(nil), players...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	for _, p := range sorted {
		if p.Section == models.SectionBench {
			bench = append(bench, p)
		} else {
			starters = append(starters, p)
		}
	}
	return starters, bench
}
