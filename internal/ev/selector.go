package ev

import (
	"errors"
	"sort"
)

// Ranking is the outcome of comparing every legal action's EV
type Ranking struct {
	// Best is the recommended action
	Best *Result
	// RunnerUp is the second-best action, nil when only one action was
	// legal. A nil RunnerUp means "only one option", not a tie.
	RunnerUp *Result
	// Gap is Best.EV minus RunnerUp.EV; meaningful only when RunnerUp
	// is set
	Gap float64
}

// Select ranks results by EV descending and reports the best action,
// the runner-up and their EV gap. Ties break on the fixed action
// priority order (Stand, Hit, Double Down, Split) so selection is
// deterministic.
func Select(results []*Result) (Ranking, error) {
	if len(results) == 0 {
		return Ranking{}, errors.New("no results to select from")
	}

	sorted := make([]*Result, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].EV == sorted[j].EV {
			return sorted[i].Action < sorted[j].Action
		}
		return sorted[i].EV > sorted[j].EV
	})

	ranking := Ranking{Best: sorted[0]}
	if len(sorted) > 1 {
		ranking.RunnerUp = sorted[1]
		ranking.Gap = ranking.Best.EV - ranking.RunnerUp.EV
	}
	return ranking, nil
}
