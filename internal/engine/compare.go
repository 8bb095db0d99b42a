package engine

import (
	"fmt"

	"github.com/piwi3910/palletpack/internal/model"
)

// ComparisonScenario names a variant of Options to run against the same
// input, for side-by-side reporting of algorithm or threshold choices.
type ComparisonScenario struct {
	Name    string
	Options model.Options
}

// ComparisonResult pairs a scenario with its outcome and a few headline
// numbers pulled out of Stats for quick display.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Result        model.Result
	PalletsUsed   int
	UnplacedCount int
	AvgFill       float64
}

// CompareScenarios runs Optimize once per scenario against the same
// products and pallet, in scenario order. Useful for showing the operator
// what switching from "genetic" to "greedy", or loosening the fill
// thresholds, would have done.
func CompareScenarios(scenarios []ComparisonScenario, products []model.Product, pallet model.PalletConfig) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result, err := Optimize(products, pallet, scenario.Options)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}

		results = append(results, ComparisonResult{
			Scenario:      scenario,
			Result:        result,
			PalletsUsed:   result.Stats.TotalPallets,
			UnplacedCount: len(result.Unplaced),
			AvgFill:       result.Stats.AvgFill,
		})
	}

	return results, nil
}

// BuildDefaultScenarios generates a small set of what-if variants around a
// base Options: the alternate algorithm, and a looser single-pallet fill
// threshold when the base is already fairly strict.
func BuildDefaultScenarios(base model.Options) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Options: base},
	}

	alt := base
	if base.Algorithm == model.AlgorithmGenetic {
		alt.Algorithm = model.AlgorithmGreedy
		scenarios = append(scenarios, ComparisonScenario{Name: "Greedy Algorithm", Options: alt})
	} else {
		alt.Algorithm = model.AlgorithmGenetic
		scenarios = append(scenarios, ComparisonScenario{Name: "Genetic Algorithm", Options: alt})
	}

	if base.SingleFillThreshold > 0.3 {
		looser := base
		looser.SingleFillThreshold = base.SingleFillThreshold * 0.5
		scenarios = append(scenarios, ComparisonScenario{
			Name:    fmt.Sprintf("Single-fill threshold %.0f%% (half)", looser.SingleFillThreshold*100),
			Options: looser,
		})
	}

	return scenarios
}
