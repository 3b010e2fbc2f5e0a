package scenario

import (
	sim "github.com/afd-sim/afd-sim/sim"
)

// Run estimates every layer in the scenario and folds the results into a
// SimulationResult. A nil estimator gets a fresh AnalyticEstimator built
// from the scenario's hardware and the supplied runtime.
func Run(s *Scenario, runtime sim.RuntimeSpec, estimator *sim.AnalyticEstimator) (sim.SimulationResult, error) {
	if estimator == nil {
		estimator = sim.NewAnalyticEstimator(s.Hardware, runtime)
	}
	executions := estimator.EstimateLayers(s.Layers)
	return sim.Aggregate(executions)
}
