package sim

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// ErrNoLayers is returned when aggregation is asked to fold zero layer
// results: peak memory has no maximum over an empty set, and returning a
// zero-valued summary would be misleading.
var ErrNoLayers = errors.New("sim: no layer executions to aggregate")

// Aggregate folds per-layer results into a whole-run summary. Total
// latency is the plain sum of dominant latencies (sequential model, no
// inter-layer overlap); peak memory is the largest single layer's
// read+write traffic; the bottleneck is the arg-max by dominant latency,
// ties broken by first occurrence.
func Aggregate(layers []LayerExecution) (SimulationResult, error) {
	if len(layers) == 0 {
		return SimulationResult{}, ErrNoLayers
	}

	flops := make([]float64, len(layers))
	latencies := make([]float64, len(layers))
	traffic := make([]float64, len(layers))
	for i, layer := range layers {
		flops[i] = layer.Flops
		latencies[i] = layer.DominantLatencyMs
		traffic[i] = layer.TotalBytes()
	}

	bottleneck := floats.MaxIdx(latencies)
	return SimulationResult{
		Layers:          layers,
		TotalFlops:      floats.Sum(flops),
		TotalLatencyMs:  floats.Sum(latencies),
		PeakMemoryBytes: floats.Max(traffic),
		BottleneckLayer: layers[bottleneck].LayerName,
	}, nil
}
