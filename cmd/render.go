package cmd

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	sim "github.com/afd-sim/afd-sim/sim"
	"github.com/afd-sim/afd-sim/sim/scenario"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// tableRenderer prints the per-layer rows for one workflow's view.
type tableRenderer func(layers []sim.LayerExecution)

// renderAFDTable shows the compute/memory split per layer.
func renderAFDTable(layers []sim.LayerExecution) {
	fmt.Printf("%12s %12s %12s %12s %12s %12s\n",
		"layer", "type", "gflops", "compute_ms", "memory_ms", "latency_ms")
	for _, layer := range layers {
		fmt.Printf("%12s %12s %12.3f %12.3f %12.3f %12.3f\n",
			layer.LayerName,
			layer.LayerType,
			layer.Flops/1e9,
			layer.ComputeTimeMs,
			layer.MemoryTimeMs,
			layer.DominantLatencyMs)
	}
}

// renderLargeEPTable shows byte traffic per layer instead of the split.
func renderLargeEPTable(layers []sim.LayerExecution) {
	fmt.Printf("%12s %12s %12s %12s %12s\n",
		"layer", "type", "gflops", "bytes_gb", "latency_ms")
	for _, layer := range layers {
		fmt.Printf("%12s %12s %12.3f %12.3f %12.3f\n",
			layer.LayerName,
			layer.LayerType,
			layer.Flops/1e9,
			layer.TotalBytes()/1e9,
			layer.DominantLatencyMs)
	}
}

// printRun renders the scenario banner, the per-layer table, and the
// aggregate totals block.
func printRun(scn *scenario.Scenario, result sim.SimulationResult, render tableRenderer) {
	fmt.Printf("Scenario: %s\n", scn.Name)
	fmt.Printf("Hardware: %s\n", scn.Hardware.Name)
	render(result.Layers)
	fmt.Println("\nTotals:")
	fmt.Printf("  Total latency (ms): %.3f\n", result.TotalLatencyMs)
	fmt.Printf("  Total FLOPs (GFLOPs): %.3f\n", result.TotalFlops/1e9)
	fmt.Printf("  Peak memory (GB): %.3f\n", result.PeakMemoryBytes/1e9)
	fmt.Printf("  Bottleneck layer: %s\n", result.BottleneckLayer)
}

// dumpResult writes the raw result as indented JSON.
func dumpResult(path string, result sim.SimulationResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
