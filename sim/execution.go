package sim

// BreakdownEntry is one catalog formula's contribution to a layer estimate,
// keyed in LayerExecution.Breakdown by the formula name.
type BreakdownEntry struct {
	Flops float64 `json:"flops"`
	Bytes float64 `json:"bytes"`
}

// LayerExecution is the structured per-layer result emitted by the
// analytic estimators. All times are milliseconds.
type LayerExecution struct {
	LayerName                string                    `json:"layer_name"`
	LayerType                string                    `json:"layer_type"`
	Flops                    float64                   `json:"flops"`
	BytesRead                float64                   `json:"bytes_read"`
	BytesWritten             float64                   `json:"bytes_written"`
	ComputeTimeMs            float64                   `json:"compute_time_ms"`
	MemoryTimeMs             float64                   `json:"memory_time_ms"`
	DominantLatencyMs        float64                   `json:"dominant_latency_ms"`
	EstimatedExecutionTimeMs float64                   `json:"estimated_execution_time_ms"`
	Features                 map[string]float64        `json:"features"`
	Breakdown                map[string]BreakdownEntry `json:"breakdown"`
}

// TotalBytes returns the layer's read+write traffic, the quantity the
// aggregate peak-memory high-water mark is taken over.
func (e LayerExecution) TotalBytes() float64 {
	return e.BytesRead + e.BytesWritten
}

// SimulationResult is the aggregate output for one end-to-end run.
// TotalLatencyMs is a purely sequential sum of per-layer dominant
// latencies; PeakMemoryBytes is a per-layer high-water mark, not a
// running footprint.
type SimulationResult struct {
	Layers          []LayerExecution `json:"layers"`
	TotalFlops      float64          `json:"total_flops"`
	TotalLatencyMs  float64          `json:"total_latency_ms"`
	PeakMemoryBytes float64          `json:"peak_memory_bytes"`
	BottleneckLayer string           `json:"bottleneck_layer"`
}
