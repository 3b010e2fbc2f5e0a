package sim

// FFNConfig holds the normalized parameters of one feed-forward layer.
type FFNConfig struct {
	DModel    int
	DFF       int
	DtypeBits int
}

// ParseFFNConfig normalizes a loose mapping; d_ff falls back to the
// HuggingFace-style intermediate_size key.
func ParseFFNConfig(data ConfigMap) FFNConfig {
	return FFNConfig{
		DModel:    data.Int(768, "d_model"),
		DFF:       data.Int(3072, "d_ff", "intermediate_size"),
		DtypeBits: data.Int(DefaultDtypeBits, "dtype_bits"),
	}
}

// FFN estimates dense feed-forward layers analytically.
type FFN struct {
	Config FFNConfig
}

// NewFFN builds an FFN estimator from a loose config mapping.
func NewFFN(ffnConfig ConfigMap) *FFN {
	return &FFN{Config: ParseFFNConfig(ffnConfig)}
}

func (f *FFN) metrics(batch, seq int) FusionMetrics {
	cfg := f.Config
	return FFNActivation(batch, seq, cfg.DModel, cfg.DFF, cfg.DtypeBits)
}

// AnalyticFlops returns the layer's total FLOPs without timing it.
func (f *FFN) AnalyticFlops(batch, seq int) float64 {
	return f.metrics(batch, seq).Flops
}

// EstimateExecutionTime converts the fused-op metrics into a roofline
// latency estimate on the given hardware.
func (f *FFN) EstimateExecutionTime(batch, seq int, hw HardwareSpec) LayerExecution {
	metric := f.metrics(batch, seq)
	outputBytes := TensorBytes([]int{batch, seq, f.Config.DModel}, f.Config.DtypeBits)

	computeMs := ComputeTimeMs(metric.Flops, hw)
	memoryMs := MemoryTimeMs(metric.BytesAccessed+outputBytes, hw)
	latencyMs := DominantLatencyMs(computeMs, memoryMs, hw)

	features := map[string]float64{
		"d_model":    float64(f.Config.DModel),
		"d_ff":       float64(f.Config.DFF),
		"batch":      float64(batch),
		"seq":        float64(seq),
		"dtype_bits": float64(f.Config.DtypeBits),
	}
	breakdown := map[string]BreakdownEntry{
		metric.Name: {Flops: metric.Flops, Bytes: metric.BytesAccessed},
	}

	return LayerExecution{
		LayerName:                "ffn",
		LayerType:                string(LayerFFN),
		Flops:                    metric.Flops,
		BytesRead:                metric.BytesAccessed,
		BytesWritten:             outputBytes,
		ComputeTimeMs:            computeMs,
		MemoryTimeMs:             memoryMs,
		DominantLatencyMs:        latencyMs,
		EstimatedExecutionTimeMs: latencyMs,
		Features:                 features,
		Breakdown:                breakdown,
	}
}

// Forward is intentionally unimplemented; see Attention.Forward.
func (f *FFN) Forward(x any) {
	panic("sim: numeric forward not implemented for analytic FFN estimator")
}
