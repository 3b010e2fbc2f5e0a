package sim

// AttentionConfig holds the normalized parameters of one attention layer.
type AttentionConfig struct {
	DModel    int
	NumHeads  int
	HeadDim   int // 0 = derive from DModel/NumHeads
	DtypeBits int
}

// ParseAttentionConfig normalizes a loose mapping, tolerating missing keys
// via defaults. num_attention_heads takes precedence over num_heads.
func ParseAttentionConfig(data ConfigMap) AttentionConfig {
	return AttentionConfig{
		DModel:    data.Int(768, "d_model"),
		NumHeads:  data.Int(8, "num_attention_heads", "num_heads"),
		HeadDim:   data.Int(0, "head_dim"),
		DtypeBits: data.Int(DefaultDtypeBits, "dtype_bits"),
	}
}

// ResolvedHeadDim returns the explicit head dim, or d_model/num_heads.
func (c AttentionConfig) ResolvedHeadDim() int {
	if c.HeadDim != 0 {
		return c.HeadDim
	}
	return c.DModel / max(c.NumHeads, 1)
}

// QKVDim is the combined projection width num_heads * head_dim.
func (c AttentionConfig) QKVDim() int {
	return c.NumHeads * c.ResolvedHeadDim()
}

// Attention estimates multi-head self-attention layers analytically.
type Attention struct {
	Config AttentionConfig
}

// NewAttention builds an attention estimator from a loose config mapping.
func NewAttention(attnConfig ConfigMap) *Attention {
	return &Attention{Config: ParseAttentionConfig(attnConfig)}
}

// metrics composes the four fused steps: QKV projection, scores,
// weighted sum, output projection.
func (a *Attention) metrics(batch, seq int) []FusionMetrics {
	cfg := a.Config
	return []FusionMetrics{
		AttentionQKVProjections(batch, seq, cfg.DModel, cfg.QKVDim(), cfg.DtypeBits),
		AttentionScores(batch, seq, cfg.NumHeads, cfg.ResolvedHeadDim(), cfg.DtypeBits),
		AttentionWeightedSum(batch, seq, cfg.NumHeads, cfg.ResolvedHeadDim(), cfg.DtypeBits),
		AttentionOutputProjection(batch, seq, cfg.DModel, cfg.QKVDim(), cfg.DtypeBits),
	}
}

// AnalyticFlops returns the layer's total FLOPs without timing it.
func (a *Attention) AnalyticFlops(batch, seq int) float64 {
	var total float64
	for _, m := range a.metrics(batch, seq) {
		total += m.Flops
	}
	return total
}

// EstimateExecutionTime converts the fused-op metrics into a roofline
// latency estimate on the given hardware.
func (a *Attention) EstimateExecutionTime(batch, seq int, hw HardwareSpec) LayerExecution {
	metrics := a.metrics(batch, seq)
	var totalFlops, totalBytes float64
	breakdown := make(map[string]BreakdownEntry, len(metrics))
	for _, m := range metrics {
		totalFlops += m.Flops
		totalBytes += m.BytesAccessed
		breakdown[m.Name] = BreakdownEntry{Flops: m.Flops, Bytes: m.BytesAccessed}
	}
	outputBytes := TensorBytes([]int{batch, seq, a.Config.DModel}, a.Config.DtypeBits)

	computeMs := ComputeTimeMs(totalFlops, hw)
	memoryMs := MemoryTimeMs(totalBytes+outputBytes, hw)
	latencyMs := DominantLatencyMs(computeMs, memoryMs, hw)

	features := map[string]float64{
		"d_model":    float64(a.Config.DModel),
		"num_heads":  float64(a.Config.NumHeads),
		"batch":      float64(batch),
		"seq":        float64(seq),
		"dtype_bits": float64(a.Config.DtypeBits),
	}

	return LayerExecution{
		LayerName:                "attention",
		LayerType:                string(LayerAttention),
		Flops:                    totalFlops,
		BytesRead:                totalBytes,
		BytesWritten:             outputBytes,
		ComputeTimeMs:            computeMs,
		MemoryTimeMs:             memoryMs,
		DominantLatencyMs:        latencyMs,
		EstimatedExecutionTimeMs: latencyMs,
		Features:                 features,
		Breakdown:                breakdown,
	}
}

// Forward is intentionally unimplemented: the estimator never executes
// tensor math, and reaching this is a programming error.
func (a *Attention) Forward(q, k, v any) {
	panic("sim: numeric forward not implemented for analytic attention estimator")
}
