package sim

// MoEConfig holds the normalized parameters of one mixture-of-experts
// layer. Key precedence follows the DeepSeek-style config names first,
// then the generic ones.
type MoEConfig struct {
	DModel             int
	ExpertHidden       int
	NumExperts         int
	TopK               int
	AvgExpertsPerToken float64
	NumGroups          int
	DtypeBits          int
}

// ParseMoEConfig normalizes a loose mapping. Expert counts, top-k, group
// count, and the per-token activation average are floored at 1 so a
// degenerate config still behaves like a single dense expert.
func ParseMoEConfig(data ConfigMap) MoEConfig {
	topK := data.Int(1, "topk_group", "top_k", "num_experts_per_tok")
	return MoEConfig{
		DModel:             data.Int(768, "d_model", "model_dim"),
		ExpertHidden:       data.Int(3072, "moe_intermediate_size", "d_ff"),
		NumExperts:         max(data.Int(1, "n_routed_experts", "num_experts"), 1),
		TopK:               max(topK, 1),
		AvgExpertsPerToken: max(data.Float(float64(topK), "num_experts_per_tok"), 1.0),
		NumGroups:          max(data.Int(1, "n_group", "num_groups"), 1),
		DtypeBits:          data.Int(DefaultDtypeBits, "dtype_bits"),
	}
}

// MoE estimates mixture-of-experts layers analytically: routing plus
// expert forward plus the expert-parallel all-to-all shared across groups.
type MoE struct {
	Config MoEConfig
}

// NewMoE builds a MoE estimator from a loose config mapping.
func NewMoE(moeConfig ConfigMap) *MoE {
	return &MoE{Config: ParseMoEConfig(moeConfig)}
}

// ActiveTokens is the token volume actually processed by expert FFNs:
// total tokens times the average experts activated per token, floored.
func (m *MoE) ActiveTokens(batch, seq int) int {
	return int(float64(batch*seq) * m.Config.AvgExpertsPerToken)
}

func (m *MoE) metrics(batch, seq int) []FusionMetrics {
	cfg := m.Config
	routing := MoERouting(batch, seq, cfg.NumExperts, cfg.TopK, cfg.DtypeBits)
	activeTokens := m.ActiveTokens(batch, seq)
	expert := MoEExpertForward(activeTokens, cfg.DModel, cfg.ExpertHidden, cfg.DtypeBits)
	// Dispatch payload is split across expert groups.
	bytesPerDevice := TensorBytes([]int{activeTokens, cfg.DModel}, cfg.DtypeBits) / float64(cfg.NumGroups)
	comm := CommunicationAllToAll(bytesPerDevice)
	return []FusionMetrics{routing, expert, comm}
}

// AnalyticFlops returns the layer's total FLOPs without timing it.
func (m *MoE) AnalyticFlops(batch, seq int) float64 {
	var total float64
	for _, metric := range m.metrics(batch, seq) {
		total += metric.Flops
	}
	return total
}

// EstimateExecutionTime converts the fused-op metrics into a roofline
// latency estimate on the given hardware.
func (m *MoE) EstimateExecutionTime(batch, seq int, hw HardwareSpec) LayerExecution {
	metrics := m.metrics(batch, seq)
	var totalFlops, totalBytes float64
	breakdown := make(map[string]BreakdownEntry, len(metrics))
	for _, metric := range metrics {
		totalFlops += metric.Flops
		totalBytes += metric.BytesAccessed
		breakdown[metric.Name] = BreakdownEntry{Flops: metric.Flops, Bytes: metric.BytesAccessed}
	}
	outputBytes := TensorBytes([]int{batch, seq, m.Config.DModel}, m.Config.DtypeBits)

	computeMs := ComputeTimeMs(totalFlops, hw)
	memoryMs := MemoryTimeMs(totalBytes+outputBytes, hw)
	latencyMs := DominantLatencyMs(computeMs, memoryMs, hw)

	features := map[string]float64{
		"d_model":               float64(m.Config.DModel),
		"expert_hidden":         float64(m.Config.ExpertHidden),
		"num_experts":           float64(m.Config.NumExperts),
		"top_k":                 float64(m.Config.TopK),
		"avg_experts_per_token": m.Config.AvgExpertsPerToken,
		"batch":                 float64(batch),
		"seq":                   float64(seq),
	}

	return LayerExecution{
		LayerName:                "moe",
		LayerType:                string(LayerMoE),
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

// Forward is intentionally unimplemented; see Attention.Forward.
func (m *MoE) Forward(x any) {
	panic("sim: numeric forward not implemented for analytic MoE estimator")
}
