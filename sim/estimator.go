package sim

// LayerEstimator is the contract the four layer modules implement.
// Implementations are pure: every call depends only on the receiver's
// immutable config and the arguments, so callers may evaluate layers
// concurrently without coordination.
type LayerEstimator interface {
	// AnalyticFlops returns total FLOPs for a lightweight FLOP-only query.
	AnalyticFlops(batch, seq int) float64

	// EstimateExecutionTime produces the full per-layer estimate.
	EstimateExecutionTime(batch, seq int, hw HardwareSpec) LayerExecution
}

// AnalyticEstimator dispatches layer configs to the matching estimator
// module. It holds only the immutable hardware/runtime pair; no state
// survives between calls.
type AnalyticEstimator struct {
	Hardware HardwareSpec
	Runtime  RuntimeSpec
}

// NewAnalyticEstimator builds a dispatcher for one hardware/runtime pair.
func NewAnalyticEstimator(hardware HardwareSpec, runtime RuntimeSpec) *AnalyticEstimator {
	return &AnalyticEstimator{Hardware: hardware, Runtime: runtime}
}

// moduleFor constructs the estimator module matching the config's kind.
// The switch is exhaustive over the closed LayerKind set; the base
// (attention) variant is the default arm.
func moduleFor(config LayerConfig) LayerEstimator {
	switch config.Kind {
	case LayerFFN:
		return NewFFN(config.FFNConfig)
	case LayerMoE:
		return NewMoE(config.MoEConfig)
	case LayerCommunication:
		return NewCommunication(config.CommConfig)
	default:
		return NewAttention(config.AttnConfig)
	}
}

// EstimateLayer runs the matching module and finalizes the result by
// copy-with-override: the config's own name/type win over the module's
// generic defaults, and the layer_id/layer_type feature keys are merged
// beneath any keys the module already set.
func (e *AnalyticEstimator) EstimateLayer(config LayerConfig) LayerExecution {
	module := moduleFor(config)
	execution := module.EstimateExecutionTime(e.Runtime.BatchSize, e.Runtime.SeqLen, e.Hardware)

	execution.LayerName = config.Name
	execution.LayerType = string(config.Kind)
	if execution.Features == nil {
		execution.Features = make(map[string]float64, 2)
	}
	if _, ok := execution.Features["layer_id"]; !ok {
		execution.Features["layer_id"] = float64(config.LayerID)
	}
	if _, ok := execution.Features["layer_type"]; !ok {
		execution.Features["layer_type"] = 0.0
	}
	return execution
}

// EstimateLayers estimates every config in order; output order matches
// input order.
func (e *AnalyticEstimator) EstimateLayers(configs []LayerConfig) []LayerExecution {
	executions := make([]LayerExecution, 0, len(configs))
	for _, config := range configs {
		executions = append(executions, e.EstimateLayer(config))
	}
	return executions
}
