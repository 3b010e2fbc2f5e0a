package sim

// DefaultPayloadMB is the per-device payload assumed when a communication
// layer does not specify one.
const DefaultPayloadMB = 1.0

// CommunicationConfig holds the normalized parameters of one collective
// communication layer.
type CommunicationConfig struct {
	Pattern   string // "all_reduce" or "all_to_all"
	PayloadMB float64
}

// ParseCommunicationConfig normalizes a loose mapping.
func ParseCommunicationConfig(data ConfigMap) CommunicationConfig {
	return CommunicationConfig{
		Pattern:   data.String("all_to_all", "pattern"),
		PayloadMB: data.Float(DefaultPayloadMB, "payload_mb"),
	}
}

// Communication estimates collective layers. These are bandwidth bound:
// the roofline blends interconnect time against memory time, with the
// payload counted as both read and written (no separate output tensor).
type Communication struct {
	Config CommunicationConfig
}

// NewCommunication builds a communication estimator from a loose config
// mapping.
func NewCommunication(commConfig ConfigMap) *Communication {
	return &Communication{Config: ParseCommunicationConfig(commConfig)}
}

// AnalyticFlops is always zero: collectives move bytes, they do not compute.
func (c *Communication) AnalyticFlops(batch, seq int) float64 {
	return 0
}

// EstimateExecutionTime routes the payload through the interconnect+memory
// roofline.
func (c *Communication) EstimateExecutionTime(batch, seq int, hw HardwareSpec) LayerExecution {
	payloadBytes := c.Config.PayloadMB * 1e6
	var metric FusionMetrics
	if c.Config.Pattern == "all_reduce" {
		metric = CommunicationAllReduce(payloadBytes)
	} else {
		metric = CommunicationAllToAll(payloadBytes)
	}

	interconnectMs := InterconnectTimeMs(metric.BytesAccessed, hw)
	memoryMs := MemoryTimeMs(metric.BytesAccessed, hw)
	latencyMs := DominantLatencyMs(interconnectMs, memoryMs, hw)

	patternFlag := 0.0
	if c.Config.Pattern == "all_reduce" {
		patternFlag = 1.0
	}
	features := map[string]float64{
		"pattern":    patternFlag,
		"payload_mb": c.Config.PayloadMB,
		"batch":      float64(batch),
		"seq":        float64(seq),
	}
	breakdown := map[string]BreakdownEntry{
		metric.Name: {Flops: metric.Flops, Bytes: metric.BytesAccessed},
	}

	return LayerExecution{
		LayerName:                "communication",
		LayerType:                string(LayerCommunication),
		Flops:                    0.0,
		BytesRead:                metric.BytesAccessed,
		BytesWritten:             metric.BytesAccessed,
		ComputeTimeMs:            interconnectMs,
		MemoryTimeMs:             memoryMs,
		DominantLatencyMs:        latencyMs,
		EstimatedExecutionTimeMs: latencyMs,
		Features:                 features,
		Breakdown:                breakdown,
	}
}

// Mix is intentionally unimplemented; see Attention.Forward.
func (c *Communication) Mix(messages any) {
	panic("sim: numeric communication path not implemented for analytic estimator")
}
