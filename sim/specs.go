package sim

// HardwareSpec describes an accelerator as abstract cost parameters.
// Rates are clamped by the accessors, not validated at construction,
// so a spec loaded from a partial profile still produces estimates.
type HardwareSpec struct {
	Name                string  `yaml:"name" json:"name"`
	PeakTflops          float64 `yaml:"peak_tflops" json:"peak_tflops"`
	MemoryBandwidthGBps float64 `yaml:"memory_bandwidth_gbps" json:"memory_bandwidth_gbps"`
	HBMGB               float64 `yaml:"hbm_gb" json:"hbm_gb"`
	InterconnectGBps    float64 `yaml:"interconnect_gbps" json:"interconnect_gbps"`
	MaxConcurrency      int     `yaml:"max_concurrency" json:"max_concurrency"`
	OverlapEfficiency   float64 `yaml:"overlap_efficiency" json:"overlap_efficiency"`
}

// ComputeThroughputTflops returns peak compute throughput, floored at zero.
func (h HardwareSpec) ComputeThroughputTflops() float64 {
	return max(h.PeakTflops, 0.0)
}

// MemoryBandwidthBytes returns HBM bandwidth in bytes/s, floored at zero.
func (h HardwareSpec) MemoryBandwidthBytes() float64 {
	return max(h.MemoryBandwidthGBps, 0.0) * 1e9
}

// InterconnectBandwidthBytes returns interconnect bandwidth in bytes/s,
// floored at zero.
func (h HardwareSpec) InterconnectBandwidthBytes() float64 {
	return max(h.InterconnectGBps, 0.0) * 1e9
}

// HBMBytes returns device memory capacity in bytes, floored at zero.
func (h HardwareSpec) HBMBytes() float64 {
	return max(h.HBMGB, 0.0) * 1e9
}

// EffectiveOverlap returns the overlap efficiency floored at a small
// positive epsilon so the roofline divisor never hits zero.
func (h HardwareSpec) EffectiveOverlap() float64 {
	return max(h.OverlapEfficiency, 1e-3)
}

// NewHardwareSpec builds a HardwareSpec with the optional fields at their
// defaults (single concurrency, no overlap benefit).
func NewHardwareSpec(name string, peakTflops, memoryBandwidthGBps, hbmGB, interconnectGBps float64) HardwareSpec {
	return HardwareSpec{
		Name:                name,
		PeakTflops:          peakTflops,
		MemoryBandwidthGBps: memoryBandwidthGBps,
		HBMGB:               hbmGB,
		InterconnectGBps:    interconnectGBps,
		MaxConcurrency:      1,
		OverlapEfficiency:   1.0,
	}
}

// RuntimeSpec carries the per-run shape parameters supplied through the CLI.
// MicroBatch and TokensPerExpert are informational overrides reserved for
// extension; the analytic formulas do not consume them yet.
type RuntimeSpec struct {
	BatchSize       int
	SeqLen          int
	MicroBatch      int     // 0 = unset
	TokensPerExpert float64 // 0 = unset
}

// NewRuntimeSpec builds a RuntimeSpec from required batch/seq values.
func NewRuntimeSpec(batchSize, seqLen int) RuntimeSpec {
	return RuntimeSpec{BatchSize: batchSize, SeqLen: seqLen}
}

// HardwareProfiles is a builtin catalog of accelerator profiles a scenario
// may reference by name instead of spelling out a hardware block.
var HardwareProfiles = map[string]HardwareSpec{
	"H100": {
		Name:                "H100",
		PeakTflops:          989.5,
		MemoryBandwidthGBps: 3350,
		HBMGB:               80,
		InterconnectGBps:    900,
		MaxConcurrency:      8,
		OverlapEfficiency:   1.0,
	},
	"A100-80": {
		Name:                "A100-80",
		PeakTflops:          312,
		MemoryBandwidthGBps: 2039,
		HBMGB:               80,
		InterconnectGBps:    600,
		MaxConcurrency:      8,
		OverlapEfficiency:   1.0,
	},
}
