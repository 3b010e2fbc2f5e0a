package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommunicationConfig(t *testing.T) {
	assert.Equal(t, CommunicationConfig{Pattern: "all_to_all", PayloadMB: 1.0}, ParseCommunicationConfig(ConfigMap{}))
	got := ParseCommunicationConfig(ConfigMap{"pattern": "all_reduce", "payload_mb": 32.0})
	assert.Equal(t, CommunicationConfig{Pattern: "all_reduce", PayloadMB: 32.0}, got)
}

func TestCommunicationEstimateExecution(t *testing.T) {
	hw := NewHardwareSpec("TestGPU", 100, 1000, 80, 500)
	comm := NewCommunication(ConfigMap{"pattern": "all_reduce", "payload_mb": 500.0})

	execution := comm.EstimateExecutionTime(2, 16, hw)

	assert.Equal(t, "communication", execution.LayerName)
	assert.Equal(t, 0.0, execution.Flops)
	// Payload counts as both read and written; there is no output tensor.
	assert.Equal(t, 5e8, execution.BytesRead)
	assert.Equal(t, 5e8, execution.BytesWritten)
	// 500 MB over 500 GB/s = 1 ms on the interconnect axis.
	assert.InDelta(t, 1.0, execution.ComputeTimeMs, 1e-9)
	assert.InDelta(t, 0.5, execution.MemoryTimeMs, 1e-9)
	assert.Equal(t, 1.0, execution.DominantLatencyMs)

	if _, ok := execution.Breakdown["all_reduce"]; !ok {
		t.Fatalf("breakdown missing all_reduce entry: %v", execution.Breakdown)
	}
	assert.Equal(t, 1.0, execution.Features["pattern"])
}

func TestCommunicationZeroInterconnect(t *testing.T) {
	// Zero interconnect bandwidth models communication-free hardware: the
	// interconnect axis collapses to 0 and memory bounds the estimate.
	hw := NewHardwareSpec("NoLink", 100, 1000, 80, 0)
	comm := NewCommunication(ConfigMap{"payload_mb": 100.0})

	execution := comm.EstimateExecutionTime(1, 1, hw)

	assert.Equal(t, 0.0, execution.ComputeTimeMs)
	assert.Greater(t, execution.MemoryTimeMs, 0.0)
	assert.Equal(t, execution.MemoryTimeMs, execution.DominantLatencyMs)
}

func TestCommunicationAnalyticFlopsZero(t *testing.T) {
	comm := NewCommunication(ConfigMap{})
	assert.Equal(t, 0.0, comm.AnalyticFlops(8, 512))
}

func TestCommunicationMixPanics(t *testing.T) {
	comm := NewCommunication(ConfigMap{})
	assert.Panics(t, func() { comm.Mix(nil) })
}
