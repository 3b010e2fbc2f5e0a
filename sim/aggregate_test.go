package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateEmptyFailsFast(t *testing.T) {
	_, err := Aggregate(nil)
	assert.ErrorIs(t, err, ErrNoLayers)
	_, err = Aggregate([]LayerExecution{})
	assert.ErrorIs(t, err, ErrNoLayers)
}

func TestAggregateTotals(t *testing.T) {
	layers := []LayerExecution{
		{LayerName: "attn", Flops: 100, BytesRead: 10, BytesWritten: 5, DominantLatencyMs: 2.0},
		{LayerName: "ffn", Flops: 300, BytesRead: 50, BytesWritten: 25, DominantLatencyMs: 6.0},
		{LayerName: "comm", Flops: 0, BytesRead: 40, BytesWritten: 40, DominantLatencyMs: 1.0},
	}

	result, err := Aggregate(layers)
	require.NoError(t, err)

	assert.Equal(t, 400.0, result.TotalFlops)
	assert.Equal(t, 9.0, result.TotalLatencyMs)
	// Peak memory is a per-layer high-water mark, not a running sum.
	assert.Equal(t, 80.0, result.PeakMemoryBytes)
	assert.Equal(t, "ffn", result.BottleneckLayer)
	assert.Equal(t, layers, result.Layers)
}

func TestAggregateBottleneckTieBreak(t *testing.T) {
	layers := []LayerExecution{
		{LayerName: "first", DominantLatencyMs: 4.0, BytesRead: 1},
		{LayerName: "second", DominantLatencyMs: 4.0, BytesRead: 1},
	}
	result, err := Aggregate(layers)
	require.NoError(t, err)
	// Ties go to the first occurrence in iteration order.
	assert.Equal(t, "first", result.BottleneckLayer)
}

func TestAggregateSingleLayer(t *testing.T) {
	layers := []LayerExecution{
		{LayerName: "only", Flops: 42, BytesRead: 7, BytesWritten: 3, DominantLatencyMs: 1.5},
	}
	result, err := Aggregate(layers)
	require.NoError(t, err)
	assert.Equal(t, "only", result.BottleneckLayer)
	assert.Equal(t, 10.0, result.PeakMemoryBytes)
	assert.Equal(t, 1.5, result.TotalLatencyMs)
}
