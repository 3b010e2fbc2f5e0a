// Metric primitives: FLOP counting, tensor byte sizing, and the
// conversions from analytic work to wall-clock time on a HardwareSpec.

package sim

import "math"

// MatmulFlops returns FLOPs for a dense matmul, counting a multiply-add
// as 2 FLOPs. Dimensions are not validated; negative inputs propagate.
func MatmulFlops(m, n, k int) float64 {
	return float64(2 * m * n * k)
}

// TensorElements returns the element count of a shape. Each dimension is
// floored at zero so degenerate shapes contribute nothing.
func TensorElements(shape []int) int {
	total := 1
	for _, dim := range shape {
		if dim < 0 {
			dim = 0
		}
		total *= dim
	}
	return total
}

// TensorBytes is the canonical byte-sizing rule used everywhere a tensor
// is costed: element count times dtypeBits/8.
func TensorBytes(shape []int, dtypeBits int) float64 {
	return float64(TensorElements(shape)) * float64(dtypeBits) / 8.0
}

// SumTensorBytes sizes several shapes at a shared dtype width.
func SumTensorBytes(shapes [][]int, dtypeBits int) float64 {
	var total float64
	for _, shape := range shapes {
		total += TensorBytes(shape, dtypeBits)
	}
	return total
}

// ComputeTimeMs converts FLOPs to milliseconds against peak throughput.
// Non-positive throughput yields +Inf: the layer cannot complete on this
// hardware, and callers must treat the sentinel as such rather than a fault.
func ComputeTimeMs(flops float64, hw HardwareSpec) float64 {
	throughput := hw.ComputeThroughputTflops()
	if throughput <= 0 {
		return math.Inf(1)
	}
	seconds := flops / (throughput * 1e12)
	return seconds * 1e3
}

// MemoryTimeMs converts bytes moved to milliseconds against HBM bandwidth.
// Non-positive bandwidth yields +Inf, same policy as ComputeTimeMs.
func MemoryTimeMs(bytesMoved float64, hw HardwareSpec) float64 {
	bandwidth := hw.MemoryBandwidthBytes()
	if bandwidth <= 0 {
		return math.Inf(1)
	}
	seconds := bytesMoved / bandwidth
	return seconds * 1e3
}

// InterconnectTimeMs converts bytes moved to milliseconds against the
// interconnect. Non-positive bandwidth yields 0.0, not +Inf: a missing
// interconnect models communication as instantaneous on that axis so it
// never dominates the roofline when memory/compute terms exist.
func InterconnectTimeMs(bytesMoved float64, hw HardwareSpec) float64 {
	bandwidth := hw.InterconnectBandwidthBytes()
	if bandwidth <= 0 {
		return 0.0
	}
	seconds := bytesMoved / bandwidth
	return seconds * 1e3
}

// DominantLatencyMs is the roofline blend used by every layer estimator:
// memory time is divided by the overlap efficiency (1.0 = no overlap
// benefit, >1 models successful compute/memory overlap) and the maximum
// of the two axes wins.
func DominantLatencyMs(computeMs, memoryMs float64, hw HardwareSpec) float64 {
	adjustedMemory := memoryMs / hw.EffectiveOverlap()
	return math.Max(computeMs, adjustedMemory)
}
