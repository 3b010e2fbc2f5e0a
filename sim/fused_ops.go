// Catalog of fused operations: one named closed-form (FLOPs, bytes) cost
// per architecturally meaningful fused step. The formulas are deliberately
// approximate; their value is consistent relative comparison across layer
// configurations and hardware profiles, not cycle-accurate prediction.

package sim

// DefaultDtypeBits is the byte-accounting width used when a layer config
// does not specify one (half precision).
const DefaultDtypeBits = 16

// FusionMetrics is the named (FLOPs, bytes accessed) pair produced by
// exactly one catalog formula. The name is the formula's identity and is
// used downstream as a breakdown key.
type FusionMetrics struct {
	Name          string
	Flops         float64
	BytesAccessed float64
}

// AttentionQKVProjections costs the three independent Q/K/V projections.
func AttentionQKVProjections(batch, seq, dModel, qkvDim, dtypeBits int) FusionMetrics {
	tokens := batch * seq
	flops := 3.0 * MatmulFlops(tokens, qkvDim, dModel)
	inputBytes := TensorBytes([]int{batch, seq, dModel}, dtypeBits)
	weightBytes := TensorBytes([]int{dModel, qkvDim}, dtypeBits) * 3
	outputBytes := TensorBytes([]int{batch, seq, qkvDim}, dtypeBits) * 3
	return FusionMetrics{"attention_qkv_proj", flops, inputBytes + weightBytes + outputBytes}
}

// AttentionScores costs the per-head Q·Kᵀ matmul plus a softmax term
// approximated at one op per score element.
func AttentionScores(batch, seq, numHeads, headDim, dtypeBits int) FusionMetrics {
	flopsPerHead := MatmulFlops(seq, seq, headDim)
	flops := flopsPerHead * float64(batch*numHeads)
	softmaxFlops := float64(batch * numHeads * seq * seq)
	qBytes := TensorBytes([]int{batch, numHeads, seq, headDim}, dtypeBits)
	kBytes := TensorBytes([]int{batch, numHeads, seq, headDim}, dtypeBits)
	attnBytes := TensorBytes([]int{batch, numHeads, seq, seq}, dtypeBits)
	return FusionMetrics{"attention_scores", flops + softmaxFlops, qBytes + kBytes + attnBytes}
}

// AttentionWeightedSum costs the attention-weights × V matmul.
func AttentionWeightedSum(batch, seq, numHeads, headDim, dtypeBits int) FusionMetrics {
	flopsPerHead := MatmulFlops(seq, headDim, seq)
	flops := flopsPerHead * float64(batch*numHeads)
	attnBytes := TensorBytes([]int{batch, numHeads, seq, seq}, dtypeBits)
	vBytes := TensorBytes([]int{batch, numHeads, seq, headDim}, dtypeBits)
	outputBytes := TensorBytes([]int{batch, seq, numHeads * headDim}, dtypeBits)
	return FusionMetrics{"attention_weighted_sum", flops, attnBytes + vBytes + outputBytes}
}

// AttentionOutputProjection costs the single dense output projection.
func AttentionOutputProjection(batch, seq, dModel, qkvDim, dtypeBits int) FusionMetrics {
	tokens := batch * seq
	flops := MatmulFlops(tokens, dModel, qkvDim)
	inputBytes := TensorBytes([]int{batch, seq, qkvDim}, dtypeBits)
	weightBytes := TensorBytes([]int{qkvDim, dModel}, dtypeBits)
	outputBytes := TensorBytes([]int{batch, seq, dModel}, dtypeBits)
	return FusionMetrics{"attention_output_proj", flops, inputBytes + weightBytes + outputBytes}
}

// FFNActivation costs the up- and down-projection matmuls plus an
// activation term approximated at one op per hidden element (SwiGLU/SiLU).
func FFNActivation(batch, seq, dModel, hiddenDim, dtypeBits int) FusionMetrics {
	tokens := batch * seq
	flopsFirst := MatmulFlops(tokens, hiddenDim, dModel)
	flopsSecond := MatmulFlops(tokens, dModel, hiddenDim)
	activationFlops := float64(tokens * hiddenDim)
	inputBytes := TensorBytes([]int{batch, seq, dModel}, dtypeBits)
	hiddenBytes := TensorBytes([]int{batch, seq, hiddenDim}, dtypeBits) * 2
	weightBytes := TensorBytes([]int{dModel, hiddenDim}, dtypeBits) + TensorBytes([]int{hiddenDim, dModel}, dtypeBits)
	return FusionMetrics{"ffn", flopsFirst + flopsSecond + activationFlops, inputBytes + hiddenBytes + weightBytes}
}

// MoEExpertForward costs the expert FFNs over activeTokens, the token
// volume actually routed to experts (total tokens × average experts
// activated per token), not the full token count.
func MoEExpertForward(activeTokens, dModel, expertHidden, dtypeBits int) FusionMetrics {
	flopsFirst := MatmulFlops(activeTokens, expertHidden, dModel)
	flopsSecond := MatmulFlops(activeTokens, dModel, expertHidden)
	activationFlops := float64(activeTokens * expertHidden)
	actBytes := TensorBytes([]int{activeTokens, dModel}, dtypeBits)
	hiddenBytes := TensorBytes([]int{activeTokens, expertHidden}, dtypeBits)
	weightBytes := TensorBytes([]int{dModel, expertHidden}, dtypeBits) + TensorBytes([]int{expertHidden, dModel}, dtypeBits)
	return FusionMetrics{"moe_expert", flopsFirst + flopsSecond + activationFlops, actBytes + hiddenBytes + weightBytes}
}

// MoERouting costs gating scores (tokens × experts) plus top-k selection
// (tokens × k). Routing weights are assumed negligible; only the gate-score
// tensor is costed in bytes.
func MoERouting(batch, seq, numExperts, topK, dtypeBits int) FusionMetrics {
	tokens := batch * seq
	gateFlops := float64(tokens * numExperts)
	selectFlops := float64(tokens * topK)
	gateBytes := TensorBytes([]int{tokens, numExperts}, dtypeBits)
	return FusionMetrics{"moe_routing", gateFlops + selectFlops, gateBytes}
}

// CommunicationAllToAll wraps an all-to-all payload as a zero-FLOP cost.
// Kept separate from all-reduce for diagnostics even though downstream
// timing treats the two identically today.
func CommunicationAllToAll(bytesPerDevice float64) FusionMetrics {
	return FusionMetrics{"all_to_all", 0.0, bytesPerDevice}
}

// CommunicationAllReduce wraps an all-reduce payload as a zero-FLOP cost.
func CommunicationAllReduce(bytesPerDevice float64) FusionMetrics {
	return FusionMetrics{"all_reduce", 0.0, bytesPerDevice}
}
