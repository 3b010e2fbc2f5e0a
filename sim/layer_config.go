package sim

// LayerKind tags the closed set of layer variants the dispatcher knows.
// Adding a kind means touching the AnalyticEstimator switch; the set is
// closed by construction (scenario loading rejects unknown type tags).
type LayerKind string

const (
	LayerAttention     LayerKind = "attention"
	LayerFFN           LayerKind = "ffn"
	LayerMoE           LayerKind = "moe"
	LayerCommunication LayerKind = "communication"
)

// LayerConfig is the tagged union over the four layer variants. The
// header (Kind, Name, LayerID, AttnConfig, FusedOps) is shared; exactly
// the payload matching Kind is consulted during estimation. Configs are
// built once at scenario-load time and are read-only afterwards.
type LayerConfig struct {
	Kind     LayerKind
	Name     string
	LayerID  int
	FusedOps []string // informational: fused-op names applied upstream

	AttnConfig ConfigMap // base variant payload (plain attention layer)
	FFNConfig  ConfigMap // payload when Kind == LayerFFN
	MoEConfig  ConfigMap // payload when Kind == LayerMoE
	CommConfig ConfigMap // payload when Kind == LayerCommunication
}

// NewAttentionLayerConfig builds the base (attention) variant.
func NewAttentionLayerConfig(name string, layerID int, attn ConfigMap) LayerConfig {
	return LayerConfig{Kind: LayerAttention, Name: name, LayerID: layerID, AttnConfig: attn}
}

// NewFFNLayerConfig builds the FFN variant.
func NewFFNLayerConfig(name string, layerID int, attn, ffn ConfigMap) LayerConfig {
	return LayerConfig{Kind: LayerFFN, Name: name, LayerID: layerID, AttnConfig: attn, FFNConfig: ffn}
}

// NewMoELayerConfig builds the MoE variant.
func NewMoELayerConfig(name string, layerID int, attn, moe ConfigMap) LayerConfig {
	return LayerConfig{Kind: LayerMoE, Name: name, LayerID: layerID, AttnConfig: attn, MoEConfig: moe}
}

// NewCommunicationLayerConfig builds the communication variant.
func NewCommunicationLayerConfig(name string, layerID int, attn, comm ConfigMap) LayerConfig {
	return LayerConfig{Kind: LayerCommunication, Name: name, LayerID: layerID, AttnConfig: attn, CommConfig: comm}
}
