// Package scenario loads simulation scenarios from YAML and drives
// end-to-end estimation runs. It is the engine's loading collaborator:
// all file parsing and validation happens here, never in sim itself.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	sim "github.com/afd-sim/afd-sim/sim"
)

// SupportedLayerTypes maps scenario type tags (including legacy *_layer
// spellings) to canonical layer kinds. Unknown tags fail at load time.
var SupportedLayerTypes = map[string]sim.LayerKind{
	"attention":       sim.LayerAttention,
	"attention_layer": sim.LayerAttention,
	"ffn":             sim.LayerFFN,
	"ffn_layer":       sim.LayerFFN,
	"moe":             sim.LayerMoE,
	"moe_layer":       sim.LayerMoE,
	"communication":   sim.LayerCommunication,
}

// requiredHardwareKeys must all be present in a hardware block.
var requiredHardwareKeys = []string{
	"name",
	"peak_tflops",
	"memory_bandwidth_gbps",
	"hbm_gb",
	"interconnect_gbps",
}

// Scenario is one loaded simulation input: a named hardware profile plus
// an ordered list of layer configurations.
type Scenario struct {
	Name     string
	Hardware sim.HardwareSpec
	Layers   []sim.LayerConfig
}

func readYAML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

// maybeLoadReference resolves a value that is either an inline mapping or
// a path to a YAML file relative to baseDir.
func maybeLoadReference(baseDir string, value any) (map[string]any, error) {
	switch v := value.(type) {
	case map[string]any:
		return v, nil
	case string:
		return readYAML(filepath.Join(baseDir, v))
	default:
		return nil, fmt.Errorf("unsupported reference value %v (want mapping or path)", value)
	}
}

// HardwareFromMap validates and converts a hardware mapping. Missing
// required keys produce an error naming every absent field.
func HardwareFromMap(data map[string]any) (sim.HardwareSpec, error) {
	var missing []string
	for _, key := range requiredHardwareKeys {
		if _, ok := data[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return sim.HardwareSpec{}, fmt.Errorf("hardware config missing keys: %s", strings.Join(missing, ", "))
	}

	m := sim.ConfigMap(data)
	return sim.HardwareSpec{
		Name:                m.String("", "name"),
		PeakTflops:          m.Float(0, "peak_tflops"),
		MemoryBandwidthGBps: m.Float(0, "memory_bandwidth_gbps"),
		HBMGB:               m.Float(0, "hbm_gb"),
		InterconnectGBps:    m.Float(0, "interconnect_gbps"),
		MaxConcurrency:      m.Int(1, "max_concurrency"),
		OverlapEfficiency:   m.Float(1.0, "overlap_efficiency"),
	}, nil
}

func subConfig(data map[string]any, key string) sim.ConfigMap {
	if v, ok := data[key]; ok {
		if m, ok := v.(map[string]any); ok {
			return sim.ConfigMap(m)
		}
	}
	return sim.ConfigMap{}
}

// LayerConfigFromMap resolves a type tag and builds the matching layer
// config variant from a merged mapping.
func LayerConfigFromMap(idx int, layerType string, data map[string]any) (sim.LayerConfig, error) {
	kind, ok := SupportedLayerTypes[layerType]
	if !ok {
		return sim.LayerConfig{}, fmt.Errorf("unsupported layer type: %q", layerType)
	}

	name, _ := data["name"].(string)
	if name == "" {
		name = fmt.Sprintf("%s_%d", kind, idx)
	}
	attn := subConfig(data, "attn_config")

	switch kind {
	case sim.LayerFFN:
		return sim.NewFFNLayerConfig(name, idx, attn, subConfig(data, "ffn_config")), nil
	case sim.LayerMoE:
		return sim.NewMoELayerConfig(name, idx, attn, subConfig(data, "moe_config")), nil
	case sim.LayerCommunication:
		comm := subConfig(data, "comm_config")
		if len(comm) == 0 {
			comm = sim.ConfigMap(data)
		}
		return sim.NewCommunicationLayerConfig(name, idx, attn, comm), nil
	default:
		if len(attn) == 0 {
			attn = sim.ConfigMap(data)
		}
		return sim.NewAttentionLayerConfig(name, idx, attn), nil
	}
}

// Load reads a scenario YAML file. A scenario names a hardware block
// (inline, file reference, or builtin profile name) and at least one
// layer entry; layer entries may reference a config file and overlay
// per-entry overrides on top of it.
func Load(path string) (*Scenario, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	data, err := readYAML(abs)
	if err != nil {
		return nil, err
	}
	baseDir := filepath.Dir(abs)

	hardwareRef, ok := data["hardware"]
	if !ok {
		return nil, fmt.Errorf("scenario must specify a 'hardware' block or reference")
	}
	var hardware sim.HardwareSpec
	if name, ok := hardwareRef.(string); ok && sim.HardwareProfiles[name].Name != "" {
		// Builtin profile names take precedence over file references.
		hardware = sim.HardwareProfiles[name]
	} else {
		hardwareMap, err := maybeLoadReference(baseDir, hardwareRef)
		if err != nil {
			return nil, err
		}
		hardware, err = HardwareFromMap(hardwareMap)
		if err != nil {
			return nil, err
		}
	}

	layersBlock, _ := data["layers"].([]any)
	if len(layersBlock) == 0 {
		return nil, fmt.Errorf("scenario must include at least one layer entry")
	}

	layers := make([]sim.LayerConfig, 0, len(layersBlock))
	for idx, entry := range layersBlock {
		entryMap, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("layer entry #%d must be a mapping", idx)
		}
		layerType, _ := entryMap["type"].(string)

		configMap := entryMap
		if ref, ok := entryMap["config"]; ok {
			configMap, err = maybeLoadReference(baseDir, ref)
			if err != nil {
				return nil, fmt.Errorf("layer entry #%d: %w", idx, err)
			}
		}
		merged := make(map[string]any, len(configMap)+2)
		for k, v := range configMap {
			merged[k] = v
		}
		if overrides, ok := entryMap["overrides"].(map[string]any); ok {
			for k, v := range overrides {
				merged[k] = v
			}
		}
		if _, ok := merged["name"]; !ok {
			if n, ok := entryMap["name"]; ok {
				merged["name"] = n
			}
		}

		layer, err := LayerConfigFromMap(idx, layerType, merged)
		if err != nil {
			return nil, fmt.Errorf("layer entry #%d: %w", idx, err)
		}
		layers = append(layers, layer)
	}

	name, _ := data["name"].(string)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	}
	return &Scenario{Name: name, Hardware: hardware, Layers: layers}, nil
}
