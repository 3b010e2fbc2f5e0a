// Package sim is the analytic cost-modeling engine: closed-form FLOPs and
// byte estimates for transformer layers, converted to latency on a
// described accelerator. No tensor math is ever executed.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - metrics.go: FLOP/byte primitives and the roofline time conversions
//   - fused_ops.go: the catalog of named per-step (FLOPs, bytes) formulas
//   - estimator.go: the dispatcher that routes layer configs to modules
//
// # Architecture
//
// Each layer kind has its own estimator module (attention.go, ffn.go,
// moe.go, communication.go). A module owns a typed config parsed from a
// loose ConfigMap, composes catalog formulas, and converts the aggregate
// work into a LayerExecution via the metric primitives. AnalyticEstimator
// dispatches over the closed LayerConfig union; Aggregate folds per-layer
// results into a SimulationResult.
//
// Scenario YAML loading lives in the sim/scenario sub-package; the engine
// itself never touches the filesystem.
//
// # Purity
//
// Every estimate is a pure function of (config, runtime, hardware).
// Degenerate hardware yields sentinel values (+Inf compute/memory time,
// 0 interconnect time) instead of errors; see metrics.go.
package sim
