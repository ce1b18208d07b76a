// Package flownet is an integer-exact network-flow toolkit built around a
// highest-label push–relabel maximum-flow engine.
//
// 🚀 What is flownet?
//
//	A deterministic, allocation-conscious library that brings together:
//		• graph/   — a compact arc-indexed digraph with paired forward/reverse arcs
//		• maxflow/ — the push–relabel solver with global relabeling, min-cut
//		  extraction, overflow detection and a serializable flow model
//		• cmd/flownet — a CLI that solves DIMACS max-flow instances
//
// ✨ Why choose flownet?
//
//   - Integer-exact — int64 flows with explicit overflow status, no epsilons
//   - Deterministic — repeated solves on the same instance are byte-identical
//   - Two-phase — the engine returns a true flow, not merely a preflow,
//     and exposes both sides of a minimum s–t cut
//   - Lean core — graph and the maxflow engine use only the standard
//     library; maxflow's YAML flow-model export uses gopkg.in/yaml.v3,
//     and the CLI layers logging and flag handling on top
//
// Quick ASCII example:
//
//	    s ──5──▶ a ──3──▶ t
//
//	a chain with bottleneck 3: OptimalFlow() == 3, and {s, a} is the
//	source side of the unique minimum cut.
//
// Dive into maxflow/doc.go for the algorithm walkthrough and into
// cmd/flownet for the command-line front end.
//
//	go get github.com/katalvlaran/flownet
package flownet
