// Package rmnkhv is an anytime benchmarking engine for multi-objective
// combinatorial optimization on ρMNK-landscapes.
//
// 🚀 What is rmnkhv?
//
//	A small, focused toolkit that brings together:
//
//	  • instance    — load a ρMNK landscape file, evaluate bitstrings
//	  • pareto      — solutions, objective vectors, dominance relations
//	  • archive     — a streaming nondominated set
//	  • hypervolume — a WFG-style incremental hypervolume engine
//	  • heuristics  — GSEMO, PLS and IBEA drivers over the above
//
// Given a problem instance, a driver runs one of the three heuristics
// under a fixed evaluation budget and emits an anytime trace recording
// how the archive's hypervolume evolves as evaluations are consumed.
// That trace — not just the terminal result — is the product of
// interest: it lets two algorithms be compared across the whole run,
// not only at the budget's end.
//
// Under the hood, everything is organized under these subpackages:
//
//	rng/          — seeded PRNG, independent stream derivation
//	instance/     — ρMNK file format, Evaluate
//	pareto/       — Solution, Bitstring, Dominance
//	archive/      — InsertIfNondominated
//	hypervolume/  — Engine, SetHypervolume
//	heuristics/   — RunGSEMO, RunPLS, RunIBEA
//	anytime/      — Row, Recorder
//	rmnkconfig/   — YAML driver configuration (LoadYAML, per-driver configs)
//
// The module ships no runnable programs; a caller loads an instance,
// builds a driver config (directly or via rmnkconfig) and calls one of
// the Run functions with an anytime.Recorder.
//
// See SPEC_FULL.md for the full component breakdown.
//
//	go get github.com/katalvlaran/rmnkhv
package rmnkhv
