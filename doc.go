// Package gatesynth is a logic-synthesis and technology-mapping engine
// for gate-level Boolean networks.
//
// 🚀 What is gatesynth?
//
//	A modern, structurally-hashed AIG/MIG arena paired with the passes
//	that turn one into a mapped netlist:
//
//	  • builder  — structural-hashing subnet arena (AddCell, Replace, Make)
//	  • cut      — k-feasible cut enumeration over a built subnet
//	  • transform — rewrite/refactor/resubstitute passes and named scripts
//	  • techmap  — NPN-canonical premapping, library techmapping, unmap
//	  • design   — named subnet hierarchy with save_point/goto_point
//	  • equiv    — simulation-based logical-equivalence checking
//	  • shell    — CLI verbs over a design, driven by cmd/gatesynth
//
// ✨ Why choose gatesynth?
//
//   - Structural sharing — every AddCell call hits a hash table first
//   - Single-owner arena  — a builder is owned by one pass, no lock on the hot path
//   - Script-driven       — named pass compositions (resyn2, compress2, ...)
//   - Library-agnostic    — techmap works against any loaded NLDM library
//
// Under the hood, the synthesis pipeline runs:
//
//	builder (network) -> transform (optimize) -> techmap (map to cells)
//
// and design ties named subnets together into one checkpointed project
// that the shell verbs operate on.
//
//	go get github.com/hqdem/gatesynth
package gatesynth
