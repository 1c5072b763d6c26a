// SPDX-License-Identifier: MIT

// Package builder generates the initial social networks that turnover
// simulations start from.
//
// A network is assembled by BuildGraph from one or more Constructors:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithWeighted()},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformIntWeightFn(1, 10))},
//		builder.RandomSparse(50, 0.08),
//	)
//
// Topologies:
//
//	- RandomSparse(n, p)   Erdős-Rényi G(n, p).
//	- RandomRegular(n, d)  every individual has exactly d partners.
//	- Complete(n)          K_n.
//	- Cycle(n)             C_n.
//	- Star(n)              one hub ("Center") and n−1 leaves.
//
// FromKind maps the configuration names ("random_sparse", "complete", ...)
// to these constructors.
//
// Vertex IDs come from an IDFn (DefaultIDFn: "0","1",...; SymbolNumberIDFn;
// ExcelColumnIDFn). Edge weights come from a WeightFn and are only emitted
// on weighted graphs; BetaEffortWeightFn produces the same integer effort
// values the weighted-induction rule draws for newcomers.
//
// Determinism: equal constructors, options and seed ⇒ identical graphs,
// vertex order included. Runtime errors wrap the sentinels in errors.go;
// option constructors panic on meaningless inputs.
package builder
