// SPDX-License-Identifier: MIT

// Package turnover simulates network turnover under social inheritance.
//
// A turnover round removes one individual chosen uniformly at random,
// picks a sponsor ("mother") uniformly among those who remain, appends a
// newcomer, and wires the newcomer's ties according to a Rule:
//
//	Induction          - independent Bernoulli trials per candidate with
//	                     probability Pb (sponsor), Pn (sponsor's partners)
//	                     or Pr (everyone else).
//	WeightedInduction  - as Induction, each candidate also draws an effort
//	                     round(max(Beta(a,b)·MaxEffort, 1)) used as the tie weight.
//	StyleCopying       - the newcomer copies the sponsor's partner count
//	                     (partner_number−1 distinct uniform targets) and
//	                     draws tie weights from the sponsor's weight multiset.
//
// Rounds are strictly sequential and all draws come from one injected
// *rand.Rand (math/rand/v2), consumed in this order per round:
//
//  1. IntN(n)   - position of the departing individual;
//  2. IntN(n-1) - position of the sponsor among those remaining;
//  3. rule draws, candidate by candidate in position order.
//
// A round is planned in full before the graph is touched; if the commit
// fails the graph is rolled back to its pre-round state.
//
// Quick start:
//
//	sim, err := turnover.New(turnover.Induction{Pn: 0.6, Pr: 0.01, Pb: 0.9},
//		turnover.WithSeed(42))
//	if err != nil { ... }
//	report, err := sim.Run(ctx, g, 1000)
package turnover
