// Package socialinherit simulates membership turnover in social networks
// where newcomers inherit their ties from the individual who introduced them.
//
// Each round one individual leaves at random and a newcomer arrives,
// sponsored by a random remaining member. The newcomer's ties follow one of
// three rules:
//
//   - Induction: a tie to the sponsor with probability Pb, to each of the
//     sponsor's partners with Pn, and to anyone else with Pr.
//   - Weighted induction: the same trials, each tie carrying a Beta-drawn
//     effort weight.
//   - Style copying: the newcomer copies the sponsor's partner count and
//     resamples the sponsor's tie weights.
//
// Packages:
//
//	core/      ordered, thread-safe undirected graph with dense positions
//	builder/   initial networks: random sparse, random regular, complete, cycle, star
//	turnover/  the simulator and the three rules
//	analysis/  degree, clustering, component and community summaries (gonum)
//	graphio/   YAML network snapshots
//	store/     SQLite run log
//	config/    viper-backed settings and zerolog logger
//
// The socialinherit command in cmd/socialinherit ties them together:
//
//	socialinherit generate --kind random_sparse --n 100 --p 0.05 --out net.yaml
//	socialinherit run --in net.yaml --rule style_copying --iterations 1000 --db runs.db
//	socialinherit history --db runs.db
package socialinherit
