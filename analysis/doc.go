// SPDX-License-Identifier: MIT

// Package analysis summarizes the structure of a social network before and
// after turnover.
//
// Summarize reports:
//
//	- size:        vertex and edge counts
//	- degree:      mean, standard deviation, maximum, isolated individuals
//	- clustering:  transitivity (global) and mean local clustering
//	- cohesion:    connected components and the largest one
//	- distance:    mean hop distance over connected pairs and the diameter
//	- community:   modularity Q of a Louvain partition (gonum graph/community)
//	- effort:      mean and standard deviation of tie weights
//
// ToGonum exposes the same graph to any gonum algorithm, with node IDs equal
// to dense vertex positions.
//
// Conventions: parallel edges count toward degree but are merged (weights
// summed) for clustering and community detection; vertices with fewer than
// two distinct partners have local clustering 0; an edgeless graph has
// modularity 0; standard deviations of fewer than two samples are 0.
package analysis
