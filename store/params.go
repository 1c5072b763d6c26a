// SPDX-License-Identifier: MIT

package store

import "github.com/katalvlaran/socialinherit/turnover"

// ParamsOf flattens a rule's numeric parameters for logging.
func ParamsOf(rule turnover.Rule) map[string]float64 {
	switch r := rule.(type) {
	case turnover.Induction:
		return map[string]float64{"pn": r.Pn, "pr": r.Pr, "pb": r.Pb}
	case turnover.WeightedInduction:
		return map[string]float64{
			"pn": r.Pn, "pr": r.Pr, "pb": r.Pb,
			"en1": r.En1, "en2": r.En2, "er1": r.Er1, "er2": r.Er2,
			"max_effort": r.MaxEffort,
		}
	case turnover.StyleCopying:
		return map[string]float64{"pb": r.Pb}
	default:
		return map[string]float64{}
	}
}
