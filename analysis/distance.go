// SPDX-License-Identifier: MIT

package analysis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/socialinherit/core"
)

// ErrSourceNotFound is returned by HopDistances for an unknown source.
var ErrSourceNotFound = errors.New("analysis: source vertex not found")

// queueItem pairs a vertex ID with its hop distance from the source.
type queueItem struct {
	id    string
	depth int
}

// HopDistances returns the number of ties on a shortest path from source to
// every reachable individual, source included at 0. Weights are ignored.
func HopDistances(g *core.Graph, source string) (map[string]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	depth := map[string]int{source: 0}
	queue := []queueItem{{id: source}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		nbrs, err := g.NeighborIDs(item.id)
		if err != nil {
			return nil, fmt.Errorf("analysis: neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range nbrs {
			if _, seen := depth[nbr]; seen {
				continue
			}
			depth[nbr] = item.depth + 1
			queue = append(queue, queueItem{id: nbr, depth: item.depth + 1})
		}
	}

	return depth, nil
}

// distances runs HopDistances from every vertex and returns the mean over
// ordered reachable pairs and the largest finite distance. Both are 0 when
// no two individuals are connected.
func distances(g *core.Graph, ids []string) (mean float64, diameter int, err error) {
	var sum, pairs int
	for _, id := range ids {
		depth, err := HopDistances(g, id)
		if err != nil {
			return 0, 0, err
		}
		for _, d := range depth {
			if d == 0 {
				continue
			}
			sum += d
			pairs++
			if d > diameter {
				diameter = d
			}
		}
	}
	if pairs == 0 {
		return 0, 0, nil
	}

	return float64(sum) / float64(pairs), diameter, nil
}
