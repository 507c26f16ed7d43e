package analysis

import "sort"

// topCentralityCount bounds the "most central nodes" lists.
const topCentralityCount = 10

// RankedNode is one entry in a top-N centrality list.
type RankedNode struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// CentralityMetrics holds per-node degree, closeness and betweenness
// centrality plus the derived rankings.
type CentralityMetrics struct {
	Degree      map[string]float64 `json:"degree"`
	Closeness   map[string]float64 `json:"closeness"`
	Betweenness map[string]float64 `json:"betweenness"`

	TopDegree      []RankedNode `json:"top_degree"`
	TopCloseness   []RankedNode `json:"top_closeness"`
	TopBetweenness []RankedNode `json:"top_betweenness"`

	// CombinedRanking sums inverse-rank points across the three metrics:
	// the best-ranked node per metric earns N points, the worst earns 1.
	CombinedRanking []RankedNode `json:"combined_ranking"`
}

// ComputeCentrality calculates all three centrality measures. Betweenness
// uses Brandes' algorithm for exact results in O(N*E) instead of
// enumerating shortest paths per pair.
func ComputeCentrality(g *Graph) CentralityMetrics {
	n := len(g.Nodes)

	metrics := CentralityMetrics{
		Degree:      make(map[string]float64, n),
		Closeness:   make(map[string]float64, n),
		Betweenness: computeBetweenness(g),
	}

	for id, node := range g.Nodes {
		if n > 1 {
			metrics.Degree[id] = float64(node.Degree) / float64(n-1)
		} else {
			metrics.Degree[id] = 0
		}
		metrics.Closeness[id] = closenessFor(g, id, n)
	}

	metrics.TopDegree = topRanked(g, metrics.Degree, topCentralityCount)
	metrics.TopCloseness = topRanked(g, metrics.Closeness, topCentralityCount)
	metrics.TopBetweenness = topRanked(g, metrics.Betweenness, topCentralityCount)
	metrics.CombinedRanking = combinedRanking(g, metrics)

	return metrics
}

// closenessFor is (reachable-1)/sum_of_distances from one node. Isolated
// nodes and single-node graphs score 0.
func closenessFor(g *Graph, id string, n int) float64 {
	if n <= 1 {
		return 0
	}

	dist := bfsDistances(g, id)
	sum := 0
	for _, d := range dist {
		sum += d
	}
	reachable := len(dist) - 1
	if reachable <= 0 || sum == 0 {
		return 0
	}

	return float64(reachable) / float64(sum)
}

// computeBetweenness implements Brandes' betweenness centrality over the
// undirected adjacency sets. Scores are normalized by (N-1)(N-2), which
// accounts for every unordered pair being visited from both endpoints.
func computeBetweenness(g *Graph) map[string]float64 {
	bc := make(map[string]float64, len(g.Nodes))
	ids := g.NodeIDs()
	for _, id := range ids {
		bc[id] = 0
	}

	n := len(ids)
	if n < 3 {
		return bc
	}

	for _, source := range ids {
		stack := make([]string, 0, n)
		pred := make(map[string][]string, n)
		sigma := map[string]float64{source: 1}
		dist := map[string]int{source: 0}

		queue := []string{source}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)

			for _, w := range g.Neighbors(v) {
				dw, seen := dist[w]
				if !seen {
					dw = dist[v] + 1
					dist[w] = dw
					queue = append(queue, w)
				}
				if dw == dist[v]+1 {
					sigma[w] += sigma[v]
					pred[w] = append(pred[w], v)
				}
			}
		}

		delta := make(map[string]float64, len(stack))
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range pred[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != source {
				bc[w] += delta[w]
			}
		}
	}

	norm := float64(n-1) * float64(n-2)
	for id := range bc {
		bc[id] /= norm
	}

	return bc
}

// topRanked returns the limit highest-scoring nodes, ties broken by id.
func topRanked(g *Graph, scores map[string]float64, limit int) []RankedNode {
	ranked := rankDescending(scores)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]RankedNode, len(ranked))
	for i, id := range ranked {
		out[i] = RankedNode{ID: id, Name: g.Nodes[id].Name, Score: scores[id]}
	}
	return out
}

// combinedRanking awards inverse-rank points per metric and sums them.
func combinedRanking(g *Graph, metrics CentralityMetrics) []RankedNode {
	n := len(g.Nodes)
	points := make(map[string]float64, n)

	for _, scores := range []map[string]float64{metrics.Degree, metrics.Closeness, metrics.Betweenness} {
		for rank, id := range rankDescending(scores) {
			points[id] += float64(n - rank)
		}
	}

	out := make([]RankedNode, 0, n)
	for _, id := range rankDescending(points) {
		out = append(out, RankedNode{ID: id, Name: g.Nodes[id].Name, Score: points[id]})
	}
	return out
}

func rankDescending(scores map[string]float64) []string {
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}
