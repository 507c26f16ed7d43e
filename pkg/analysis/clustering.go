package analysis

// ClusteringMetrics holds local and global clustering coefficients plus
// the triangle statistics they derive from.
type ClusteringMetrics struct {
	Local         map[string]float64 `json:"local"`
	Global        float64            `json:"global"`
	TriangleCount int                `json:"triangle_count"`
	Transitivity  float64            `json:"transitivity"`
}

// neighborLinks counts how many of a node's neighbor pairs are themselves
// connected. Every metric in this file derives from this single primitive
// so the triangle count and the coefficients cannot drift apart.
func neighborLinks(g *Graph, id string) int {
	neighbors := g.Neighbors(id)
	links := 0
	for i := 0; i < len(neighbors); i++ {
		for j := i + 1; j < len(neighbors); j++ {
			if _, connected := g.Adjacency[neighbors[i]][neighbors[j]]; connected {
				links++
			}
		}
	}
	return links
}

// ComputeClustering calculates per-node coefficients, their mean, the
// triangle count and transitivity. Neighbor pairs come from the
// deduplicated adjacency sets, so parallel edges never push a coefficient
// above 1. Nodes with fewer than two neighbors score 0 and are excluded
// from the global mean.
func ComputeClustering(g *Graph) ClusteringMetrics {
	metrics := ClusteringMetrics{
		Local: make(map[string]float64, len(g.Nodes)),
	}

	coefficientSum := 0.0
	eligible := 0
	linkSum := 0
	tripletCount := 0

	for _, id := range g.NodeIDs() {
		neighborCount := len(g.Adjacency[id])
		if neighborCount < 2 {
			metrics.Local[id] = 0
			continue
		}

		links := neighborLinks(g, id)
		possible := neighborCount * (neighborCount - 1) / 2

		metrics.Local[id] = float64(links) / float64(possible)
		coefficientSum += metrics.Local[id]
		eligible++
		linkSum += links
		tripletCount += possible
	}

	if eligible > 0 {
		metrics.Global = coefficientSum / float64(eligible)
	}

	// Every triangle is seen once per corner.
	metrics.TriangleCount = linkSum / 3

	if tripletCount > 0 {
		metrics.Transitivity = float64(3*metrics.TriangleCount) / float64(tripletCount)
	}

	return metrics
}
