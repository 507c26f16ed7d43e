package analysis

// BasicMetrics summarizes graph size, density, degree distribution and
// type tallies.
type BasicMetrics struct {
	NodeCount     int            `json:"node_count"`
	EdgeCount     int            `json:"edge_count"`
	Density       float64        `json:"density"`
	AverageDegree float64        `json:"average_degree"`
	MinDegree     int            `json:"min_degree"`
	MaxDegree     int            `json:"max_degree"`
	IsolatedNodes []string       `json:"isolated_nodes"`
	NodeTypes     map[string]int `json:"node_types"`
	EdgeTypes     map[string]int `json:"edge_types"`
}

// ComputeBasicMetrics derives the basic structural metrics in O(N + E).
// Every ratio guards against division by zero and evaluates to 0 instead
// of NaN or infinity.
func ComputeBasicMetrics(g *Graph) BasicMetrics {
	metrics := BasicMetrics{
		NodeCount:     len(g.Nodes),
		EdgeCount:     len(g.Edges),
		IsolatedNodes: make([]string, 0),
		NodeTypes:     make(map[string]int),
		EdgeTypes:     make(map[string]int),
	}

	if metrics.NodeCount > 1 {
		possiblePairs := float64(metrics.NodeCount) * float64(metrics.NodeCount-1) / 2
		metrics.Density = float64(metrics.EdgeCount) / possiblePairs
		// Parallel edges can push the raw ratio past 1; density stays a
		// [0,1] share of possible pairs.
		if metrics.Density > 1 {
			metrics.Density = 1
		}
	}

	totalDegree := 0
	first := true
	for _, id := range g.NodeIDs() {
		node := g.Nodes[id]
		totalDegree += node.Degree
		metrics.NodeTypes[node.Type]++

		if node.Degree == 0 {
			metrics.IsolatedNodes = append(metrics.IsolatedNodes, node.ID)
		}
		if first || node.Degree < metrics.MinDegree {
			metrics.MinDegree = node.Degree
		}
		if node.Degree > metrics.MaxDegree {
			metrics.MaxDegree = node.Degree
		}
		first = false
	}

	if metrics.NodeCount > 0 {
		metrics.AverageDegree = float64(totalDegree) / float64(metrics.NodeCount)
	}

	for _, edge := range g.Edges {
		metrics.EdgeTypes[edge.Type]++
	}

	return metrics
}
