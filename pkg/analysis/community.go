package analysis

// Community is one group in the detected partition.
type Community struct {
	ID    int      `json:"id"`
	Nodes []string `json:"nodes"`
	Size  int      `json:"size"`
}

// CommunityResult contains the full partition and its modularity. The
// partition is total and disjoint: every node belongs to exactly one
// community.
type CommunityResult struct {
	Communities []Community `json:"communities"`
	Count       int         `json:"count"`
	Modularity  float64     `json:"modularity"`
}

// DetectCommunities partitions the graph with greedy neighbor clustering:
// nodes are visited in id order, each unassigned node opens a new
// community and immediately absorbs its still-unassigned neighbors. This
// is a cheap O(N+E) heuristic, not Louvain; there is no refinement pass.
func DetectCommunities(g *Graph) CommunityResult {
	assigned := make(map[string]int, len(g.Nodes))
	communities := make([]Community, 0)

	for _, id := range g.NodeIDs() {
		if _, ok := assigned[id]; ok {
			continue
		}

		community := Community{ID: len(communities), Nodes: []string{id}}
		assigned[id] = community.ID

		for _, neighbor := range g.Neighbors(id) {
			if _, ok := assigned[neighbor]; ok {
				continue
			}
			assigned[neighbor] = community.ID
			community.Nodes = append(community.Nodes, neighbor)
		}

		community.Size = len(community.Nodes)
		communities = append(communities, community)
	}

	return CommunityResult{
		Communities: communities,
		Count:       len(communities),
		Modularity:  modularity(g, assigned),
	}
}

// modularity evaluates the standard formula
// Q = sum_c [ L_c/m - (D_c / 2m)^2 ] over the given partition, where L_c
// is the number of edges internal to community c and D_c its total
// degree. An edgeless graph scores 0.
func modularity(g *Graph, assigned map[string]int) float64 {
	m := float64(len(g.Edges))
	if m == 0 {
		return 0
	}

	internal := make(map[int]int)
	for _, edge := range g.Edges {
		if assigned[edge.Source] == assigned[edge.Target] {
			internal[assigned[edge.Source]]++
		}
	}

	degreeTotal := make(map[int]int)
	for id, node := range g.Nodes {
		degreeTotal[assigned[id]] += node.Degree
	}

	q := 0.0
	for community, degree := range degreeTotal {
		q += float64(internal[community])/m - float64(degree)*float64(degree)/(4*m*m)
	}
	return q
}
