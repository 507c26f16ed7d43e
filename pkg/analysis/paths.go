package analysis

import "sort"

// PathAnalysis aggregates shortest-path and connectivity results.
// Diameter and AveragePathLength only consider finite (reachable) pairs.
type PathAnalysis struct {
	Diameter          int        `json:"diameter"`
	AveragePathLength float64    `json:"average_path_length"`
	IsConnected       bool       `json:"is_connected"`
	ComponentCount    int        `json:"component_count"`
	Components        [][]string `json:"components"`
}

// bfsDistances returns the unweighted hop distance from source to every
// reachable node. Relationship strength never affects path length.
func bfsDistances(g *Graph, source string) map[string]int {
	dist := map[string]int{source: 0}
	queue := []string{source}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for neighbor := range g.Adjacency[current] {
			if _, visited := dist[neighbor]; visited {
				continue
			}
			dist[neighbor] = dist[current] + 1
			queue = append(queue, neighbor)
		}
	}

	return dist
}

// AnalyzePaths runs a breadth-first traversal from every node. The
// repeated-BFS approach is O(N*(N+E)), which is fine for folders with
// hundreds to low thousands of entities; larger graphs should be bounded
// by the caller before analysis.
func AnalyzePaths(g *Graph) PathAnalysis {
	result := PathAnalysis{
		Components: findComponents(g),
	}
	result.ComponentCount = len(result.Components)
	result.IsConnected = result.ComponentCount == 1

	totalLength := 0
	finitePairs := 0
	for _, source := range g.NodeIDs() {
		for target, d := range bfsDistances(g, source) {
			if target == source {
				continue
			}
			totalLength += d
			finitePairs++
			if d > result.Diameter {
				result.Diameter = d
			}
		}
	}

	if finitePairs > 0 {
		result.AveragePathLength = float64(totalLength) / float64(finitePairs)
	}

	return result
}

// findComponents partitions the node set via iterative depth-first
// traversal. Components are ordered descending by size, then by their
// smallest member id; node ids inside a component are ascending.
func findComponents(g *Graph) [][]string {
	visited := make(map[string]struct{}, len(g.Nodes))
	components := make([][]string, 0)

	for _, start := range g.NodeIDs() {
		if _, ok := visited[start]; ok {
			continue
		}

		component := make([]string, 0)
		stack := []string{start}
		visited[start] = struct{}{}

		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, current)

			for neighbor := range g.Adjacency[current] {
				if _, ok := visited[neighbor]; ok {
					continue
				}
				visited[neighbor] = struct{}{}
				stack = append(stack, neighbor)
			}
		}

		sort.Strings(component)
		components = append(components, component)
	}

	sort.Slice(components, func(i, j int) bool {
		if len(components[i]) != len(components[j]) {
			return len(components[i]) > len(components[j])
		}
		return components[i][0] < components[j][0]
	})

	return components
}
