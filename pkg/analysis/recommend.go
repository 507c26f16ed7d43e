package analysis

import "fmt"

// Recommendation priorities, strongest first.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityInfo   = "info"
)

// Recommendation categories.
const (
	CategoryEmptyGraph    = "empty_graph"
	CategoryIsolatedNodes = "isolated_nodes"
	CategoryLowDensity    = "low_density"
	CategoryDisconnected  = "disconnected_components"
	CategoryHubs          = "hub_nodes"
)

// Recommendation is an advisory structural suggestion. It references the
// triggering nodes but never mutates the graph.
type Recommendation struct {
	Priority string   `json:"priority"`
	Category string   `json:"category"`
	Message  string   `json:"message"`
	Nodes    []string `json:"nodes,omitempty"`
}

// Recommend produces prioritized suggestions from the computed metrics.
// These are independent of the health scorer's per-factor hints.
func Recommend(g *Graph, metrics BasicMetrics, paths PathAnalysis) []Recommendation {
	recommendations := make([]Recommendation, 0)

	if len(metrics.IsolatedNodes) > 0 {
		recommendations = append(recommendations, Recommendation{
			Priority: PriorityHigh,
			Category: CategoryIsolatedNodes,
			Message:  fmt.Sprintf("%d entities have no relationships; connect them or archive them", len(metrics.IsolatedNodes)),
			Nodes:    metrics.IsolatedNodes,
		})
	}

	if metrics.Density < 0.10 && metrics.NodeCount > 5 {
		recommendations = append(recommendations, Recommendation{
			Priority: PriorityMedium,
			Category: CategoryLowDensity,
			Message:  fmt.Sprintf("network density is %.3f; look for undocumented relationships between entities", metrics.Density),
		})
	}

	if paths.ComponentCount > 1 {
		recommendations = append(recommendations, Recommendation{
			Priority: PriorityMedium,
			Category: CategoryDisconnected,
			Message:  fmt.Sprintf("the network splits into %d disconnected groups; verify whether links between them exist", paths.ComponentCount),
		})
	}

	hubs := make([]string, 0)
	threshold := 0.2 * float64(metrics.NodeCount)
	for _, id := range g.NodeIDs() {
		if float64(g.Nodes[id].Degree) > threshold {
			hubs = append(hubs, id)
		}
	}
	if len(hubs) > 0 {
		recommendations = append(recommendations, Recommendation{
			Priority: PriorityInfo,
			Category: CategoryHubs,
			Message:  fmt.Sprintf("%d entities are highly connected hubs; they may be central to the investigation", len(hubs)),
			Nodes:    hubs,
		})
	}

	return recommendations
}
