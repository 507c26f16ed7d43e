package analysis

import "fmt"

// Validation warning codes.
const (
	WarningSelfReference = "self_reference"
	WarningDuplicateEdge = "duplicate_edge"
)

// ValidationWarning flags a structural oddity that does not block
// analysis: self-referencing edges and duplicate edges of the same type
// between the same pair.
type ValidationWarning struct {
	Code    string `json:"code"`
	EdgeID  string `json:"edge_id"`
	Message string `json:"message"`
}

// Validate inspects the edge list for self-references and duplicates.
// Warnings are reported in edge-list order.
func (g *Graph) Validate() []ValidationWarning {
	warnings := make([]ValidationWarning, 0)
	seen := make(map[string]string, len(g.Edges))

	for _, edge := range g.Edges {
		if edge.Source == edge.Target {
			warnings = append(warnings, ValidationWarning{
				Code:    WarningSelfReference,
				EdgeID:  edge.ID,
				Message: fmt.Sprintf("edge %q connects entity %q to itself", edge.ID, edge.Source),
			})
		}

		key := pairKey(edge.Source, edge.Target) + "|" + edge.Type
		if firstID, ok := seen[key]; ok {
			warnings = append(warnings, ValidationWarning{
				Code:    WarningDuplicateEdge,
				EdgeID:  edge.ID,
				Message: fmt.Sprintf("edge %q duplicates %q relationship %q", edge.ID, edge.Type, firstID),
			})
			continue
		}
		seen[key] = edge.ID
	}

	return warnings
}

// pairKey builds an order-independent key for an unordered node pair.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}
