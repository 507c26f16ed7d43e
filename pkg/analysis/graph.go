package analysis

import (
	"fmt"
	"sort"

	"github.com/arclight-labs/casefile/backend/pkg/common"
)

// Node is one entity inside the analysis graph. Degree counts incident
// edges (parallel edges included), while the adjacency set in Graph is
// deduplicated by neighbor id, so the two may legitimately differ.
type Node struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Attributes map[string]any `json:"attributes,omitempty"`
	Degree     int            `json:"degree"`
	InDegree   int            `json:"in_degree"`
	OutDegree  int            `json:"out_degree"`
	Strength   float64        `json:"strength"`
	X          *float64       `json:"x,omitempty"`
	Y          *float64       `json:"y,omitempty"`
}

// Edge is one relationship inside the analysis graph. Edges are stored
// directed but every traversal treats them as undirected.
type Edge struct {
	ID          string  `json:"id"`
	Source      string  `json:"source"`
	Target      string  `json:"target"`
	Type        string  `json:"type"`
	Strength    string  `json:"strength"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description,omitempty"`
}

// Graph is the in-memory model every analysis component works on. It is
// built fresh per analysis run and never shared across invocations.
type Graph struct {
	Nodes     map[string]*Node
	Edges     []Edge
	Adjacency map[string]map[string]struct{}
}

// ConstructionError reports a relationship whose endpoint does not exist
// in the entity set. Building aborts on the first occurrence because a
// dangling edge would corrupt every derived metric.
type ConstructionError struct {
	RelationshipID string
	MissingEntity  string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("relationship %q references unknown entity %q", e.RelationshipID, e.MissingEntity)
}

// strengthWeight maps the strength tier to its numeric edge weight.
// Unknown or empty tiers count as medium.
func strengthWeight(strength string) float64 {
	switch strength {
	case common.StrengthWeak:
		return 1
	case common.StrengthStrong:
		return 3
	default:
		return 2
	}
}

func normalizeStrength(strength string) string {
	switch strength {
	case common.StrengthWeak, common.StrengthStrong:
		return strength
	default:
		return common.StrengthMedium
	}
}

// BuildGraph turns raw entity and relationship records into a Graph.
// Every relationship updates both endpoints' adjacency sets and degree
// counters. Runs in O(N + E).
func BuildGraph(entities []common.EntityRecord, relationships []common.RelationshipRecord) (*Graph, error) {
	g := &Graph{
		Nodes:     make(map[string]*Node, len(entities)),
		Edges:     make([]Edge, 0, len(relationships)),
		Adjacency: make(map[string]map[string]struct{}, len(entities)),
	}

	for _, ent := range entities {
		g.Nodes[ent.ID] = &Node{
			ID:         ent.ID,
			Name:       ent.Name,
			Type:       ent.Type,
			Attributes: ent.Attributes,
			X:          ent.X,
			Y:          ent.Y,
		}
		g.Adjacency[ent.ID] = make(map[string]struct{})
	}

	for _, rel := range relationships {
		source, ok := g.Nodes[rel.FromEntity]
		if !ok {
			return nil, &ConstructionError{RelationshipID: rel.ID, MissingEntity: rel.FromEntity}
		}
		target, ok := g.Nodes[rel.ToEntity]
		if !ok {
			return nil, &ConstructionError{RelationshipID: rel.ID, MissingEntity: rel.ToEntity}
		}

		strength := normalizeStrength(rel.Strength)
		weight := strengthWeight(strength)

		g.Edges = append(g.Edges, Edge{
			ID:          rel.ID,
			Source:      rel.FromEntity,
			Target:      rel.ToEntity,
			Type:        rel.Type,
			Strength:    strength,
			Weight:      weight,
			Description: rel.Description,
		})

		source.Degree++
		source.OutDegree++
		source.Strength += weight
		target.Degree++
		target.InDegree++
		target.Strength += weight

		// Self-loops count toward degree but never make a node its own
		// neighbor; adjacency-derived metrics would otherwise treat the
		// loop as a connected neighbor pair.
		if rel.FromEntity != rel.ToEntity {
			g.Adjacency[rel.FromEntity][rel.ToEntity] = struct{}{}
			g.Adjacency[rel.ToEntity][rel.FromEntity] = struct{}{}
		}
	}

	return g, nil
}

// NodeIDs returns all node ids in ascending order. Components iterate in
// this order so results are deterministic across runs.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Neighbors returns the deduplicated neighbor ids of a node in ascending
// order.
func (g *Graph) Neighbors(id string) []string {
	adj := g.Adjacency[id]
	out := make([]string, 0, len(adj))
	for n := range adj {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
