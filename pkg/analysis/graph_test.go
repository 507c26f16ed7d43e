package analysis

import (
	"errors"
	"testing"

	"github.com/arclight-labs/casefile/backend/pkg/common"
)

func testEntities(ids ...string) []common.EntityRecord {
	entities := make([]common.EntityRecord, 0, len(ids))
	for _, id := range ids {
		entities = append(entities, common.EntityRecord{ID: id, Name: "Entity " + id, Type: "person"})
	}
	return entities
}

func rel(id, from, to, strength string) common.RelationshipRecord {
	return common.RelationshipRecord{ID: id, FromEntity: from, ToEntity: to, Type: "knows", Strength: strength}
}

func TestBuildGraphDegrees(t *testing.T) {
	g, err := BuildGraph(
		testEntities("a", "b", "c"),
		[]common.RelationshipRecord{
			rel("r1", "a", "b", "medium"),
			rel("r2", "b", "c", "medium"),
		},
	)
	if err != nil {
		t.Fatalf("BuildGraph returned error: %v", err)
	}

	wantDegrees := map[string]int{"a": 1, "b": 2, "c": 1}
	for id, want := range wantDegrees {
		if got := g.Nodes[id].Degree; got != want {
			t.Errorf("degree of %s = %d, want %d", id, got, want)
		}
	}

	// Handshake lemma: sum of degrees is twice the edge count.
	sum := 0
	for _, node := range g.Nodes {
		sum += node.Degree
		if node.Degree != node.InDegree+node.OutDegree {
			t.Errorf("node %s: degree %d != in %d + out %d", node.ID, node.Degree, node.InDegree, node.OutDegree)
		}
	}
	if sum != 2*len(g.Edges) {
		t.Errorf("degree sum = %d, want %d", sum, 2*len(g.Edges))
	}
}

func TestBuildGraphSelfLoopAdjacency(t *testing.T) {
	g, err := BuildGraph(
		testEntities("a", "b"),
		[]common.RelationshipRecord{
			rel("r1", "a", "a", "medium"),
			rel("r2", "a", "b", "medium"),
		},
	)
	if err != nil {
		t.Fatalf("BuildGraph returned error: %v", err)
	}

	// The loop contributes to degree but a node is never its own neighbor.
	if got := g.Neighbors("a"); len(got) != 1 || got[0] != "b" {
		t.Errorf("neighbors of a = %v, want [b]", got)
	}
	if got := g.Nodes["a"].Degree; got != 3 {
		t.Errorf("degree of a = %d, want 3", got)
	}
}

func TestBuildGraphStrengthWeights(t *testing.T) {
	tests := []struct {
		name     string
		strength string
		want     float64
	}{
		{name: "weak", strength: "weak", want: 1},
		{name: "medium", strength: "medium", want: 2},
		{name: "strong", strength: "strong", want: 3},
		{name: "empty defaults to medium", strength: "", want: 2},
		{name: "unknown defaults to medium", strength: "extreme", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := BuildGraph(testEntities("a", "b"), []common.RelationshipRecord{rel("r1", "a", "b", tt.strength)})
			if err != nil {
				t.Fatalf("BuildGraph returned error: %v", err)
			}
			if got := g.Edges[0].Weight; got != tt.want {
				t.Errorf("weight = %v, want %v", got, tt.want)
			}
			if got := g.Nodes["a"].Strength; got != tt.want {
				t.Errorf("node strength = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildGraphMissingEndpoint(t *testing.T) {
	tests := []struct {
		name        string
		rel         common.RelationshipRecord
		wantMissing string
	}{
		{name: "missing source", rel: rel("r9", "ghost", "a", "weak"), wantMissing: "ghost"},
		{name: "missing target", rel: rel("r9", "a", "ghost", "weak"), wantMissing: "ghost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildGraph(testEntities("a"), []common.RelationshipRecord{tt.rel})
			var cerr *ConstructionError
			if !errors.As(err, &cerr) {
				t.Fatalf("BuildGraph error = %v, want ConstructionError", err)
			}
			if cerr.RelationshipID != "r9" {
				t.Errorf("RelationshipID = %q, want %q", cerr.RelationshipID, "r9")
			}
			if cerr.MissingEntity != tt.wantMissing {
				t.Errorf("MissingEntity = %q, want %q", cerr.MissingEntity, tt.wantMissing)
			}
		})
	}
}

func TestBuildGraphParallelEdges(t *testing.T) {
	g, err := BuildGraph(
		testEntities("a", "b"),
		[]common.RelationshipRecord{
			{ID: "r1", FromEntity: "a", ToEntity: "b", Type: "knows"},
			{ID: "r2", FromEntity: "a", ToEntity: "b", Type: "works_for"},
		},
	)
	if err != nil {
		t.Fatalf("BuildGraph returned error: %v", err)
	}

	// Degree counts edges, adjacency deduplicates by neighbor.
	if got := g.Nodes["a"].Degree; got != 2 {
		t.Errorf("degree = %d, want 2", got)
	}
	if got := len(g.Adjacency["a"]); got != 1 {
		t.Errorf("adjacency size = %d, want 1", got)
	}
}

func TestValidateWarnings(t *testing.T) {
	g, err := BuildGraph(
		testEntities("a", "b"),
		[]common.RelationshipRecord{
			rel("r1", "a", "b", "weak"),
			rel("r2", "b", "a", "weak"),
			rel("r3", "a", "a", "weak"),
		},
	)
	if err != nil {
		t.Fatalf("BuildGraph returned error: %v", err)
	}

	warnings := g.Validate()
	counts := map[string]int{}
	for _, w := range warnings {
		counts[w.Code]++
	}

	// r2 duplicates the unordered a-b "knows" pair, r3 is a self loop.
	if counts[WarningDuplicateEdge] != 1 {
		t.Errorf("duplicate warnings = %d, want 1", counts[WarningDuplicateEdge])
	}
	if counts[WarningSelfReference] != 1 {
		t.Errorf("self reference warnings = %d, want 1", counts[WarningSelfReference])
	}
}
