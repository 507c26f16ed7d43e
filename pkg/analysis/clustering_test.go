package analysis

import (
	"testing"

	"github.com/arclight-labs/casefile/backend/pkg/common"
)

func triangleGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := BuildGraph(
		testEntities("a", "b", "c"),
		[]common.RelationshipRecord{
			rel("r1", "a", "b", "medium"),
			rel("r2", "b", "c", "medium"),
			rel("r3", "a", "c", "medium"),
		},
	)
	if err != nil {
		t.Fatalf("BuildGraph returned error: %v", err)
	}
	return g
}

func TestComputeClusteringTriangle(t *testing.T) {
	m := ComputeClustering(triangleGraph(t))

	for _, id := range []string{"a", "b", "c"} {
		if !almostEqual(m.Local[id], 1) {
			t.Errorf("local coefficient %s = %v, want 1", id, m.Local[id])
		}
	}
	if !almostEqual(m.Global, 1) {
		t.Errorf("global clustering = %v, want 1", m.Global)
	}
	if m.TriangleCount != 1 {
		t.Errorf("triangle count = %d, want 1", m.TriangleCount)
	}
	if !almostEqual(m.Transitivity, 1) {
		t.Errorf("transitivity = %v, want 1", m.Transitivity)
	}
}

func TestComputeClusteringChain(t *testing.T) {
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

	m := ComputeClustering(g)

	// b has two neighbors that are not connected; a and c have fewer than
	// two neighbors and score 0 by definition.
	for _, id := range []string{"a", "b", "c"} {
		if m.Local[id] != 0 {
			t.Errorf("local coefficient %s = %v, want 0", id, m.Local[id])
		}
	}
	if m.Global != 0 {
		t.Errorf("global clustering = %v, want 0", m.Global)
	}
	if m.TriangleCount != 0 {
		t.Errorf("triangle count = %d, want 0", m.TriangleCount)
	}
	if m.Transitivity != 0 {
		t.Errorf("transitivity = %v, want 0", m.Transitivity)
	}
}

func TestComputeClusteringSelfLoop(t *testing.T) {
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

	m := ComputeClustering(g)

	// The loop must not count as a connected neighbor pair: a has one
	// real neighbor, so everything derived from the triangle primitive
	// stays zero.
	for _, id := range []string{"a", "b"} {
		if m.Local[id] != 0 {
			t.Errorf("local coefficient %s = %v, want 0", id, m.Local[id])
		}
	}
	if m.Global != 0 {
		t.Errorf("global clustering = %v, want 0", m.Global)
	}
	if m.TriangleCount != 0 {
		t.Errorf("triangle count = %d, want 0", m.TriangleCount)
	}
	if m.Transitivity != 0 {
		t.Errorf("transitivity = %v, want 0", m.Transitivity)
	}
}

func TestComputeClusteringCoefficientRange(t *testing.T) {
	// Triangle with a pendant: d hangs off a.
	g, err := BuildGraph(
		testEntities("a", "b", "c", "d"),
		[]common.RelationshipRecord{
			rel("r1", "a", "b", "medium"),
			rel("r2", "b", "c", "medium"),
			rel("r3", "a", "c", "medium"),
			rel("r4", "a", "d", "medium"),
		},
	)
	if err != nil {
		t.Fatalf("BuildGraph returned error: %v", err)
	}

	m := ComputeClustering(g)
	for id, coefficient := range m.Local {
		if coefficient < 0 || coefficient > 1 {
			t.Errorf("local coefficient %s = %v, out of [0,1]", id, coefficient)
		}
	}
	// a: neighbors {b,c,d}, one connected pair of three possible.
	if !almostEqual(m.Local["a"], 1.0/3.0) {
		t.Errorf("local coefficient a = %v, want %v", m.Local["a"], 1.0/3.0)
	}
	if m.Local["d"] != 0 {
		t.Errorf("pendant coefficient = %v, want 0", m.Local["d"])
	}
	if m.TriangleCount != 1 {
		t.Errorf("triangle count = %d, want 1", m.TriangleCount)
	}
}
