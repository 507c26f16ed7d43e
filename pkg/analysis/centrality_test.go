package analysis

import (
	"testing"

	"github.com/arclight-labs/casefile/backend/pkg/common"
)

func TestComputeCentralityChain(t *testing.T) {
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

	m := ComputeCentrality(g)

	// Degree: b has both edges.
	if !almostEqual(m.Degree["b"], 1) {
		t.Errorf("degree centrality b = %v, want 1", m.Degree["b"])
	}
	if !almostEqual(m.Degree["a"], 0.5) {
		t.Errorf("degree centrality a = %v, want 0.5", m.Degree["a"])
	}

	// Closeness: b reaches both others in 1 hop, a needs 1+2.
	if !almostEqual(m.Closeness["b"], 1) {
		t.Errorf("closeness b = %v, want 1", m.Closeness["b"])
	}
	if !almostEqual(m.Closeness["a"], 2.0/3.0) {
		t.Errorf("closeness a = %v, want %v", m.Closeness["a"], 2.0/3.0)
	}

	// Betweenness: only b lies between a and c. The a-c pair is seen from
	// both endpoints, so b accumulates 2 before normalization by
	// (n-1)(n-2) = 2.
	if !almostEqual(m.Betweenness["b"], 1) {
		t.Errorf("betweenness b = %v, want 1", m.Betweenness["b"])
	}
	if !almostEqual(m.Betweenness["a"], 0) {
		t.Errorf("betweenness a = %v, want 0", m.Betweenness["a"])
	}

	if len(m.CombinedRanking) != 3 || m.CombinedRanking[0].ID != "b" {
		t.Errorf("combined ranking = %v, want b first", m.CombinedRanking)
	}
}

func TestComputeCentralityIsolatedNode(t *testing.T) {
	g, err := BuildGraph(
		testEntities("a", "b", "c"),
		[]common.RelationshipRecord{rel("r1", "a", "b", "medium")},
	)
	if err != nil {
		t.Fatalf("BuildGraph returned error: %v", err)
	}

	m := ComputeCentrality(g)
	if m.Degree["c"] != 0 {
		t.Errorf("degree centrality of isolated node = %v, want 0", m.Degree["c"])
	}
	if m.Closeness["c"] != 0 {
		t.Errorf("closeness of isolated node = %v, want 0", m.Closeness["c"])
	}
	if m.Betweenness["c"] != 0 {
		t.Errorf("betweenness of isolated node = %v, want 0", m.Betweenness["c"])
	}
}

func TestComputeCentralitySingleNode(t *testing.T) {
	g, err := BuildGraph(testEntities("a"), nil)
	if err != nil {
		t.Fatalf("BuildGraph returned error: %v", err)
	}

	m := ComputeCentrality(g)
	if m.Degree["a"] != 0 || m.Closeness["a"] != 0 || m.Betweenness["a"] != 0 {
		t.Errorf("single-node centralities = (%v, %v, %v), want zeros", m.Degree["a"], m.Closeness["a"], m.Betweenness["a"])
	}
}

func TestComputeBetweennessStar(t *testing.T) {
	// Star with center x: x lies on every path between leaves.
	g, err := BuildGraph(
		testEntities("l1", "l2", "l3", "x"),
		[]common.RelationshipRecord{
			rel("r1", "x", "l1", "medium"),
			rel("r2", "x", "l2", "medium"),
			rel("r3", "x", "l3", "medium"),
		},
	)
	if err != nil {
		t.Fatalf("BuildGraph returned error: %v", err)
	}

	bc := computeBetweenness(g)
	// 3 leaf pairs, each counted from both endpoints: 6 / ((4-1)(4-2)) = 1.
	if !almostEqual(bc["x"], 1) {
		t.Errorf("betweenness of star center = %v, want 1", bc["x"])
	}
	for _, leaf := range []string{"l1", "l2", "l3"} {
		if !almostEqual(bc[leaf], 0) {
			t.Errorf("betweenness of leaf %s = %v, want 0", leaf, bc[leaf])
		}
	}
}

func TestTopRankedLimit(t *testing.T) {
	ids := make([]string, 0, 15)
	relationships := make([]common.RelationshipRecord, 0, 14)
	for i := 0; i < 15; i++ {
		ids = append(ids, string(rune('a'+i)))
	}
	for i := 1; i < 15; i++ {
		relationships = append(relationships, rel("r"+string(rune('a'+i)), "a", ids[i], "medium"))
	}

	g, err := BuildGraph(testEntities(ids...), relationships)
	if err != nil {
		t.Fatalf("BuildGraph returned error: %v", err)
	}

	m := ComputeCentrality(g)
	if len(m.TopDegree) != topCentralityCount {
		t.Errorf("top degree length = %d, want %d", len(m.TopDegree), topCentralityCount)
	}
	if m.TopDegree[0].ID != "a" {
		t.Errorf("top degree first = %s, want a", m.TopDegree[0].ID)
	}
}
