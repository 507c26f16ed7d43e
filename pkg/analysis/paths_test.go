package analysis

import (
	"reflect"
	"testing"

	"github.com/arclight-labs/casefile/backend/pkg/common"
)

func TestAnalyzePathsChain(t *testing.T) {
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

	p := AnalyzePaths(g)

	if p.Diameter != 2 {
		t.Errorf("diameter = %d, want 2", p.Diameter)
	}
	if !p.IsConnected {
		t.Error("IsConnected = false, want true")
	}
	if p.ComponentCount != 1 {
		t.Errorf("component count = %d, want 1", p.ComponentCount)
	}
	// Finite pairs: a-b:1 b-c:1 a-c:2 in both directions, mean 4/3.
	if !almostEqual(p.AveragePathLength, 4.0/3.0) {
		t.Errorf("average path length = %v, want %v", p.AveragePathLength, 4.0/3.0)
	}
}

func TestAnalyzePathsDisjointPairs(t *testing.T) {
	g, err := BuildGraph(
		testEntities("a", "b", "c", "d"),
		[]common.RelationshipRecord{
			rel("r1", "a", "b", "medium"),
			rel("r2", "c", "d", "medium"),
		},
	)
	if err != nil {
		t.Fatalf("BuildGraph returned error: %v", err)
	}

	p := AnalyzePaths(g)

	if p.IsConnected {
		t.Error("IsConnected = true, want false")
	}
	if p.ComponentCount != 2 {
		t.Errorf("component count = %d, want 2", p.ComponentCount)
	}
	// Only finite pairs count toward the diameter.
	if p.Diameter != 1 {
		t.Errorf("diameter = %d, want 1", p.Diameter)
	}
	if !almostEqual(p.AveragePathLength, 1) {
		t.Errorf("average path length = %v, want 1", p.AveragePathLength)
	}

	want := [][]string{{"a", "b"}, {"c", "d"}}
	if !reflect.DeepEqual(p.Components, want) {
		t.Errorf("components = %v, want %v", p.Components, want)
	}
}

func TestFindComponentsOrderedBySize(t *testing.T) {
	g, err := BuildGraph(
		testEntities("a", "b", "c", "z"),
		[]common.RelationshipRecord{
			rel("r1", "a", "b", "medium"),
			rel("r2", "b", "c", "medium"),
		},
	)
	if err != nil {
		t.Fatalf("BuildGraph returned error: %v", err)
	}

	components := findComponents(g)
	want := [][]string{{"a", "b", "c"}, {"z"}}
	if !reflect.DeepEqual(components, want) {
		t.Errorf("components = %v, want %v", components, want)
	}
}

func TestBfsDistances(t *testing.T) {
	g, err := BuildGraph(
		testEntities("a", "b", "c", "d"),
		[]common.RelationshipRecord{
			rel("r1", "a", "b", "medium"),
			rel("r2", "b", "c", "medium"),
		},
	)
	if err != nil {
		t.Fatalf("BuildGraph returned error: %v", err)
	}

	got := bfsDistances(g, "a")
	want := map[string]int{"a": 0, "b": 1, "c": 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("distances from a = %v, want %v", got, want)
	}
}
