package analysis

import (
	"math"
	"reflect"
	"testing"

	"github.com/arclight-labs/casefile/backend/pkg/common"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeBasicMetricsChain(t *testing.T) {
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

	m := ComputeBasicMetrics(g)

	if m.NodeCount != 3 || m.EdgeCount != 2 {
		t.Errorf("counts = (%d, %d), want (3, 2)", m.NodeCount, m.EdgeCount)
	}
	if !almostEqual(m.Density, 2.0/3.0) {
		t.Errorf("density = %v, want %v", m.Density, 2.0/3.0)
	}
	if m.MinDegree != 1 || m.MaxDegree != 2 {
		t.Errorf("degree range = (%d, %d), want (1, 2)", m.MinDegree, m.MaxDegree)
	}
	if !almostEqual(m.AverageDegree, 4.0/3.0) {
		t.Errorf("average degree = %v, want %v", m.AverageDegree, 4.0/3.0)
	}
	if len(m.IsolatedNodes) != 0 {
		t.Errorf("isolated nodes = %v, want none", m.IsolatedNodes)
	}
	if !reflect.DeepEqual(m.NodeTypes, map[string]int{"person": 3}) {
		t.Errorf("node types = %v", m.NodeTypes)
	}
	if !reflect.DeepEqual(m.EdgeTypes, map[string]int{"knows": 2}) {
		t.Errorf("edge types = %v", m.EdgeTypes)
	}
}

func TestComputeBasicMetricsDensityGuards(t *testing.T) {
	tests := []struct {
		name     string
		entities []common.EntityRecord
	}{
		{name: "no nodes", entities: nil},
		{name: "single node", entities: testEntities("a")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := BuildGraph(tt.entities, nil)
			if err != nil {
				t.Fatalf("BuildGraph returned error: %v", err)
			}
			m := ComputeBasicMetrics(g)
			if m.Density != 0 {
				t.Errorf("density = %v, want 0", m.Density)
			}
			if m.AverageDegree != 0 && len(tt.entities) == 0 {
				t.Errorf("average degree = %v, want 0", m.AverageDegree)
			}
		})
	}
}

func TestComputeBasicMetricsDensityParallelEdges(t *testing.T) {
	g, err := BuildGraph(
		testEntities("a", "b"),
		[]common.RelationshipRecord{
			rel("r1", "a", "b", "medium"),
			rel("r2", "a", "b", "medium"),
			rel("r3", "a", "b", "medium"),
		},
	)
	if err != nil {
		t.Fatalf("BuildGraph returned error: %v", err)
	}

	m := ComputeBasicMetrics(g)
	if m.EdgeCount != 3 {
		t.Errorf("edge count = %d, want 3", m.EdgeCount)
	}
	if !almostEqual(m.Density, 1) {
		t.Errorf("density = %v, want 1", m.Density)
	}
}

func TestComputeBasicMetricsIsolatedNodes(t *testing.T) {
	g, err := BuildGraph(
		testEntities("a", "b", "c", "d"),
		[]common.RelationshipRecord{rel("r1", "a", "b", "medium")},
	)
	if err != nil {
		t.Fatalf("BuildGraph returned error: %v", err)
	}

	m := ComputeBasicMetrics(g)
	if !reflect.DeepEqual(m.IsolatedNodes, []string{"c", "d"}) {
		t.Errorf("isolated nodes = %v, want [c d]", m.IsolatedNodes)
	}
	if m.MinDegree != 0 {
		t.Errorf("min degree = %d, want 0", m.MinDegree)
	}
}
