package analysis

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/arclight-labs/casefile/backend/pkg/common"
)

func TestAnalyzeEmptyInput(t *testing.T) {
	result, err := Analyze(nil, nil)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if result.BasicMetrics.NodeCount != 0 || result.BasicMetrics.EdgeCount != 0 {
		t.Errorf("counts = (%d, %d), want zeros", result.BasicMetrics.NodeCount, result.BasicMetrics.EdgeCount)
	}
	if result.BasicMetrics.Density != 0 {
		t.Errorf("density = %v, want 0", result.BasicMetrics.Density)
	}
	if result.Paths.IsConnected {
		t.Error("IsConnected = true, want false")
	}
	if result.Health.Score != 0 || result.Health.Grade != "F" {
		t.Errorf("health = (%d, %s), want (0, F)", result.Health.Score, result.Health.Grade)
	}
	if len(result.Recommendations) != 1 || result.Recommendations[0].Category != CategoryEmptyGraph {
		t.Errorf("recommendations = %v, want exactly one empty-graph entry", result.Recommendations)
	}

	// The zero-valued result must serialize with every field present.
	raw, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	for _, key := range []string{"basic_metrics", "centrality", "clustering", "communities", "paths", "health", "recommendations", "visualization", "warnings"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("serialized result missing %q", key)
		}
	}
}

func TestAnalyzeChainScenario(t *testing.T) {
	result, err := Analyze(
		testEntities("a", "b", "c"),
		[]common.RelationshipRecord{
			rel("r1", "a", "b", "medium"),
			rel("r2", "b", "c", "medium"),
		},
	)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if !almostEqual(result.BasicMetrics.Density, 2.0/3.0) {
		t.Errorf("density = %v, want %v", result.BasicMetrics.Density, 2.0/3.0)
	}
	if result.Paths.Diameter != 2 {
		t.Errorf("diameter = %d, want 2", result.Paths.Diameter)
	}
	if !result.Paths.IsConnected {
		t.Error("IsConnected = false, want true")
	}
	if result.Clustering.Local["b"] != 0 {
		t.Errorf("local clustering b = %v, want 0", result.Clustering.Local["b"])
	}
	if result.Health.Score <= 0 || result.Health.Score > 100 {
		t.Errorf("health score = %d, out of range", result.Health.Score)
	}
}

func TestAnalyzeConstructionErrorAborts(t *testing.T) {
	_, err := Analyze(
		testEntities("a"),
		[]common.RelationshipRecord{rel("r1", "a", "ghost", "weak")},
	)

	var cerr *ConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("Analyze error = %v, want ConstructionError", err)
	}
}

func TestAnalyzeVisualizationRoundTrip(t *testing.T) {
	result, err := Analyze(
		testEntities("a", "b", "c", "d"),
		[]common.RelationshipRecord{
			rel("r1", "a", "b", "strong"),
			rel("r2", "b", "c", "weak"),
		},
	)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if len(result.Visualization.Nodes) != result.BasicMetrics.NodeCount {
		t.Errorf("visualization nodes = %d, want %d", len(result.Visualization.Nodes), result.BasicMetrics.NodeCount)
	}
	if len(result.Visualization.Links) != result.BasicMetrics.EdgeCount {
		t.Errorf("visualization links = %d, want %d", len(result.Visualization.Links), result.BasicMetrics.EdgeCount)
	}
}

func TestAnalyzeRecommendations(t *testing.T) {
	// Six nodes, one sparse edge: isolated nodes, low density and
	// disconnected components should all be flagged.
	result, err := Analyze(
		testEntities("a", "b", "c", "d", "e", "f"),
		[]common.RelationshipRecord{rel("r1", "a", "b", "medium")},
	)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	categories := make(map[string]Recommendation)
	for _, r := range result.Recommendations {
		categories[r.Category] = r
	}

	isolated, ok := categories[CategoryIsolatedNodes]
	if !ok || isolated.Priority != PriorityHigh {
		t.Errorf("isolated-nodes recommendation = %+v, want high priority", isolated)
	}
	if len(isolated.Nodes) != 4 {
		t.Errorf("isolated nodes referenced = %d, want 4", len(isolated.Nodes))
	}
	if low, ok := categories[CategoryLowDensity]; !ok || low.Priority != PriorityMedium {
		t.Errorf("low-density recommendation = %+v, want medium priority", low)
	}
	if disc, ok := categories[CategoryDisconnected]; !ok || disc.Priority != PriorityMedium {
		t.Errorf("disconnected recommendation = %+v, want medium priority", disc)
	}
}

func TestVisualizationSizingAndColors(t *testing.T) {
	g, err := BuildGraph(testEntities("a", "b"), nil)
	if err != nil {
		t.Fatalf("BuildGraph returned error: %v", err)
	}

	p := NewVisualizationPreparer()
	data := p.Prepare(g, ComputeBasicMetrics(g))

	// No edges: every node renders at the minimum size.
	for _, node := range data.Nodes {
		if node.Size != p.minNodeSize {
			t.Errorf("node size = %v, want %v", node.Size, p.minNodeSize)
		}
		if node.Color != p.nodeColors["person"] {
			t.Errorf("node color = %s, want %s", node.Color, p.nodeColors["person"])
		}
	}
}

func TestVisualizationUnknownTypeFallback(t *testing.T) {
	entities := []common.EntityRecord{{ID: "a", Name: "A", Type: "satellite"}}
	g, err := BuildGraph(entities, nil)
	if err != nil {
		t.Fatalf("BuildGraph returned error: %v", err)
	}

	p := NewVisualizationPreparer()
	data := p.Prepare(g, ComputeBasicMetrics(g))
	if data.Nodes[0].Color != p.fallbackColor {
		t.Errorf("color = %s, want fallback %s", data.Nodes[0].Color, p.fallbackColor)
	}
}
