package analysis

import "github.com/arclight-labs/casefile/backend/pkg/common"

// Result is the complete analysis output for one folder. It is a pure
// value: fully JSON-serializable, no cycles, no references into mutable
// storage.
type Result struct {
	BasicMetrics    BasicMetrics        `json:"basic_metrics"`
	Centrality      CentralityMetrics   `json:"centrality"`
	Clustering      ClusteringMetrics   `json:"clustering"`
	Communities     CommunityResult     `json:"communities"`
	Paths           PathAnalysis        `json:"paths"`
	Health          HealthScore         `json:"health"`
	Recommendations []Recommendation    `json:"recommendations"`
	Visualization   VisualizationData   `json:"visualization"`
	Warnings        []ValidationWarning `json:"warnings"`
}

// Analyze is the engine's sole entry point. It builds the graph, runs
// every component in dependency order and assembles the result. Zero
// entities short-circuit to a fully populated zero-valued result; a
// relationship referencing a missing entity aborts with a
// ConstructionError before any metric is computed.
//
// The computation is synchronous and deterministic for identical input.
// Concurrent calls are safe because no state outlives an invocation.
func Analyze(entities []common.EntityRecord, relationships []common.RelationshipRecord) (*Result, error) {
	if len(entities) == 0 {
		return emptyResult(), nil
	}

	g, err := BuildGraph(entities, relationships)
	if err != nil {
		return nil, err
	}

	metrics := ComputeBasicMetrics(g)
	paths := AnalyzePaths(g)

	return &Result{
		BasicMetrics:    metrics,
		Centrality:      ComputeCentrality(g),
		Clustering:      ComputeClustering(g),
		Communities:     DetectCommunities(g),
		Paths:           paths,
		Health:          ScoreHealth(metrics, paths),
		Recommendations: Recommend(g, metrics, paths),
		Visualization:   NewVisualizationPreparer().Prepare(g, metrics),
		Warnings:        g.Validate(),
	}, nil
}

// emptyResult is the defined terminal state for zero entities: every
// collection present and empty, every ratio zero, grade F, and exactly
// one recommendation explaining the situation.
func emptyResult() *Result {
	return &Result{
		BasicMetrics: BasicMetrics{
			IsolatedNodes: make([]string, 0),
			NodeTypes:     make(map[string]int),
			EdgeTypes:     make(map[string]int),
		},
		Centrality: CentralityMetrics{
			Degree:          make(map[string]float64),
			Closeness:       make(map[string]float64),
			Betweenness:     make(map[string]float64),
			TopDegree:       make([]RankedNode, 0),
			TopCloseness:    make([]RankedNode, 0),
			TopBetweenness:  make([]RankedNode, 0),
			CombinedRanking: make([]RankedNode, 0),
		},
		Clustering: ClusteringMetrics{
			Local: make(map[string]float64),
		},
		Communities: CommunityResult{
			Communities: make([]Community, 0),
		},
		Paths: PathAnalysis{
			Components: make([][]string, 0),
		},
		Health: HealthScore{
			Grade:           "F",
			Recommendations: make([]string, 0),
		},
		Recommendations: []Recommendation{{
			Priority: PriorityHigh,
			Category: CategoryEmptyGraph,
			Message:  "the folder has no entities yet; add entities and relationships to analyze the network",
		}},
		Visualization: VisualizationData{
			Nodes:     make([]VisNode, 0),
			Links:     make([]VisLink, 0),
			NodeTypes: make([]string, 0),
			LinkTypes: make([]string, 0),
		},
		Warnings: make([]ValidationWarning, 0),
	}
}
