package analysis

// HealthFactors are the four independent 0-25 sub-scores of the
// composite health score.
type HealthFactors struct {
	Size         int `json:"size"`
	Density      int `json:"density"`
	Connectivity int `json:"connectivity"`
	Diversity    int `json:"diversity"`
}

// HealthScore is the composite 0-100 network health assessment.
type HealthScore struct {
	Score           int           `json:"score"`
	Grade           string        `json:"grade"`
	Factors         HealthFactors `json:"factors"`
	Recommendations []string      `json:"recommendations"`
}

// ScoreHealth derives the composite score from basic metrics and path
// analysis. Each factor is a step function over fixed thresholds; every
// factor below 25 contributes a targeted recommendation.
func ScoreHealth(metrics BasicMetrics, paths PathAnalysis) HealthScore {
	factors := HealthFactors{
		Size:         sizeFactor(metrics.NodeCount),
		Density:      densityFactor(metrics.Density),
		Connectivity: connectivityFactor(metrics.NodeCount, paths),
		Diversity:    diversityFactor(len(metrics.NodeTypes), len(metrics.EdgeTypes)),
	}

	score := factors.Size + factors.Density + factors.Connectivity + factors.Diversity

	recommendations := make([]string, 0)
	if factors.Size < 25 {
		recommendations = append(recommendations, "Add more entities to build out the network")
	}
	if factors.Density < 25 {
		recommendations = append(recommendations, "Add more relationships between existing entities")
	}
	if factors.Connectivity < 25 {
		recommendations = append(recommendations, "Connect isolated clusters to the main network")
	}
	if factors.Diversity < 25 {
		recommendations = append(recommendations, "Diversify entity and relationship types")
	}

	return HealthScore{
		Score:           score,
		Grade:           gradeFor(score),
		Factors:         factors,
		Recommendations: recommendations,
	}
}

func sizeFactor(nodes int) int {
	switch {
	case nodes >= 20:
		return 25
	case nodes >= 10:
		return 20
	case nodes >= 5:
		return 15
	case nodes >= 2:
		return 10
	default:
		return 0
	}
}

func densityFactor(density float64) int {
	switch {
	case density >= 0.30:
		return 25
	case density >= 0.20:
		return 20
	case density >= 0.10:
		return 15
	case density >= 0.05:
		return 10
	default:
		return 0
	}
}

func connectivityFactor(nodes int, paths PathAnalysis) int {
	switch {
	case paths.IsConnected:
		return 25
	case paths.ComponentCount <= 2:
		return 15
	case nodes > 0 && float64(paths.ComponentCount) <= 0.3*float64(nodes):
		return 10
	default:
		return 0
	}
}

func diversityFactor(nodeTypes, edgeTypes int) int {
	switch {
	case nodeTypes >= 5 && edgeTypes >= 3:
		return 25
	case nodeTypes >= 3 && edgeTypes >= 2:
		return 20
	case nodeTypes >= 2:
		return 15
	default:
		return 10
	}
}

func gradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B+"
	case score >= 60:
		return "B"
	case score >= 50:
		return "C+"
	case score >= 40:
		return "C"
	case score >= 30:
		return "D"
	default:
		return "F"
	}
}
