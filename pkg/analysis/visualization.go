package analysis

import "sort"

// VisNode is a render-ready node. It carries plain values only, no
// references back into the adjacency structure, so the payload stays
// cycle-free and serializable.
type VisNode struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Degree int      `json:"degree"`
	Size   float64  `json:"size"`
	Color  string   `json:"color"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
}

// VisLink is a render-ready edge.
type VisLink struct {
	ID       string  `json:"id"`
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Type     string  `json:"type"`
	Strength string  `json:"strength"`
	Width    float64 `json:"width"`
	Color    string  `json:"color"`
}

// VisualizationData is the unfiltered payload handed to rendering code.
// Layout is the renderer's job; the engine only sizes and colors.
type VisualizationData struct {
	Nodes     []VisNode `json:"nodes"`
	Links     []VisLink `json:"links"`
	NodeTypes []string  `json:"node_types"`
	LinkTypes []string  `json:"link_types"`
}

// VisualizationPreparer maps the graph model into VisualizationData.
// The color palettes are owned by the preparer instead of living in
// package-level mutable state, so concurrent analyses cannot interfere.
type VisualizationPreparer struct {
	nodeColors    map[string]string
	linkColors    map[string]string
	fallbackColor string
	minNodeSize   float64
	maxNodeSize   float64
}

// NewVisualizationPreparer returns a preparer with the default palette.
func NewVisualizationPreparer() *VisualizationPreparer {
	return &VisualizationPreparer{
		nodeColors: map[string]string{
			"person":       "#4e79a7",
			"organization": "#f28e2b",
			"location":     "#59a14f",
			"event":        "#e15759",
			"vehicle":      "#76b7b2",
			"account":      "#edc948",
			"phone":        "#b07aa1",
			"document":     "#9c755f",
		},
		linkColors: map[string]string{
			"knows":        "#86bcb6",
			"owns":         "#f1ce63",
			"works_for":    "#ff9d9a",
			"located_at":   "#8cd17d",
			"communicates": "#a0cbe8",
			"transfers_to": "#d4a6c8",
		},
		fallbackColor: "#bab0ac",
		minNodeSize:   8,
		maxNodeSize:   30,
	}
}

// Prepare builds the full payload. Node size scales linearly with degree
// relative to the graph's maximum degree; a degree-0 graph renders every
// node at the minimum size.
func (p *VisualizationPreparer) Prepare(g *Graph, metrics BasicMetrics) VisualizationData {
	data := VisualizationData{
		Nodes:     make([]VisNode, 0, len(g.Nodes)),
		Links:     make([]VisLink, 0, len(g.Edges)),
		NodeTypes: make([]string, 0),
		LinkTypes: make([]string, 0),
	}

	for _, id := range g.NodeIDs() {
		node := g.Nodes[id]
		data.Nodes = append(data.Nodes, VisNode{
			ID:     node.ID,
			Name:   node.Name,
			Type:   node.Type,
			Degree: node.Degree,
			Size:   p.nodeSize(node.Degree, metrics.MaxDegree),
			Color:  p.colorFor(p.nodeColors, node.Type),
			X:      node.X,
			Y:      node.Y,
		})
	}

	for _, edge := range g.Edges {
		data.Links = append(data.Links, VisLink{
			ID:       edge.ID,
			Source:   edge.Source,
			Target:   edge.Target,
			Type:     edge.Type,
			Strength: edge.Strength,
			Width:    edge.Weight,
			Color:    p.colorFor(p.linkColors, edge.Type),
		})
	}

	for _, id := range sortedKeys(metrics.NodeTypes) {
		data.NodeTypes = append(data.NodeTypes, id)
	}
	for _, id := range sortedKeys(metrics.EdgeTypes) {
		data.LinkTypes = append(data.LinkTypes, id)
	}

	return data
}

func (p *VisualizationPreparer) nodeSize(degree, maxDegree int) float64 {
	if maxDegree == 0 {
		return p.minNodeSize
	}
	ratio := float64(degree) / float64(maxDegree)
	return p.minNodeSize + (p.maxNodeSize-p.minNodeSize)*ratio
}

func (p *VisualizationPreparer) colorFor(palette map[string]string, kind string) string {
	if color, ok := palette[kind]; ok {
		return color
	}
	return p.fallbackColor
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
