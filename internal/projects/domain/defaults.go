package domain

import "encoding/json"

// DefaultFlowchart is attached to created projects that carry no flowchart.
func DefaultFlowchart() json.RawMessage {
	return mustMarshal(Flowchart{
		Nodes: []Node{
			{ID: "1", Data: NodeData{Label: "Início"}, Position: Position{X: 250, Y: 5}},
		},
		Edges: []Edge{},
	})
}

// DefaultDocument is served while no document exists in storage. A fresh copy is
// returned on every call.
func DefaultDocument() *Document {
	alpha := Flowchart{
		Nodes: []Node{
			{ID: "1", Data: NodeData{Label: "Início"}, Position: Position{X: 250, Y: 5}},
			{ID: "2", Data: NodeData{Label: "Tarefa A"}, Position: Position{X: 100, Y: 100}},
			{ID: "3", Data: NodeData{Label: "Tarefa B"}, Position: Position{X: 400, Y: 100}},
			{ID: "4", Data: NodeData{Label: "Fim"}, Position: Position{X: 250, Y: 200}},
		},
		Edges: []Edge{
			{ID: "e1-2", Source: "1", Target: "2"},
			{ID: "e1-3", Source: "1", Target: "3"},
			{ID: "e2-4", Source: "2", Target: "4"},
			{ID: "e3-4", Source: "3", Target: "4"},
		},
	}
	beta := Flowchart{
		Nodes: []Node{
			{ID: "1", Data: NodeData{Label: "Fase 1"}, Position: Position{X: 250, Y: 5}},
			{ID: "2", Data: NodeData{Label: "Fase 2"}, Position: Position{X: 250, Y: 100}},
			{ID: "3", Data: NodeData{Label: "Fase 3"}, Position: Position{X: 250, Y: 200}},
		},
		Edges: []Edge{
			{ID: "e1-2", Source: "1", Target: "2"},
			{ID: "e2-3", Source: "2", Target: "3"},
		},
	}

	return &Document{
		Projects: []Project{
			newProject("proj1", "Projeto Alpha",
				"Descrição do Projeto Alpha - Um projeto de exemplo para demonstração.", alpha),
			newProject("proj2", "Projeto Beta",
				"Descrição do Projeto Beta - Outro projeto de exemplo.", beta),
		},
	}
}

func newProject(id, name, description string, fc Flowchart) Project {
	return Project{
		"id":          mustMarshal(id),
		"name":        mustMarshal(name),
		"description": mustMarshal(description),
		"flowchart":   mustMarshal(fc),
	}
}

func mustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
