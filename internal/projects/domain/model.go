package domain

import (
	"encoding/json"
	"fmt"
)

const (
	fieldID        = "id"
	fieldFlowchart = "flowchart"
)

// Project is a single flowchart-bearing record.
// Only "id" and "flowchart" are interpreted; every other field is kept as the client sent it.
type Project map[string]json.RawMessage

// ParseProject decodes a client supplied project body. The body must be a JSON object.
func ParseProject(body []byte) (Project, error) {
	var p Project
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: project must be a JSON object", ErrInvalidBody)
	}
	return p, nil
}

// ID returns the project id, or "" when it is missing or not a string.
func (p Project) ID() string {
	raw, ok := p[fieldID]
	if !ok {
		return ""
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return ""
	}
	return id
}

func (p Project) SetID(id string) {
	raw, _ := json.Marshal(id)
	p[fieldID] = raw
}

func (p Project) HasFlowchart() bool {
	_, ok := p[fieldFlowchart]
	return ok
}

func (p Project) Flowchart() json.RawMessage {
	return p[fieldFlowchart]
}

// SetFlowchart replaces the flowchart wholesale.
func (p Project) SetFlowchart(raw json.RawMessage) {
	p[fieldFlowchart] = append(json.RawMessage(nil), raw...)
}

// Clone returns a copy that shares no memory with p.
func (p Project) Clone() Project {
	out := make(Project, len(p))
	for k, v := range p {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}

// Document is the whole persisted state.
type Document struct {
	Projects []Project `json:"projects"`
}

// Find returns the position of the first project with the given id, or -1.
func (d *Document) Find(id string) int {
	for i, p := range d.Projects {
		if p.ID() == id {
			return i
		}
	}
	return -1
}

// Clone deep-copies the document.
func (d *Document) Clone() *Document {
	out := &Document{Projects: make([]Project, 0, len(d.Projects))}
	for _, p := range d.Projects {
		out.Projects = append(out.Projects, p.Clone())
	}
	return out
}

// Flowchart mirrors the shape the editor sends. The server never validates against it;
// it only builds the built-in default data.
type Flowchart struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

type Node struct {
	ID       string   `json:"id"`
	Data     NodeData `json:"data"`
	Position Position `json:"position"`
}

type NodeData struct {
	Label string `json:"label"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}
