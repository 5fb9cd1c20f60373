package model

// WorkflowStep is the wire form of one node of a submitted workflow. The
// server treats the step list as an unordered bag distinguished by Type.
type WorkflowStep struct {
	Type    NodeKind          `json:"type"`
	Service string            `json:"service"`
	Event   string            `json:"event"`
	Params  map[string]string `json:"params"`
}

type Workflow struct {
	Id          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Visibility  string         `json:"visibility"`
	Active      bool           `json:"active"`
	Steps       []WorkflowStep `json:"steps"`
}

type WorkflowCreateRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Visibility  string         `json:"visibility"`
	Steps       []WorkflowStep `json:"steps"`
}

type WorkflowUpdateRequest struct {
	Name  string         `json:"name"`
	Steps []WorkflowStep `json:"steps"`
}

type WorkflowToggleResponse struct {
	Active bool `json:"active"`
}

type FeedItem struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Author      string `json:"author"`
	CreatedAt   string `json:"created_at"`
	StepsCount  int    `json:"steps_count"`
}
