package draft

import (
	"fmt"

	"github.com/areahq/areactl/model"
	"github.com/google/uuid"
)

// Position is where a node sits on the canvas. Display only; it never
// reaches the wire.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is one placed action or reaction instance, bound to a catalog entry
// and a parameter set.
type Node struct {
	Id       string                     `json:"id"`
	Kind     model.NodeKind             `json:"kind"`
	Service  string                     `json:"service"`
	Event    string                     `json:"event"`
	Params   map[string]string          `json:"params"`
	Spec     map[string]model.ParamSpec `json:"-"`
	Position Position                   `json:"position"`
}

// Connection is a directed edge between two placed nodes.
type Connection struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Draft is the in-memory, not yet submitted workflow being composed.
// Created empty when the editor opens, populated by user actions, then
// either serialized and submitted or discarded.
type Draft struct {
	Id          string
	Name        string
	WorkflowId  int64
	nodes       []*Node
	byId        map[string]*Node
	connections []Connection
}

func New() *Draft {
	return &Draft{
		Id:   uuid.NewString(),
		byId: make(map[string]*Node),
	}
}

// AddNode places a catalog entry on the canvas. Parameters start empty for
// every schema key; the position only staggers nodes so they do not overlap.
func (d *Draft) AddNode(entry model.CatalogEntry) *Node {
	params := make(map[string]string, len(entry.Params))
	for key := range entry.Params {
		params[key] = ""
	}
	node := &Node{
		Id:      uuid.NewString(),
		Kind:    entry.Kind,
		Service: entry.Service,
		Event:   entry.Event,
		Params:  params,
		Spec:    entry.Params,
		Position: Position{
			X: 120 + float64(len(d.nodes))*40,
			Y: 160 + float64(len(d.nodes))*90,
		},
	}
	d.nodes = append(d.nodes, node)
	d.byId[node.Id] = node
	return node
}

// UpdateParams merges the given keys into the node's parameter set. Values
// are not validated here; validation happens at submission.
func (d *Draft) UpdateParams(nodeId string, partial map[string]string) error {
	node, ok := d.byId[nodeId]
	if !ok {
		return fmt.Errorf("no node %s in draft", nodeId)
	}
	for key, value := range partial {
		node.Params[key] = value
	}
	return nil
}

// RemoveNode deletes a node and every connection referencing it.
func (d *Draft) RemoveNode(nodeId string) {
	if _, ok := d.byId[nodeId]; !ok {
		return
	}
	delete(d.byId, nodeId)
	kept := d.nodes[:0]
	for _, node := range d.nodes {
		if node.Id != nodeId {
			kept = append(kept, node)
		}
	}
	d.nodes = kept

	keptConns := d.connections[:0]
	for _, conn := range d.connections {
		if conn.Source != nodeId && conn.Target != nodeId {
			keptConns = append(keptConns, conn)
		}
	}
	d.connections = keptConns
}

func (d *Draft) Connect(sourceId, targetId string) error {
	if sourceId == targetId {
		return fmt.Errorf("cannot connect node %s to itself", sourceId)
	}
	if _, ok := d.byId[sourceId]; !ok {
		return fmt.Errorf("no node %s in draft", sourceId)
	}
	if _, ok := d.byId[targetId]; !ok {
		return fmt.Errorf("no node %s in draft", targetId)
	}
	for _, conn := range d.connections {
		if conn.Source == sourceId && conn.Target == targetId {
			return nil
		}
	}
	d.connections = append(d.connections, Connection{Source: sourceId, Target: targetId})
	return nil
}

func (d *Draft) Disconnect(sourceId, targetId string) {
	kept := d.connections[:0]
	for _, conn := range d.connections {
		if conn.Source != sourceId || conn.Target != targetId {
			kept = append(kept, conn)
		}
	}
	d.connections = kept
}

func (d *Draft) Node(nodeId string) (*Node, bool) {
	node, ok := d.byId[nodeId]
	return node, ok
}

func (d *Draft) Nodes() []*Node {
	out := make([]*Node, len(d.nodes))
	copy(out, d.nodes)
	return out
}

func (d *Draft) Connections() []Connection {
	out := make([]Connection, len(d.connections))
	copy(out, d.connections)
	return out
}

// linked returns, in placement order, the nodes referenced by at least one
// connection. Nodes left unconnected are scratch material on the canvas and
// stay out of the submitted workflow.
func (d *Draft) linked() []*Node {
	referenced := make(map[string]bool, len(d.connections)*2)
	for _, conn := range d.connections {
		referenced[conn.Source] = true
		referenced[conn.Target] = true
	}
	var out []*Node
	for _, node := range d.nodes {
		if referenced[node.Id] {
			out = append(out, node)
		}
	}
	return out
}
