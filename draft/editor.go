package draft

import (
	"github.com/areahq/areactl/model"
)

// ConnectionGate decides whether a catalog entry's provider may be used.
// The registry package implements it against the user's OAuth connections.
type ConnectionGate interface {
	Gate(entry model.CatalogEntry) error
}

// Editor pairs a draft with the connection gate so that selecting a
// catalog entry whose provider is not connected yields a "connect first"
// error instead of silently placing an unusable node.
type Editor struct {
	draft *Draft
	gate  ConnectionGate
}

func NewEditor(d *Draft, gate ConnectionGate) *Editor {
	return &Editor{draft: d, gate: gate}
}

func (e *Editor) Draft() *Draft {
	return e.draft
}

func (e *Editor) Add(entry model.CatalogEntry) (*Node, error) {
	if err := e.gate.Gate(entry); err != nil {
		return nil, err
	}
	return e.draft.AddNode(entry), nil
}
