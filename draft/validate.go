package draft

import (
	"errors"
	"fmt"

	"github.com/areahq/areactl/model"
)

var ErrMissingName = errors.New("workflow name is required")
var ErrNoConnection = errors.New("link at least one action to a reaction")
var ErrNoAction = errors.New("a workflow needs a trigger action")
var ErrMultipleActions = errors.New("a workflow can have only one trigger action")

// MissingParamError reports a required parameter left empty at submission.
// The server revalidates; this check only saves a round trip.
type MissingParamError struct {
	Node  string
	Param string
}

func (e MissingParamError) Error() string {
	return fmt.Sprintf("%s: parameter %s is required", e.Node, e.Param)
}

// Validate checks the draft before serialization. Rules run in order: name,
// connectivity, action cardinality among linked nodes, then required
// parameters. Unlinked nodes are not an error; they are simply excluded.
func (d *Draft) Validate() error {
	if d.Name == "" {
		return ErrMissingName
	}
	if len(d.connections) == 0 {
		return ErrNoConnection
	}
	actions := 0
	for _, node := range d.linked() {
		if node.Kind == model.KIND_ACTION {
			actions++
		}
	}
	if actions == 0 {
		return ErrNoAction
	}
	if actions > 1 {
		return ErrMultipleActions
	}
	for _, node := range d.linked() {
		for key, spec := range node.Spec {
			if spec.Required && node.Params[key] == "" {
				return MissingParamError{
					Node:  node.Service + "." + node.Event,
					Param: key,
				}
			}
		}
	}
	return nil
}
