package draft

import (
	"github.com/areahq/areactl/model"
)

// ToSteps converts the linked part of the draft into the wire step list.
// The server treats steps as an unordered bag, so no ordering is promised
// beyond placement order.
func (d *Draft) ToSteps() []model.WorkflowStep {
	linked := d.linked()
	steps := make([]model.WorkflowStep, 0, len(linked))
	for _, node := range linked {
		params := make(map[string]string, len(node.Params))
		for key, value := range node.Params {
			params[key] = value
		}
		steps = append(steps, model.WorkflowStep{
			Type:    node.Kind,
			Service: node.Service,
			Event:   node.Event,
			Params:  params,
		})
	}
	return steps
}

// FromSteps rebuilds a draft from a fetched workflow for edit mode. One
// node per step with synthetic positions, then a single linear fan from the
// action to each reaction so the connectivity invariant holds for
// re-editing. With more than one action the reconstruction keeps the first
// as the fan source; the backend does not produce such workflows today.
func FromSteps(wf *model.Workflow) *Draft {
	d := New()
	d.Name = wf.Name
	d.WorkflowId = wf.Id

	var actionId string
	for _, step := range wf.Steps {
		node := d.AddNode(model.CatalogEntry{
			Service: step.Service,
			Event:   step.Event,
			Kind:    step.Type,
		})
		for key, value := range step.Params {
			node.Params[key] = value
		}
		if step.Type == model.KIND_ACTION && actionId == "" {
			actionId = node.Id
		}
	}
	if actionId == "" {
		return d
	}
	for _, node := range d.nodes {
		if node.Id == actionId {
			continue
		}
		d.Connect(actionId, node.Id)
	}
	return d
}

// BindSpecs attaches parameter schemas to nodes that came off the wire,
// which carry none. Without a schema the required parameter check has
// nothing to enforce. Unknown entries are skipped; set params are kept and
// keys the schema adds start empty.
func (d *Draft) BindSpecs(resolve func(key string) (model.CatalogEntry, bool)) {
	for _, node := range d.nodes {
		if node.Spec != nil {
			continue
		}
		entry, ok := resolve(node.Service + "." + node.Event)
		if !ok {
			continue
		}
		node.Spec = entry.Params
		for key := range entry.Params {
			if _, ok := node.Params[key]; !ok {
				node.Params[key] = ""
			}
		}
	}
}
