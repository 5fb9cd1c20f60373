package api

import (
	"context"
	"sync"

	"github.com/areahq/areactl/model"
)

// WorkflowList is the local view of the user's workflows. It mutates only
// on server confirmed responses: a delete that the server rejects leaves
// the list untouched, and a toggle takes the active flag from the response
// rather than flipping it optimistically.
type WorkflowList struct {
	service *WorkflowService
	mu      sync.RWMutex
	items   []model.Workflow
}

func NewWorkflowList(service *WorkflowService) *WorkflowList {
	return &WorkflowList{service: service}
}

func (l *WorkflowList) Refresh(ctx context.Context) error {
	items, err := l.service.List(ctx)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.items = items
	l.mu.Unlock()
	return nil
}

func (l *WorkflowList) Items() []model.Workflow {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.Workflow, len(l.items))
	copy(out, l.items)
	return out
}

func (l *WorkflowList) Delete(ctx context.Context, id int64) error {
	if err := l.service.Delete(ctx, id); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.items[:0]
	for _, wf := range l.items {
		if wf.Id != id {
			kept = append(kept, wf)
		}
	}
	l.items = kept
	return nil
}

func (l *WorkflowList) Toggle(ctx context.Context, id int64) (bool, error) {
	active, err := l.service.Toggle(ctx, id)
	if err != nil {
		return false, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.items[i].Id == id {
			l.items[i].Active = active
		}
	}
	return active, nil
}
