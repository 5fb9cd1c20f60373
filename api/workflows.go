package api

import (
	"context"
	"fmt"
	"sync"

	"github.com/areahq/areactl/logger"
	"github.com/areahq/areactl/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Description and visibility are not user editable yet; every workflow is
// created with these defaults.
const defaultVisibility = "private"
const defaultDescription = ""

// SubmissionInFlightError is returned when a create or update for the same
// draft has not resolved yet.
type SubmissionInFlightError struct {
	Draft string
}

func (e SubmissionInFlightError) Error() string {
	return fmt.Sprintf("a submission for draft %s is already in flight", e.Draft)
}

// WorkflowService performs workflow create, update, delete and toggle
// calls. At most one create or update per draft may be outstanding; a
// second submit while the first is pending fails with
// SubmissionInFlightError instead of firing a duplicate request.
type WorkflowService struct {
	client   *Client
	mu       sync.Mutex
	inflight map[string]string
}

func NewWorkflowService(client *Client) *WorkflowService {
	return &WorkflowService{
		client:   client,
		inflight: make(map[string]string),
	}
}

func (s *WorkflowService) acquire(draftId string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token, ok := s.inflight[draftId]; ok {
		logger.Debug("submission already pending", zap.String("draft", draftId), zap.String("token", token))
		return "", SubmissionInFlightError{Draft: draftId}
	}
	token := uuid.NewString()
	s.inflight[draftId] = token
	return token, nil
}

func (s *WorkflowService) release(draftId, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[draftId] == token {
		delete(s.inflight, draftId)
	}
}

func (s *WorkflowService) Create(ctx context.Context, draftId, name string, steps []model.WorkflowStep) (*model.Workflow, error) {
	token, err := s.acquire(draftId)
	if err != nil {
		return nil, err
	}
	defer s.release(draftId, token)

	req := model.WorkflowCreateRequest{
		Name:        name,
		Description: defaultDescription,
		Visibility:  defaultVisibility,
		Steps:       steps,
	}
	var created model.Workflow
	if err := s.client.do(ctx, "POST", "/workflows/", req, &created); err != nil {
		return nil, err
	}
	logger.Info("workflow created", zap.Int64("id", created.Id), zap.String("name", created.Name))
	return &created, nil
}

func (s *WorkflowService) Update(ctx context.Context, draftId string, id int64, name string, steps []model.WorkflowStep) (*model.Workflow, error) {
	token, err := s.acquire(draftId)
	if err != nil {
		return nil, err
	}
	defer s.release(draftId, token)

	req := model.WorkflowUpdateRequest{Name: name, Steps: steps}
	var updated model.Workflow
	if err := s.client.do(ctx, "PUT", fmt.Sprintf("/workflows/%d", id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *WorkflowService) List(ctx context.Context) ([]model.Workflow, error) {
	var workflows []model.Workflow
	if err := s.client.do(ctx, "GET", "/workflows/", nil, &workflows); err != nil {
		return nil, err
	}
	return workflows, nil
}

func (s *WorkflowService) Get(ctx context.Context, id int64) (*model.Workflow, error) {
	var wf model.Workflow
	if err := s.client.do(ctx, "GET", fmt.Sprintf("/workflows/%d", id), nil, &wf); err != nil {
		return nil, err
	}
	return &wf, nil
}

func (s *WorkflowService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, "DELETE", fmt.Sprintf("/workflows/%d", id), nil, nil)
}

// Toggle flips the active flag server side and returns the new state. The
// response is the only source of truth; callers must not guess the result
// locally.
func (s *WorkflowService) Toggle(ctx context.Context, id int64) (bool, error) {
	var resp model.WorkflowToggleResponse
	if err := s.client.do(ctx, "PATCH", fmt.Sprintf("/workflows/%d/toggle", id), nil, &resp); err != nil {
		return false, err
	}
	return resp.Active, nil
}
