package mock

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/areahq/areactl/model"
	"github.com/gorilla/mux"
)

func (s *Server) HandleCreateWorkflow(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	var req model.WorkflowCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed body")
		return
	}
	defer r.Body.Close()
	if req.Name == "" {
		respondWithError(w, http.StatusUnprocessableEntity, "name is required")
		return
	}
	s.mu.Lock()
	s.nextWfId++
	wf := model.Workflow{
		Id:          s.nextWfId,
		Name:        req.Name,
		Description: req.Description,
		Visibility:  req.Visibility,
		Active:      true,
		Steps:       req.Steps,
	}
	s.workflows[wf.Id] = &storedWorkflow{Owner: user.Email, Workflow: wf, Created: time.Now()}
	s.mu.Unlock()
	respondWithJSON(w, http.StatusOK, wf)
}

func (s *Server) HandleListWorkflows(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	out := make([]model.Workflow, 0)
	for _, stored := range s.workflows {
		if stored.Owner == user.Email {
			out = append(out, stored.Workflow)
		}
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	respondWithJSON(w, http.StatusOK, out)
}

// ownedWorkflow looks up the path id and checks ownership, answering 404
// for both a missing workflow and someone else's.
func (s *Server) ownedWorkflow(w http.ResponseWriter, r *http.Request, user *mockUser) (*storedWorkflow, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid workflow id")
		return nil, false
	}
	stored, ok := s.workflows[id]
	if !ok || stored.Owner != user.Email {
		respondWithError(w, http.StatusNotFound, "Workflow not found")
		return nil, false
	}
	return stored, true
}

func (s *Server) HandleGetWorkflow(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.ownedWorkflow(w, r, user)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, stored.Workflow)
}

func (s *Server) HandleUpdateWorkflow(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	var req model.WorkflowUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed body")
		return
	}
	defer r.Body.Close()
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.ownedWorkflow(w, r, user)
	if !ok {
		return
	}
	if req.Name != "" {
		stored.Workflow.Name = req.Name
	}
	if req.Steps != nil {
		stored.Workflow.Steps = req.Steps
	}
	respondWithJSON(w, http.StatusOK, stored.Workflow)
}

func (s *Server) HandleDeleteWorkflow(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.ownedWorkflow(w, r, user)
	if !ok {
		return
	}
	delete(s.workflows, stored.Workflow.Id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) HandleToggleWorkflow(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.ownedWorkflow(w, r, user)
	if !ok {
		return
	}
	stored.Workflow.Active = !stored.Workflow.Active
	respondWithJSON(w, http.StatusOK, model.WorkflowToggleResponse{Active: stored.Workflow.Active})
}

func (s *Server) HandleFeed(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	search := r.URL.Query().Get("search")

	// Copy the matches while holding the lock; the update and toggle
	// handlers mutate stored workflows in place.
	s.mu.Lock()
	public := make([]storedWorkflow, 0)
	for _, stored := range s.workflows {
		if stored.Workflow.Visibility != "public" {
			continue
		}
		if search != "" && !containsFold(stored.Workflow.Name, search) && !containsFold(stored.Workflow.Description, search) {
			continue
		}
		public = append(public, *stored)
	}
	s.mu.Unlock()

	sort.Slice(public, func(i, j int) bool { return public[i].Created.After(public[j].Created) })
	if skip > len(public) {
		skip = len(public)
	}
	public = public[skip:]
	if len(public) > limit {
		public = public[:limit]
	}
	out := make([]model.FeedItem, 0, len(public))
	for _, stored := range public {
		out = append(out, model.FeedItem{
			Id:          stored.Workflow.Id,
			Name:        stored.Workflow.Name,
			Description: stored.Workflow.Description,
			Author:      stored.Owner,
			CreatedAt:   stored.Created.Format(time.RFC3339),
			StepsCount:  len(stored.Workflow.Steps),
		})
	}
	respondWithJSON(w, http.StatusOK, out)
}
