package mock

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/areahq/areactl/model"
	"github.com/gorilla/mux"
)

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (s *Server) HandleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.currentAdmin(w, r); !ok {
		return
	}
	s.mu.Lock()
	out := make([]model.UserInfo, 0, len(s.users))
	for _, user := range s.users {
		out = append(out, user.UserInfo)
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	respondWithJSON(w, http.StatusOK, out)
}

func (s *Server) HandleAdminCreateUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.currentAdmin(w, r); !ok {
		return
	}
	var req model.AdminUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed body")
		return
	}
	defer r.Body.Close()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[req.Email]; exists {
		respondWithError(w, http.StatusBadRequest, "Email already registered")
		return
	}
	s.nextUserId++
	user := &mockUser{
		UserInfo: model.UserInfo{
			Id:         s.nextUserId,
			Username:   req.Username,
			Email:      req.Email,
			Role:       req.Role,
			IsVerified: true,
		},
		Password: req.Password,
	}
	s.users[req.Email] = user
	respondWithJSON(w, http.StatusOK, user.UserInfo)
}

func (s *Server) userById(id int64) (*mockUser, bool) {
	for _, user := range s.users {
		if user.Id == id {
			return user, true
		}
	}
	return nil, false
}

func (s *Server) HandleAdminUpdateUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.currentAdmin(w, r); !ok {
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req model.AdminUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed body")
		return
	}
	defer r.Body.Close()
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.userById(id)
	if !ok {
		respondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	oldEmail := user.Email
	user.Username = req.Username
	user.Email = req.Email
	user.Role = req.Role
	if req.Password != "" {
		user.Password = req.Password
	}
	if oldEmail != req.Email {
		delete(s.users, oldEmail)
		s.users[req.Email] = user
	}
	respondWithJSON(w, http.StatusOK, user.UserInfo)
}

func (s *Server) HandleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.currentAdmin(w, r); !ok {
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.userById(id)
	if !ok {
		respondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	delete(s.users, user.Email)
	respondWithJSON(w, http.StatusOK, map[string]string{"detail": "User deleted"})
}
