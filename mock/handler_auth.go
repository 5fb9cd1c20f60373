package mock

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/areahq/areactl/model"
	"github.com/google/uuid"
)

func (s *Server) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed body")
		return
	}
	defer r.Body.Close()
	if len(req.Password) < 8 {
		respondWithError(w, http.StatusUnprocessableEntity, "password must be at least 8 characters")
		return
	}
	s.mu.Lock()
	if _, exists := s.users[req.Email]; exists {
		s.mu.Unlock()
		respondWithError(w, http.StatusBadRequest, "Email already registered")
		return
	}
	s.nextUserId++
	user := &mockUser{
		UserInfo: model.UserInfo{
			Id:         s.nextUserId,
			Username:   req.Username,
			Email:      req.Email,
			Role:       "user",
			IsVerified: false,
		},
		Password: req.Password,
	}
	// first registered account gets the admin role for convenience
	if s.nextUserId == 1 {
		user.Role = "admin"
	}
	s.users[req.Email] = user
	token := uuid.NewString()
	s.tokens[token] = req.Email
	s.mu.Unlock()
	respondWithJSON(w, http.StatusOK, model.Token{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed body")
		return
	}
	defer r.Body.Close()
	s.mu.Lock()
	user, ok := s.users[req.Email]
	if !ok || user.Password != req.Password {
		s.mu.Unlock()
		respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token := uuid.NewString()
	s.tokens[token] = req.Email
	s.mu.Unlock()
	respondWithJSON(w, http.StatusOK, model.Token{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, user.UserInfo)
}

func (s *Server) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	var req model.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed body")
		return
	}
	defer r.Body.Close()
	if len(req.NewPassword) < 8 {
		respondWithError(w, http.StatusUnprocessableEntity, "password must be at least 8 characters")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.Password != req.OldPassword {
		respondWithError(w, http.StatusBadRequest, "old password does not match")
		return
	}
	user.Password = req.NewPassword
	respondWithJSON(w, http.StatusOK, map[string]string{"detail": "password changed"})
}

func (s *Server) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed body")
		return
	}
	defer r.Body.Close()
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[req.Email]
	if !ok {
		respondWithError(w, http.StatusNotFound, fmt.Sprintf("no account for %s", req.Email))
		return
	}
	user.IsVerified = true
	respondWithJSON(w, http.StatusOK, map[string]string{"detail": "verified"})
}
