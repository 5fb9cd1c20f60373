package mock

import (
	"net/http"

	"github.com/areahq/areactl/model"
	"github.com/gorilla/mux"
)

func (s *Server) HandleCatalogActions(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, s.catalogFor(user, s.catalog.actions))
}

func (s *Server) HandleCatalogReactions(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, s.catalogFor(user, s.catalog.reactions))
}

// connectedServices copies the per-user connection set. HandleOAuthConnect
// writes the inner map under s.mu, so it must never escape the lock.
func (s *Server) connectedServices(email string) map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool, len(s.connections[email]))
	for provider, connected := range s.connections[email] {
		out[provider] = connected
	}
	return out
}

// catalogFor stamps the per-user availability flag onto each entry.
func (s *Server) catalogFor(user *mockUser, entries map[string]model.CatalogEntry) map[string]model.CatalogEntry {
	connected := s.connectedServices(user.Email)
	out := make(map[string]model.CatalogEntry, len(entries))
	for key, entry := range entries {
		entry.Available = connected[entry.Service]
		out[key] = entry
	}
	return out
}

func (s *Server) HandleOAuthServices(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	connected := s.connectedServices(user.Email)
	providers := make(map[string]bool)
	for _, entry := range s.catalog.actions {
		providers[entry.Service] = true
	}
	for _, entry := range s.catalog.reactions {
		providers[entry.Service] = true
	}
	out := make([]model.ServiceConnection, 0, len(providers))
	for provider := range providers {
		out = append(out, model.ServiceConnection{
			Provider:  provider,
			Connected: connected[provider],
		})
	}
	respondWithJSON(w, http.StatusOK, out)
}

func (s *Server) HandleOAuthStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	provider := mux.Vars(r)["provider"]
	s.mu.Lock()
	connected := s.connections[user.Email][provider]
	s.mu.Unlock()
	respondWithJSON(w, http.StatusOK, model.ConnectionStatus{LoggedIn: connected, HasToken: connected})
}

// HandleOAuthConnect marks a provider as authorized without the browser
// dance. Mock-only shortcut; the real backend redirects to the provider.
func (s *Server) HandleOAuthConnect(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	provider := mux.Vars(r)["provider"]
	s.mu.Lock()
	if s.connections[user.Email] == nil {
		s.connections[user.Email] = make(map[string]bool)
	}
	s.connections[user.Email][provider] = true
	s.mu.Unlock()
	respondWithJSON(w, http.StatusOK, map[string]string{"detail": provider + " connected"})
}

func (s *Server) HandleOAuthDisconnect(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	provider := mux.Vars(r)["provider"]
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connections[user.Email][provider] {
		respondWithError(w, http.StatusNotFound, "service not connected")
		return
	}
	delete(s.connections[user.Email], provider)
	respondWithJSON(w, http.StatusOK, map[string]string{"detail": provider + " disconnected"})
}

func (s *Server) HandleServiceOptions(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.currentUser(w, r); !ok {
		return
	}
	source := mux.Vars(r)["source"]
	doc, ok := s.catalog.options[source]
	if !ok {
		respondWithError(w, http.StatusNotFound, "unknown source "+source)
		return
	}
	respondWithJSON(w, http.StatusOK, doc)
}
