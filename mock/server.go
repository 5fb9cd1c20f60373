package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/areahq/areactl/logger"
	"github.com/areahq/areactl/model"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Server is an in-memory stand-in for the real backend, speaking the same
// wire contract. It backs the `areactl mockserver` command for local
// development and the api package tests. Nothing survives a restart.
type Server struct {
	http.Server
	Port int

	mu          sync.Mutex
	users       map[string]*mockUser
	tokens      map[string]string
	connections map[string]map[string]bool
	workflows   map[int64]*storedWorkflow
	nextUserId  int64
	nextWfId    int64
	catalog     seedCatalog
}

type mockUser struct {
	model.UserInfo
	Password string
}

type storedWorkflow struct {
	Owner    string
	Workflow model.Workflow
	Created  time.Time
}

func NewServer(httpPort int) *Server {
	s := &Server{
		Server: http.Server{
			Addr:        fmt.Sprintf(":%d", httpPort),
			IdleTimeout: 2 * time.Second,
		},
		Port:        httpPort,
		users:       make(map[string]*mockUser),
		tokens:      make(map[string]string),
		connections: make(map[string]map[string]bool),
		workflows:   make(map[int64]*storedWorkflow),
		catalog:     defaultCatalog(),
	}
	s.Handler = s.Router()
	return s
}

// Router builds the backend routes. Exposed separately so tests can mount
// it on an httptest server.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/auth/register", s.HandleRegister).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", s.HandleLogin).Methods(http.MethodPost)
	router.HandleFunc("/auth/me", s.HandleMe).Methods(http.MethodGet)
	router.HandleFunc("/auth/password", s.HandleChangePassword).Methods(http.MethodPatch)
	router.HandleFunc("/auth/verify", s.HandleVerify).Methods(http.MethodPost)

	router.HandleFunc("/catalog/actions", s.HandleCatalogActions).Methods(http.MethodGet)
	router.HandleFunc("/catalog/reactions", s.HandleCatalogReactions).Methods(http.MethodGet)

	router.HandleFunc("/oauth/services", s.HandleOAuthServices).Methods(http.MethodGet)
	router.HandleFunc("/oauth/{provider}/status", s.HandleOAuthStatus).Methods(http.MethodGet)
	router.HandleFunc("/oauth/{provider}/connect", s.HandleOAuthConnect).Methods(http.MethodPost)
	router.HandleFunc("/oauth/{provider}/disconnect", s.HandleOAuthDisconnect).Methods(http.MethodDelete)

	router.HandleFunc("/services/{source}", s.HandleServiceOptions).Methods(http.MethodGet)

	router.HandleFunc("/workflows/", s.HandleCreateWorkflow).Methods(http.MethodPost)
	router.HandleFunc("/workflows/", s.HandleListWorkflows).Methods(http.MethodGet)
	router.HandleFunc("/workflows/{id}", s.HandleGetWorkflow).Methods(http.MethodGet)
	router.HandleFunc("/workflows/{id}", s.HandleUpdateWorkflow).Methods(http.MethodPut)
	router.HandleFunc("/workflows/{id}", s.HandleDeleteWorkflow).Methods(http.MethodDelete)
	router.HandleFunc("/workflows/{id}/toggle", s.HandleToggleWorkflow).Methods(http.MethodPatch)

	router.HandleFunc("/feed/workflows", s.HandleFeed).Methods(http.MethodGet)

	router.HandleFunc("/admin/users", s.HandleAdminListUsers).Methods(http.MethodGet)
	router.HandleFunc("/admin/users", s.HandleAdminCreateUser).Methods(http.MethodPost)
	router.HandleFunc("/admin/users/{id}", s.HandleAdminUpdateUser).Methods(http.MethodPut)
	router.HandleFunc("/admin/users/{id}", s.HandleAdminDeleteUser).Methods(http.MethodDelete)

	router.Use(loggingMiddleware)
	return router
}

func (s *Server) Start() error {
	logger.Info("starting mock backend", zap.Int("port", s.Port))
	if err := s.ListenAndServe(); err != nil {
		return err
	}
	return nil
}

func (s *Server) Stop() error {
	logger.Info("stopping mock backend")
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug(r.Method + " " + r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

// currentUser resolves the bearer token, or answers 401 and reports false.
func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) (*mockUser, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		respondWithError(w, http.StatusUnauthorized, "not authenticated")
		return nil, false
	}
	s.mu.Lock()
	email, ok := s.tokens[token]
	user := s.users[email]
	s.mu.Unlock()
	if !ok || user == nil {
		respondWithError(w, http.StatusUnauthorized, "invalid token")
		return nil, false
	}
	return user, true
}

func (s *Server) currentAdmin(w http.ResponseWriter, r *http.Request) (*mockUser, bool) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return nil, false
	}
	if user.Role != "admin" {
		respondWithError(w, http.StatusForbidden, "admin role required")
		return nil, false
	}
	return user, true
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, detail string) {
	respondWithJSON(w, code, map[string]string{"detail": detail})
}
