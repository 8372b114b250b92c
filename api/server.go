package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ModuleRegistrar is a group of routes served by the node's HTTP server.
type ModuleRegistrar interface {
	Name() string
	RegisterRoutes(router *chi.Mux) error
}

// Server is the node's HTTP façade. Modules are mounted on one chi router before Start.
type Server struct {
	router  *chi.Mux
	server  *http.Server
	modules []string
}

func NewServer(addr string) *Server {
	router := chi.NewRouter()
	// A panicking handler answers 500 instead of taking the node down.
	router.Use(middleware.Recoverer)

	return &Server{
		router: router,
		server: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Mount a module's routes. A module can only be registered once.
func (s *Server) RegisterModule(module ModuleRegistrar) error {
	name := module.Name()
	for _, m := range s.modules {
		if m == name {
			return fmt.Errorf("module %s is already registered", name)
		}
	}
	if err := module.RegisterRoutes(s.router); err != nil {
		return fmt.Errorf("cannot register module %s: %w", name, err)
	}
	s.modules = append(s.modules, name)
	return nil
}

// Names of the registered modules, in registration order.
func (s *Server) Modules() []string {
	modules := make([]string, len(s.modules))
	copy(modules, s.modules)
	return modules
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) Start() error {
	log.Printf("Starting HTTP server on %s with modules [%s]", s.server.Addr, strings.Join(s.modules, ", "))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Printf("Shutting down HTTP server on %s", s.server.Addr)
	return s.server.Shutdown(ctx)
}
