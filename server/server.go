// Package server exposes the journal over HTTP. Everything here is
// plumbing around the journal/session/sheet core: routing, JSON
// bodies, multipart uploads and static chart serving.
package server

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/images"
	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/session"
)

// Server holds the dependencies shared by the HTTP handlers.
type Server struct {
	cfg    *config.Config
	sess   *session.Session
	codec  *journal.Serializer
	charts *images.Store
	router *mux.Router
}

// New builds a server for one client session, creating the storage
// directories if needed.
func New(cfg *config.Config) (*Server, error) {
	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		return nil, err
	}
	charts, err := images.NewStore(cfg.Storage.ImageDir)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:    cfg,
		sess:   session.New(),
		codec:  journal.NewSerializer(),
		charts: charts,
	}
	s.router = s.routes()
	return s, nil
}

// Session exposes the active-file state, mainly for tests.
func (s *Server) Session() *session.Session {
	return s.sess
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.HealthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/files", s.ListFiles).Methods("GET")
	api.HandleFunc("/files", s.CreateFile).Methods("POST")
	api.HandleFunc("/files/{name}/load", s.LoadFile).Methods("POST")
	api.HandleFunc("/files/{name}", s.DeleteFile).Methods("DELETE")
	api.HandleFunc("/ledger", s.SaveLedger).Methods("PUT")
	api.HandleFunc("/charts", s.UploadChart).Methods("POST")

	r.PathPrefix("/charts/").Handler(
		http.StripPrefix("/charts/", http.FileServer(http.Dir(s.charts.Dir()))))

	return r
}

// Router returns the HTTP handler, for mounting or for httptest.
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe blocks serving the API on the configured address.
func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.cfg.Server.Addr, s.router)
}
