package api

import (
	"net/http"
	"time"

	"itradebook/src/api/handlers"
	"itradebook/src/config"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler handlers.Handler
}

func NewServer(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	handler, err := handlers.NewHandler(cfg, logger)
	if err != nil {
		return nil, err
	}
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: *handler,
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(cors.AllowAll().Handler)
	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api/reports", func(r chi.Router) {
		r.Get("/", s.Handler.GetReports)
		r.Get("/export", s.Handler.ExportReports)
	})
	s.Router.Get("/api/symbols", s.Handler.GetSymbols)
}

func NewHTTPServer(server *Server, port string) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		Handler:      server,
	}
	return httpServer
}
