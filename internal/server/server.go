package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dailydiet/daily-diet-api/config"
	"github.com/dailydiet/daily-diet-api/internal/api"
	"github.com/dailydiet/daily-diet-api/internal/database"
	"github.com/dailydiet/daily-diet-api/internal/middleware"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New assembles the router and wires the API onto it
func New(cfg *config.Config, db *gorm.DB) *Server {
	if config.IsTest() {
		gin.SetMode(gin.TestMode)
	}
	router := gin.Default()
	router.Use(middleware.CORS())

	api.SetupAPI(router, db)

	return &Server{
		router: router,
		db:     db,
		http: &http.Server{
			Addr:    cfg.Addr(),
			Handler: router,
		},
	}
}

// Start runs the listener until Shutdown is called
func (s *Server) Start() error {
	log.Printf("HTTP server listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, drains in-flight ones within the
// context deadline, then releases the database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return err
	}
	return database.Close(s.db)
}
