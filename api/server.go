// Package api exposes the chain to the form and display layer over HTTP.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tallychain/api/handlers"
	"tallychain/api/middleware"
	"tallychain/blockchain/store"
	"tallychain/clock"
)

// Server is the HTTP API server.
type Server struct {
	store  store.ChainStore
	clock  clock.Clock
	log    zerolog.Logger
	engine *gin.Engine
	port   string
}

// NewServer wires the router for the given chain store and timestamp source.
func NewServer(chainStore store.ChainStore, clk clock.Clock, logger zerolog.Logger, port string) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		store:  chainStore,
		clock:  clk,
		log:    logger,
		engine: gin.New(),
		port:   port,
	}
	s.engine.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger))
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP endpoints.
func (s *Server) setupRoutes() {
	group := s.engine.Group("/api")

	// Record submission (the form boundary)
	group.POST("/records", handlers.AppendRecord(s.store, s.clock))

	// Chain endpoints
	group.GET("/chain", handlers.GetChain(s.store))
	group.GET("/chain/head", handlers.GetChainHead(s.store))
	group.GET("/chain/height", handlers.GetChainHeight(s.store))
	group.GET("/chain/validate", handlers.ValidateChain(s.store))

	// Block endpoints
	group.GET("/blocks/:index", handlers.GetBlockByIndex(s.store))
	group.GET("/blocks/:index/encoding", handlers.GetBlockEncoding(s.store))
}

// Engine exposes the underlying router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start begins serving HTTP requests (blocks until the listener fails).
func (s *Server) Start() error {
	s.log.Info().Str("port", s.port).Msg("starting http api server")
	return s.engine.Run(":" + s.port)
}
