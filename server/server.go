package server

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lguibr/duopong/bollywood"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/store"
	"github.com/lguibr/duopong/utils"
	"golang.org/x/net/websocket"
)

// HistoryReader serves recorded points. *store.ScoreStore implements it.
type HistoryReader interface {
	History(ctx context.Context, limit int) ([]store.PointRecord, error)
	Totals(ctx context.Context) (game.Score, error)
}

// Server exposes the single session over HTTP and websockets.
type Server struct {
	engine    *bollywood.Engine
	gamePID   *bollywood.PID
	cfg       utils.Config
	history   HistoryReader // nil when no store is configured
	startedAt time.Time
	clients   atomic.Uint64
}

// New creates a server bound to the GameActor. history may be nil.
func New(engine *bollywood.Engine, gamePID *bollywood.PID, cfg utils.Config, history HistoryReader) *Server {
	return &Server{
		engine:    engine,
		gamePID:   gamePID,
		cfg:       cfg,
		history:   history,
		startedAt: time.Now(),
	}
}

// GetEngine returns the actor engine.
func (s *Server) GetEngine() *bollywood.Engine {
	return s.engine
}

// GetGameActorPID returns the PID of the session's GameActor.
func (s *Server) GetGameActorPID() *bollywood.PID {
	return s.gamePID
}

func (s *Server) nextClientID() string {
	return fmt.Sprintf("client-%d", s.clients.Add(1))
}

// Router builds the gin engine with every route of the service.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()

	router.Use(corsMiddleware(s.cfg))

	if s.cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Next()
		})
		log.Println("[SERVER] development mode, no-cache headers enabled")
	}

	router.GET("/health", s.HandleHealth)
	router.GET("/", s.HandleGetFrame)
	router.GET("/score", s.HandleGetScore)
	router.GET("/history", s.HandleGetHistory)
	router.GET("/subscribe", gin.WrapH(websocket.Handler(s.HandleSubscribe())))

	return router
}
