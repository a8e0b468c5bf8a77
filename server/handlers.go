// File: server/handlers.go
package server

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lguibr/duopong/game"
)

const defaultHistoryLimit = 20

// HandleHealth reports liveness of the service and of the GameActor.
func (s *Server) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "duopong",
		"uptime":    time.Since(s.startedAt).String(),
		"gameAlive": s.engine.Alive(s.gamePID),
	})
}

// HandleGetFrame returns the latest frame by querying the GameActor.
func (s *Server) HandleGetFrame(c *gin.Context) {
	reply, err := s.engine.Ask(s.gamePID, game.GetFrameRequest{}, s.cfg.AskTimeout)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	frame, ok := reply.(game.Frame)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected reply from game actor"})
		return
	}
	c.JSON(http.StatusOK, frame)
}

// HandleGetScore returns the score of the running session.
func (s *Server) HandleGetScore(c *gin.Context) {
	reply, err := s.engine.Ask(s.gamePID, game.GetScoreRequest{}, s.cfg.AskTimeout)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	score, ok := reply.(game.Score)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected reply from game actor"})
		return
	}
	c.JSON(http.StatusOK, score)
}

// HandleGetHistory returns recorded points, newest first, plus all-time totals.
func (s *Server) HandleGetHistory(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "point history is not configured"})
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	ctx := c.Request.Context()
	points, err := s.history.History(ctx, limit)
	if err != nil {
		s.storeError(c, err)
		return
	}
	totals, err := s.history.Totals(ctx)
	if err != nil {
		s.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totals": totals,
		"points": points,
	})
}

func (s *Server) storeError(c *gin.Context, err error) {
	log.Printf("[SERVER] history query failed: %v", err)
	status := http.StatusBadGateway
	if c.Request.Context().Err() != nil {
		status = http.StatusRequestTimeout
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
