package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"vibe-awards/internal/engagement"
)

func (s *Server) handleListBattles(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	limit, _ := parseLimitOffset(c, defaultBattleLim, maxBattleLimit)
	battles, err := s.queries.ListBattles(status, limit)
	if err != nil {
		slog.Error("list battles failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, battles)
}

func (s *Server) handleCurrentBattle(c *gin.Context) {
	battle, err := s.queries.CurrentBattle()
	if err != nil {
		slog.Error("current battle failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, battle)
}

func (s *Server) handleVote(c *gin.Context) {
	var req voteRequest
	if !bindJSON(c, &req, bindMessages{
		"AppID": {"required": "app_id is required"},
	}, "app_id is required") {
		return
	}

	actor := actingIdentity(c)
	err := s.engage.CastVote(actor, c.Param("id"), req.AppID, c.Request.UserAgent())
	switch {
	case err == nil:
		slog.Info("vote cast", "battle", c.Param("id"), "app_id", req.AppID, "identity", actor)
		c.JSON(http.StatusOK, gin.H{"message": "Vote cast successfully"})
	case errors.Is(err, engagement.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Battle not found"})
	case errors.Is(err, engagement.ErrAlreadyVoted):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already voted in this battle"})
	case errors.Is(err, engagement.ErrInvalidEntrant):
		c.JSON(http.StatusBadRequest, gin.H{"error": "app_id is not part of this battle"})
	default:
		slog.Error("vote failed", "error", err, "battle", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}
