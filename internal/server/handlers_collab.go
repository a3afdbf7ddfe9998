package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vibe-awards/internal/db"
	"vibe-awards/internal/engagement"
	"vibe-awards/internal/query"
)

func (s *Server) handleListPosts(c *gin.Context) {
	limit, offset := parseLimitOffset(c, defaultPostLimit, maxPostLimit)
	posts, total, err := s.queries.ListPosts(query.PostFilter{
		Category: c.Query("category"),
		Stage:    c.Query("stage"),
		Type:     c.Query("type"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		slog.Error("list posts failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts, "total": total})
}

func (s *Server) handleGetPost(c *gin.Context) {
	post, err := s.queries.GetPost(c.Param("id"))
	if err != nil {
		if errors.Is(err, query.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collaboration post not found"})
			return
		}
		slog.Error("get post failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (s *Server) handleCreatePost(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req createPostRequest
	if !bindJSON(c, &req, nil, "Missing required fields") {
		return
	}

	post := db.CollaborationPost{
		UUID:              uuid.NewString(),
		UserID:            user.UserID,
		Title:             req.Title,
		Description:       req.Description,
		ProjectStage:      req.ProjectStage,
		CollaborationType: req.CollaborationType,
		SkillsNeeded:      req.SkillsNeeded,
		ProjectCategory:   req.ProjectCategory,
		TechStack:         req.TechStack,
		RepoURL:           req.RepoURL,
		DemoURL:           req.DemoURL,
		ContactMethod:     req.ContactMethod,
		EquityOffered:     req.EquityOffered,
		PaidOpportunity:   req.PaidOpportunity,
		TimeCommitment:    req.TimeCommitment,
		Deadline:          req.Deadline,
		Status:            db.PostStatusOpen,
	}
	if err := s.db.Create(&post).Error; err != nil {
		slog.Error("post insert failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	slog.Info("collaboration post created", "post_id", post.ID, "user_id", user.UserID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Collaboration post created successfully",
		"post": gin.H{
			"id":     post.ID,
			"uuid":   post.UUID,
			"title":  post.Title,
			"status": post.Status,
		},
	})
}

func (s *Server) handleExpressInterest(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req interestRequest
	if !bindJSON(c, &req, nil, "invalid request") {
		return
	}

	err := s.engage.ExpressInterest(user.UserID, c.Param("id"), req.Message, req.PortfolioURL, req.ContactInfo)
	switch {
	case err == nil:
		slog.Info("interest expressed", "post", c.Param("id"), "user_id", user.UserID)
		c.JSON(http.StatusOK, gin.H{"message": "Interest expressed successfully"})
	case errors.Is(err, engagement.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Collaboration post not found"})
	case errors.Is(err, engagement.ErrAlreadyInterested):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already expressed interest in this post"})
	default:
		slog.Error("express interest failed", "error", err, "post", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}
