package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vibe-awards/internal/db"
	"vibe-awards/internal/engagement"
	"vibe-awards/internal/query"
)

func (s *Server) handleListApps(c *gin.Context) {
	limit, offset := parseLimitOffset(c, defaultAppLimit, maxAppLimit)
	apps, total, err := s.queries.ListApps(query.AppFilter{
		Category: c.Query("category"),
		Featured: c.Query("featured") == "true",
		Trending: c.Query("trending") == "true",
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		slog.Error("list apps failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"apps": apps, "total": total})
}

func (s *Server) handleGetApp(c *gin.Context) {
	app, err := s.queries.GetApp(c.Param("id"))
	if err != nil {
		if errors.Is(err, query.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "App not found"})
			return
		}
		slog.Error("get app failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, app)
}

func (s *Server) handleCreateApp(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req createAppRequest
	if !bindJSON(c, &req, nil, "Missing required fields") {
		return
	}

	app := db.App{
		UUID:             uuid.NewString(),
		Name:             req.Name,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		DeveloperID:      user.UserID,
		Category:         req.Category,
		Platform:         req.Platform,
		IconURL:          req.IconURL,
		WebsiteURL:       req.WebsiteURL,
		AppStoreURL:      req.AppStoreURL,
		DemoVideoURL:     req.DemoVideoURL,
		Status:           db.AppStatusPending,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&app).Error; err != nil {
			return err
		}
		for i, shot := range req.Screenshots {
			record := db.AppScreenshot{
				AppID:      app.ID,
				URL:        shot.URL,
				Caption:    shot.Caption,
				OrderIndex: i,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		for _, feature := range req.Features {
			if feature == "" {
				continue
			}
			record := db.AppFeature{AppID: app.ID, FeatureName: feature}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("app insert failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	slog.Info("app submitted", "app_id", app.ID, "developer_id", user.UserID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "App submitted successfully",
		"app": gin.H{
			"id":     app.ID,
			"uuid":   app.UUID,
			"name":   app.Name,
			"status": app.Status,
		},
	})
}

func (s *Server) handleLikeApp(c *gin.Context) {
	actor := actingIdentity(c)
	liked, err := s.engage.ToggleLike(actor, c.Param("id"))
	if err != nil {
		if errors.Is(err, engagement.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "App not found"})
			return
		}
		slog.Error("toggle like failed", "error", err, "app", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	message := "Like removed"
	if liked {
		message = "App liked"
	}
	slog.Info("like toggled", "app", c.Param("id"), "identity", actor, "liked", liked)
	c.JSON(http.StatusOK, gin.H{"message": message, "liked": liked})
}

func (s *Server) handleNominateApp(c *gin.Context) {
	actor := actingIdentity(c)
	err := s.engage.Nominate(actor, c.Param("id"))
	switch {
	case err == nil:
		slog.Info("app nominated", "app", c.Param("id"), "identity", actor)
		c.JSON(http.StatusOK, gin.H{"message": "App nominated for battle"})
	case errors.Is(err, engagement.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "App not found"})
	case errors.Is(err, engagement.ErrAlreadyNominated):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already nominated this app"})
	default:
		slog.Error("nominate failed", "error", err, "app", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}
