// Package server wires the HTTP surface: routing, middleware, request
// binding, and the mapping from service errors to status codes.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vibe-awards/internal/auth"
	"vibe-awards/internal/config"
	"vibe-awards/internal/engagement"
	"vibe-awards/internal/query"
)

type Server struct {
	db      *gorm.DB
	cfg     config.Config
	engage  *engagement.Service
	queries *query.Service
	tokens  *auth.TokenIssuer
	limiter *rateLimiter
}

func New(conn *gorm.DB, cfg config.Config) *Server {
	perSecond := float64(cfg.RateLimitMaxRequests) / float64(cfg.RateLimitWindowSeconds)
	return &Server{
		db:      conn,
		cfg:     cfg,
		engage:  engagement.NewService(conn),
		queries: query.NewService(conn),
		tokens:  auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour),
		limiter: newRateLimiter(perSecond, cfg.RateLimitMaxRequests),
	}
}

func (s *Server) Handler() http.Handler {
	registerValidators()

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), s.corsMiddleware(), s.logMiddleware())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	api.Use(s.rateLimitMiddleware(), s.authMiddleware())
	{
		api.POST("/auth/register", s.handleRegister)
		api.POST("/auth/login", s.handleLogin)

		api.GET("/apps", s.handleListApps)
		api.GET("/apps/:id", s.handleGetApp)
		api.POST("/apps", s.handleCreateApp)
		api.POST("/apps/:id/like", s.handleLikeApp)
		api.POST("/apps/:id/nominate", s.handleNominateApp)

		api.GET("/battles", s.handleListBattles)
		api.GET("/battles/current", s.handleCurrentBattle)
		api.POST("/battles/:id/vote", s.handleVote)

		api.GET("/collaboration/posts", s.handleListPosts)
		api.GET("/collaboration/posts/:id", s.handleGetPost)
		api.POST("/collaboration/posts", s.handleCreatePost)
		api.POST("/collaboration/posts/:id/interest", s.handleExpressInterest)
	}

	return engine
}
