// Package gui hosts the local HTTP backend the desktop front end talks
// to. It exposes the command pipeline, an aggregated status endpoint
// and a websocket stream of periodic stat snapshots.
package gui

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"jarvis/internal/app"
	"jarvis/internal/domain"
)

const statsPushInterval = 2 * time.Second

// Server wraps the gin engine and the underlying http.Server so the
// caller can shut it down gracefully.
type Server struct {
	container *app.Container
	srv       *http.Server
	upgrader  websocket.Upgrader
}

func NewServer(container *app.Container) *Server {
	s := &Server{
		container: container,
		upgrader: websocket.Upgrader{
			// Local desktop front end only; the listener binds loopback.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"http://localhost", "http://127.0.0.1"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	api := router.Group("/api")
	{
		api.POST("/command", s.handleCommand)
		api.GET("/status", s.handleStatus)
	}
	router.GET("/ws/stats", s.handleStatsStream)

	cfg := container.Config.Server
	s.srv = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler: router,
	}
	return s
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.container.Logger.Info("gui backend listening", map[string]interface{}{"addr": s.srv.Addr})
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests with a bounded deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

type commandRequest struct {
	Text      string `json:"text" binding:"required"`
	SessionID string `json:"session_id"`
}

func (s *Server) handleCommand(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "text is required"})
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	cmd := domain.NewCommand(req.Text, req.SessionID)
	resp := s.container.Assistant.Process(c.Request.Context(), cmd)
	c.JSON(http.StatusOK, gin.H{
		"session_id": req.SessionID,
		"response":   resp,
	})
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.snapshot())
}

// handleStatsStream upgrades to a websocket and pushes stat snapshots
// until the client goes away.
func (s *Server) handleStatsStream(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.container.Logger.Warn("websocket upgrade failed", map[string]interface{}{"error": err.Error()})
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(statsPushInterval)
	defer ticker.Stop()

	for {
		if err := conn.WriteJSON(s.snapshot()); err != nil {
			return
		}
		select {
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Server) snapshot() gin.H {
	return gin.H{
		"timestamp": time.Now().Format(domain.TimestampFormat),
		"system":    s.container.System.State(),
		"hardware":  s.container.Hardware.State(),
		"network":   s.container.Network.Status(),
		"learning":  s.container.Recorder.RecentContext(),
		"security":  s.container.Security.Status(),
	}
}
