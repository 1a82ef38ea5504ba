// Package api provides HTTP handlers for the support chat backend.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tomc882/supportchat/chat"
)

// Handler handles HTTP requests.
type Handler struct {
	pipeline *chat.Pipeline
}

// NewHandler creates a new handler.
func NewHandler(pipeline *chat.Pipeline) *Handler {
	return &Handler{pipeline: pipeline}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/chat", h.PostChat)
	e.GET("/api/conversations/:sessionId", h.GetConversation)
	e.GET("/api/sessions", h.GetSessions)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
