package api

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tomc882/supportchat/domain"
)

// read-only accessors over persisted conversations

// GetConversation returns the full ordered history for a session. Unknown
// sessions return an empty array.
// GET /api/conversations/:sessionId
func (h *Handler) GetConversation(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("sessionId")

	messages, err := h.pipeline.History(ctx, sessionID)
	if err != nil {
		log.Printf("ERROR: failed to get conversation %s: %v", sessionID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB error"})
	}

	if messages == nil {
		messages = []domain.Message{}
	}
	return c.JSON(http.StatusOK, messages)
}

// GetSessions returns all sessions ordered by recency.
// GET /api/sessions
func (h *Handler) GetSessions(c echo.Context) error {
	ctx := c.Request().Context()

	sessions, err := h.pipeline.Sessions(ctx)
	if err != nil {
		log.Printf("ERROR: failed to list sessions: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB error"})
	}

	if sessions == nil {
		sessions = []domain.Session{}
	}
	return c.JSON(http.StatusOK, sessions)
}
