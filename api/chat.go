package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tomc882/supportchat/chat"
	"github.com/tomc882/supportchat/domain"
)

// PostChat runs one chat turn.
// POST /api/chat
func (h *Handler) PostChat(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "sessionId and message required"})
	}

	resp, err := h.pipeline.Send(ctx, req.SessionID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrValidation):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "sessionId and message required"})
		case errors.Is(err, chat.ErrStorage):
			log.Printf("ERROR: chat turn failed for session %s: %v", req.SessionID, err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB error"})
		default:
			log.Printf("ERROR: chat turn failed for session %s: %v", req.SessionID, err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "LLM failure"})
		}
	}

	return c.JSON(http.StatusOK, resp)
}
