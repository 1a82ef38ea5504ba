package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/tomc882/supportchat/api"
	"github.com/tomc882/supportchat/chat"
	"github.com/tomc882/supportchat/domain"
	"github.com/tomc882/supportchat/llm"
	"github.com/tomc882/supportchat/prompt"
	"github.com/tomc882/supportchat/store"
	"github.com/tomc882/supportchat/tests/helpers"
)

// brokenCompleter always fails.
type brokenCompleter struct{}

func (brokenCompleter) Complete(ctx context.Context, promptText string) (*llm.Completion, error) {
	return nil, errors.New("provider down")
}

func newChatContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPostChatFallbackFlow(t *testing.T) {
	e := echo.New()
	s := helpers.NewTestSQLiteStore(t)
	// Empty corpus: a compliant model answers with the fallback sentence.
	h := api.NewHandler(chat.NewPipeline(s, llm.NewMockCompleter(), ""))

	c, rec := newChatContext(e, `{"sessionId":"s1","message":"What are your hours?"}`)
	assert.NoError(t, h.PostChat(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.ChatResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, prompt.Fallback, resp.Reply)
	assert.Greater(t, resp.TokensUsed, 0)
}

func TestPostChatMissingMessage(t *testing.T) {
	e := echo.New()
	s := helpers.NewTestSQLiteStore(t)
	h := api.NewHandler(chat.NewPipeline(s, llm.NewMockCompleter(), ""))

	c, rec := newChatContext(e, `{"sessionId":"s1"}`)
	assert.NoError(t, h.PostChat(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"sessionId and message required"}`, rec.Body.String())

	// No row was created for s1.
	messages, err := s.AllMessages(context.Background(), "s1")
	assert.NoError(t, err)
	assert.Empty(t, messages)
}

func TestPostChatMissingSessionID(t *testing.T) {
	e := echo.New()
	s := helpers.NewTestSQLiteStore(t)
	h := api.NewHandler(chat.NewPipeline(s, llm.NewMockCompleter(), ""))

	c, rec := newChatContext(e, `{"message":"hello"}`)
	assert.NoError(t, h.PostChat(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostChatCompletionFailure(t *testing.T) {
	e := echo.New()
	s := helpers.NewTestSQLiteStore(t)
	h := api.NewHandler(chat.NewPipeline(s, brokenCompleter{}, ""))

	c, rec := newChatContext(e, `{"sessionId":"s1","message":"hello"}`)
	assert.NoError(t, h.PostChat(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"LLM failure"}`, rec.Body.String())

	// The user turn stays persisted even though the reply failed.
	messages, err := s.AllMessages(context.Background(), "s1")
	assert.NoError(t, err)
	if assert.Len(t, messages, 1) {
		assert.Equal(t, domain.RoleUser, messages[0].Role)
		assert.Equal(t, "hello", messages[0].Content)
	}
}

// failingHistoryStore fails only the history read.
type failingHistoryStore struct {
	store.Store
}

func (f *failingHistoryStore) RecentMessages(ctx context.Context, sessionID string, limit int) ([]domain.Message, error) {
	return nil, errors.New("disk on fire")
}

func TestPostChatHistoryFetchFailure(t *testing.T) {
	e := echo.New()
	s := &failingHistoryStore{Store: helpers.NewTestSQLiteStore(t)}
	h := api.NewHandler(chat.NewPipeline(s, llm.NewMockCompleter(), ""))

	c, rec := newChatContext(e, `{"sessionId":"s1","message":"hello"}`)
	assert.NoError(t, h.PostChat(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"DB error"}`, rec.Body.String())
}
