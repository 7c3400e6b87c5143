package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-advisor-be/internal/constant"
	"course-advisor-be/internal/dto"
	"course-advisor-be/internal/pkg/serverutils"
	"course-advisor-be/internal/repository/memory"
	"course-advisor-be/internal/service"
	"course-advisor-be/pkg/dialogue"
	"course-advisor-be/pkg/lexicon"
	"course-advisor-be/pkg/scorer"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	lex := lexicon.New()
	turnScorer, err := scorer.New(lex)
	require.NoError(t, err)
	engine := dialogue.NewEngine(lex, turnScorer, dialogue.Options{})
	sessions := memory.NewSessionRepository(0, func(id string) *dialogue.State {
		return dialogue.NewState(id, lex.Categories())
	})
	chatService := service.NewChatService(lex, engine, sessions, nopLogger{})

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewChatController(chatService).RegisterRoutes(api)
	NewHealthController(chatService).RegisterRoutes(api)
	return app
}

func postChat(t *testing.T, app *fiber.App, sessionID, message string) (*http.Response, *dto.ChatResponse) {
	t.Helper()

	body, err := json.Marshal(dto.ChatRequest{Message: message})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/chat/v1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(constant.SessionIDHeader, sessionID)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var parsed dto.ChatResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, &parsed
}

func TestChatEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, parsed := postChat(t, app, "turn-test", "I enjoy writing and literature")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, constant.ChatStatusActive, parsed.Status)
	assert.Equal(t, "turn-test", parsed.SessionID)
	assert.NotEmpty(t, parsed.Response)

	resp, parsed = postChat(t, app, "turn-test", "bye")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, constant.ChatStatusSessionEnded, parsed.Status)
}

func TestChatEndpointSynthesizesSessionID(t *testing.T) {
	app := newTestApp(t)

	resp, parsed := postChat(t, app, "", "hello")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, parsed.SessionID)
}

func TestChatEndpointRejectsBadBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat/v1", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCategoriesEndpoint(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/v1/categories", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed struct {
		Success bool     `json:"success"`
		Data    []string `json:"data"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.True(t, parsed.Success)
	assert.Equal(t, []string{"btech", "bsc", "ba", "bba", "bcom"}, parsed.Data)
}

func TestCategoryDetailsEndpoint(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/v1/categories/details", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed struct {
		Data []dto.CategoryDetailResponse `json:"data"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))
	require.Len(t, parsed.Data, 5)
	for _, d := range parsed.Data {
		assert.NotEmpty(t, d.Blurb)
		assert.NotEmpty(t, d.Careers)
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	postChat(t, app, "h1", "I like finance")

	req := httptest.NewRequest(http.MethodGet, "/api/health/v1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed dto.HealthResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "ok", parsed.Status)
	assert.Equal(t, 1, parsed.ActiveSessions)
}
