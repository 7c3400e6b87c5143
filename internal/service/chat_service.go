package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"course-advisor-be/internal/constant"
	"course-advisor-be/internal/dto"
	"course-advisor-be/internal/pkg/logger"
	"course-advisor-be/internal/repository/memory"
	"course-advisor-be/pkg/dialogue"
	"course-advisor-be/pkg/lexicon"
)

// IChatService defines the chat service interface
type IChatService interface {
	Chat(ctx context.Context, sessionID string, request *dto.ChatRequest) (*dto.ChatResponse, error)
	ListCategories(ctx context.Context) []string
	GetCategoryDetails(ctx context.Context) []*dto.CategoryDetailResponse
	ActiveSessionCount() int
}

type chatService struct {
	lex      *lexicon.Lexicon
	engine   *dialogue.Engine
	sessions *memory.SessionRepository
	logger   logger.ILogger
}

func NewChatService(
	lex *lexicon.Lexicon,
	engine *dialogue.Engine,
	sessions *memory.SessionRepository,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		lex:      lex,
		engine:   engine,
		sessions: sessions,
		logger:   sysLogger,
	}
}

// Chat handles one conversational turn. A missing session id gets a fresh
// one synthesized; the id is always echoed back so the client can carry the
// conversation forward. Every branch produces a textual response.
func (cs *chatService) Chat(ctx context.Context, sessionID string, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	message := strings.TrimSpace(request.Message)

	// Empty input: fixed prompt, no session mutation, no turn counted.
	if message == "" {
		return &dto.ChatResponse{
			Response:  constant.EmptyInputPrompt,
			SessionID: sessionID,
			Status:    constant.ChatStatusWaitingForInput,
		}, nil
	}

	// Farewell wins over greeting when both phrases appear, matching the
	// check order the conversation flow has always used.
	if cs.engine.IsFarewell(message) {
		state := cs.sessions.GetOrCreate(sessionID)
		report := cs.engine.FinalReport(state)
		cs.sessions.Remove(sessionID)
		cs.logger.Info("chat", "session ended", map[string]interface{}{
			"session_id": sessionID,
			"turns":      state.TurnCount,
		})
		return &dto.ChatResponse{
			Response:  report,
			SessionID: sessionID,
			Status:    constant.ChatStatusSessionEnded,
		}, nil
	}

	if cs.engine.IsGreeting(message) {
		cs.sessions.Reset(sessionID)
		return &dto.ChatResponse{
			Response:  cs.engine.GreetingReply(),
			SessionID: sessionID,
			Status:    constant.ChatStatusActive,
		}, nil
	}

	// Substantive turn. The update closure stages the mutation; a panic in
	// normalization or scoring surfaces as an error and nothing is committed.
	var reply string
	err := cs.sessions.Update(sessionID, func(state *dialogue.State) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("turn processing failed: %v", r)
			}
		}()
		reply = cs.engine.ProcessTurn(state, message)
		return nil
	})
	if err != nil {
		cs.logger.Error("chat", "turn processing failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return &dto.ChatResponse{
			Response:  constant.ProcessingFailure,
			SessionID: sessionID,
			Status:    constant.ChatStatusActive,
		}, nil
	}

	return &dto.ChatResponse{
		Response:  reply,
		SessionID: sessionID,
		Status:    constant.ChatStatusActive,
	}, nil
}

// ListCategories returns category identifiers in their fixed order.
func (cs *chatService) ListCategories(_ context.Context) []string {
	categories := cs.lex.Categories()
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, string(c))
	}
	return out
}

// GetCategoryDetails returns blurb and career titles per category, in
// enumeration order.
func (cs *chatService) GetCategoryDetails(_ context.Context) []*dto.CategoryDetailResponse {
	categories := cs.lex.Categories()
	out := make([]*dto.CategoryDetailResponse, 0, len(categories))
	for _, c := range categories {
		info, ok := cs.lex.Info(c)
		if !ok {
			continue
		}
		careers := make([]string, len(info.Careers))
		copy(careers, info.Careers)
		out = append(out, &dto.CategoryDetailResponse{
			Category: string(c),
			Blurb:    info.Blurb,
			Careers:  careers,
		})
	}
	return out
}

// ActiveSessionCount reports the live session count for health checks.
func (cs *chatService) ActiveSessionCount() int {
	return cs.sessions.Count()
}
