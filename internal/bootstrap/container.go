package bootstrap

import (
	"log"

	"course-advisor-be/internal/config"
	"course-advisor-be/internal/controller"
	"course-advisor-be/internal/pkg/logger"
	"course-advisor-be/internal/repository/memory"
	"course-advisor-be/internal/service"
	"course-advisor-be/pkg/dialogue"
	"course-advisor-be/pkg/lexicon"
	"course-advisor-be/pkg/scorer"
)

type Container struct {
	// Controllers
	ChatController   controller.IChatController
	HealthController controller.IHealthController

	// Exposed for the CLI and for graceful shutdown
	ChatService service.IChatService
	Logger      logger.ILogger
}

// NewContainer wires the whole dependency graph. The lexicon and the fitted
// vector space are built exactly once here and handed down as immutable
// values; nothing else constructs them.
func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	lex := lexicon.New()

	turnScorer, err := scorer.New(lex)
	if err != nil {
		log.Panicf("Unable to fit category vector space: %v", err)
	}

	engine := dialogue.NewEngine(lex, turnScorer, dialogue.Options{
		Weighting:       dialogue.PolicyFromName(cfg.Advice.WeightingPolicy),
		ReportThreshold: cfg.Advice.ReportThreshold,
	})

	sessionRepo := memory.NewSessionRepository(cfg.Advice.SessionIdleTTL, func(id string) *dialogue.State {
		return dialogue.NewState(id, lex.Categories())
	})

	chatService := service.NewChatService(lex, engine, sessionRepo, sysLogger)

	sysLogger.Info("bootstrap", "container initialized", map[string]interface{}{
		"weighting_policy": cfg.Advice.WeightingPolicy,
		"session_idle_ttl": cfg.Advice.SessionIdleTTL.String(),
	})

	return &Container{
		ChatController:   controller.NewChatController(chatService),
		HealthController: controller.NewHealthController(chatService),
		ChatService:      chatService,
		Logger:           sysLogger,
	}
}
