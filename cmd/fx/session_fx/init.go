package session_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"tripchat/internal/config"
	"tripchat/internal/repositories"
	"tripchat/internal/services"
	"tripchat/pkg/utils"
)

var Module = fx.Provide(
	provideChatSessionRepo,
	provideItineraryService,
	provideChatSessionService)

func provideChatSessionRepo(cfg *config.Config, db *gorm.DB, logger *zap.Logger) repositories.ChatSessionRepository {
	logger.Info("Initializing session store", zap.String("store", cfg.SessionStore))
	if cfg.SessionStore == config.StorePostgres {
		return repositories.NewChatSessionRepository(db)
	}
	return repositories.NewMemoryChatSessionRepository(cfg.SessionTTL)
}

func provideItineraryService(
	chat utils.ChatClient,
	allocator services.AllocationExtractor,
	detector services.CommandDetector,
	prompts services.PromptBuilderInterface,
	references services.ReferenceEnricherInterface,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(chat, allocator, detector, prompts, references, logger.Named("itinerary"))
}

func provideChatSessionService(
	repo repositories.ChatSessionRepository,
	itinerary services.ItineraryServiceInterface,
	logger *zap.Logger,
) services.ChatSessionServiceInterface {
	return services.NewChatSessionService(repo, itinerary, logger.Named("sessions"))
}
