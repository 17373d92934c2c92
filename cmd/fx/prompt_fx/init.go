// cmd/fx/prompt_fx/init.go
package prompt_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripchat/internal/config"
	"tripchat/internal/services"
	"tripchat/pkg/utils"
)

var Module = fx.Provide(
	ProvideChatClient,
	services.NewPromptBuilder,
	services.NewAllocationExtractor,
	services.NewCommandDetector)

// ProvideChatClient creates a chat client for the configured provider
func ProvideChatClient(cfg *config.Config, logger *zap.Logger) (utils.ChatClient, error) {
	logger.Info("Initializing chat client",
		zap.String("provider", cfg.LLMProvider),
		zap.String("model", cfg.Model()))

	return utils.NewChatClient(cfg.LLMProvider, cfg.APIKey(), cfg.Model())
}
