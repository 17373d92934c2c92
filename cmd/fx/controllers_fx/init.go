package controllers_fx

import (
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripchat/internal/api/controllers"
	"tripchat/internal/config"
	"tripchat/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(provideSessionTokenIssuer),
	fx.Provide(controllers.NewSessionController))

func provideSessionTokenIssuer(cfg *config.Config, logger *zap.Logger) *utils.SessionTokenIssuer {
	secret := cfg.JWTSecret
	if secret == "" {
		// tokens will not survive a restart
		logger.Warn("JWT_SECRET not set, using a random per-process secret")
		secret = uuid.NewString() + uuid.NewString()
	}
	return utils.NewSessionTokenIssuer(secret, cfg.TokenTTL)
}
