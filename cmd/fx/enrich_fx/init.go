package enrich_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripchat/internal/config"
	"tripchat/internal/services"
	mem "tripchat/pkg/memcache"
	"tripchat/pkg/utils"
)

var Module = fx.Provide(
	provideEntityRecognizer,
	provideEncyclopedia,
	provideReferenceEnricher)

func provideEntityRecognizer() utils.EntityRecognizer {
	return utils.NewProseRecognizer()
}

func provideEncyclopedia(cfg *config.Config, cache mem.LookupCache) utils.Encyclopedia {
	return utils.NewWikipediaClient(utils.WikipediaConfig{
		Language:  cfg.WikipediaLanguage,
		UserAgent: cfg.WikipediaUserAgent,
		BaseURL:   cfg.WikipediaBaseURL,
	}, cache)
}

func provideReferenceEnricher(
	recognizer utils.EntityRecognizer,
	encyclopedia utils.Encyclopedia,
	logger *zap.Logger,
) services.ReferenceEnricherInterface {
	return services.NewReferenceEnricher(recognizer, encyclopedia, logger.Named("references"))
}
