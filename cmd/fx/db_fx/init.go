package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripchat/internal/config"
	"tripchat/internal/infra"
)

var Module = fx.Provide(
	provideDB)

// provideDB connects only when sessions are stored in postgres; the
// in-memory store gets a nil *gorm.DB.
func provideDB(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	if cfg.SessionStore != config.StorePostgres {
		return nil, nil
	}

	db, err := infra.InitPostgresql(cfg.PostgresURL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		infra.ClosePostgresql(db)
	}))
	return db, nil
}
