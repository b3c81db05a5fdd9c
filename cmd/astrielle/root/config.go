package root

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"astrielle/internal/catalog"
	"astrielle/internal/engine"
)

// Config is the driver-level environment surface. The engine itself reads
// no environment; this only steers the demo commands.
type Config struct {
	CatalogPath string `env:"ASTRIELLE_CATALOG"`
	Player      string `env:"ASTRIELLE_PLAYER" envDefault:"Astrielle Pilot"`
	Seed        uint64 `env:"ASTRIELLE_SEED"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// newSession builds a fresh session from the configured catalog. A zero
// seed selects the crypto-backed random source.
func newSession(cfg Config) (*engine.Session, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	var rng engine.RandomSource
	if cfg.Seed != 0 {
		rng = engine.NewSeededSource(cfg.Seed)
	}

	return engine.NewSession(engine.SessionConfig{
		Name:       cfg.Player,
		Catalog:    cat.Items,
		Weights:    cat.Weights,
		Rates:      cat.Rates,
		GatedGames: cat.Games,
		IdleName:   cat.IdleName,
		RNG:        rng,
	})
}
