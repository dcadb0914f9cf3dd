package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

const DefaultPath = "configs/server.toml"

type Server struct {
	Debug    bool   `toml:"debug_mode"`
	LogLevel string `toml:"log_level"`
}

type Storage struct {
	SqliteFile string `toml:"sqlite_file"`
}

type Engine struct {
	AutoAdvance           bool   `toml:"auto_advance"`
	SeedingMethod         string `toml:"seeding_method"`
	PromotionMinMatches   int    `toml:"promotion_min_matches"`
	PromotionCooldownDays int    `toml:"promotion_cooldown_days"`
}

type Config struct {
	Server  Server  `toml:"server"`
	Storage Storage `toml:"storage"`
	Engine  Engine  `toml:"engine"`
}

func defaults() Config {
	return Config{
		Server:  Server{LogLevel: "info"},
		Storage: Storage{SqliteFile: "tournament.sqlite"},
		Engine: Engine{
			AutoAdvance:           true,
			SeedingMethod:         "ranked",
			PromotionMinMatches:   10,
			PromotionCooldownDays: 7,
		},
	}
}

func New() (Config, error) {
	return Load(DefaultPath)
}

// Load decodes the file at path over the defaults. TOURNAMENT_SQLITE_FILE
// overrides the database file.
func Load(path string) (Config, error) {
	cfg := defaults()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	file := os.Getenv("TOURNAMENT_SQLITE_FILE")
	if file != "" {
		cfg.Storage.SqliteFile = file
	}
	return cfg, nil
}
