package global

import (
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"soft-admin/backend/config"
)

var (
	Config *config.Config
	Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	Rdb    *redis.Client
)
