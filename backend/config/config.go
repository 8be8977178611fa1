package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type File struct {
	DBPath    string
	UploadDir string
}

type Redis struct {
	Addr       string
	Password   string
	DB         int
	Key        string
	BlobPrefix string
}

type SQLite struct {
	Path string
}

type Config struct {
	HTTP      HTTP
	Storage   string
	File      File
	Redis     Redis
	SQLite    SQLite
	PublicDir string
	LogLevel  string
}

// Load reads the YAML config at path. An empty path yields the defaults,
// so the server runs out of the box with the file backend.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("backend.host", "0.0.0.0")
	v.SetDefault("backend.port", 3000)
	v.SetDefault("backend.storage", "file")
	v.SetDefault("backend.file.db_path", "db.json")
	v.SetDefault("backend.file.upload_dir", "uploads")
	v.SetDefault("backend.redis.addr", "127.0.0.1:6379")
	v.SetDefault("backend.redis.password", "")
	v.SetDefault("backend.redis.db", 0)
	v.SetDefault("backend.redis.key", "soft-admin:db")
	v.SetDefault("backend.redis.blob_prefix", "soft-admin:upload:")
	v.SetDefault("backend.sqlite.path", "soft-admin.db")
	v.SetDefault("backend.public_dir", "public")
	v.SetDefault("backend.log_level", "info")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	storage := v.GetString("backend.storage")
	switch storage {
	case "file", "redis", "sqlite":
	default:
		return nil, fmt.Errorf("unknown storage backend %q", storage)
	}

	cfg := &Config{
		HTTP:    HTTP{Host: v.GetString("backend.host"), Port: v.GetInt("backend.port")},
		Storage: storage,
		File: File{
			DBPath:    v.GetString("backend.file.db_path"),
			UploadDir: v.GetString("backend.file.upload_dir"),
		},
		Redis: Redis{
			Addr:       v.GetString("backend.redis.addr"),
			Password:   v.GetString("backend.redis.password"),
			DB:         v.GetInt("backend.redis.db"),
			Key:        v.GetString("backend.redis.key"),
			BlobPrefix: v.GetString("backend.redis.blob_prefix"),
		},
		SQLite:    SQLite{Path: v.GetString("backend.sqlite.path")},
		PublicDir: v.GetString("backend.public_dir"),
		LogLevel:  v.GetString("backend.log_level"),
	}
	return cfg, nil
}
