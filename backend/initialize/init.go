package initialize

import (
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"soft-admin/backend/app/controllers"
	"soft-admin/backend/app/middleware"
	"soft-admin/backend/app/services"
	"soft-admin/backend/app/session"
	"soft-admin/backend/app/store"
	"soft-admin/backend/app/store/filestore"
	"soft-admin/backend/app/store/redistore"
	"soft-admin/backend/app/store/sqlitestore"
	"soft-admin/backend/config"
	"soft-admin/backend/global"
	"soft-admin/backend/router"
)

type App struct {
	Cfg       *config.Config
	Router    http.Handler
	Sessions  *session.Store
	Users     *services.UserService
	Softwares *services.SoftwareService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		global.Logger = global.Logger.Level(lvl)
	}

	// Storage adapters. The registry logic itself is backend-agnostic.
	var docs store.Store
	var blobs store.BlobStore
	switch cfg.Storage {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		global.Rdb = rdb
		docs = redistore.NewStore(rdb, cfg.Redis.Key)
		blobs = redistore.NewBlobStore(rdb, cfg.Redis.BlobPrefix)
	case "sqlite":
		gdb, err := sqlitestore.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		docs = sqlitestore.NewStore(gdb)
		blobs = sqlitestore.NewBlobStore(gdb)
	default:
		fs, err := filestore.NewStore(cfg.File.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open file store: %w", err)
		}
		fb, err := filestore.NewBlobStore(cfg.File.UploadDir)
		if err != nil {
			return nil, fmt.Errorf("open upload dir: %w", err)
		}
		docs = fs
		blobs = fb
	}

	// Sessions live in this process only; a restart logs everyone out.
	sessions := session.NewStore()

	userSvc := services.NewUserService(docs, sessions)
	softSvc := services.NewSoftwareService(docs, blobs)

	authCtrl := controllers.NewAuthController(userSvc)
	softCtrl := controllers.NewSoftwareController(softSvc)
	mw := &middleware.Auth{Sessions: sessions}

	h := router.New(authCtrl, softCtrl, mw, cfg.PublicDir)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, Router: h, Sessions: sessions, Users: userSvc, Softwares: softSvc}, nil
}
