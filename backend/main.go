package main

import (
	"flag"
	"fmt"
	"os"

	"soft-admin/backend/global"
	"soft-admin/backend/initialize"
	"soft-admin/backend/server"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config (defaults apply when empty)")
		host       = flag.String("host", "", "Override listen host")
		port       = flag.Int("port", 0, "Override listen port")
	)
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init:", err)
		os.Exit(1)
	}

	h := app.Cfg.HTTP.Host
	if *host != "" {
		h = *host
	}
	p := app.Cfg.HTTP.Port
	if *port != 0 {
		p = *port
	}

	global.Logger.Info().Str("host", h).Int("port", p).Str("storage", app.Cfg.Storage).Msg("serving")
	if err := server.StartHTTPServer(h, p, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server")
	}
}
