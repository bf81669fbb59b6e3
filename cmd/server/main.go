package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/config"
	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/logger"
	"github.com/inkwell/internal/router"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logFormat := cfg.Log.Format
	if cfg.IsDevelopment() {
		logFormat = "console"
	}
	logger.Init(cfg.Log.Level, logFormat)
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	gdb, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to initialize database")
	}

	r, err := router.SetupRouter(gdb, cfg.SiteName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up router")
	}

	log.Info().Str("addr", cfg.ListenAddr).Str("driver", cfg.Database.Driver).Msg("starting server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("failed to run server")
	}
}
