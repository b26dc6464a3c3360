package main

import (
	"github.com/UJJWAL-7777/Diet-Manager/config"
	"github.com/UJJWAL-7777/Diet-Manager/pkg/logger"
	"github.com/UJJWAL-7777/Diet-Manager/routes"
	"github.com/UJJWAL-7777/Diet-Manager/utils"
)

func main() {
	log := logger.New()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load config", "error", err)
	}

	if err := config.InitDB(cfg); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}

	if err := utils.InitS3(cfg.AWS.Region, cfg.AWS.S3Bucket, cfg.AWS.CloudFrontURL); err != nil {
		log.Warnw("S3 uploads disabled", "error", err)
	}
	if err := utils.InitSES(cfg.AWS.Region, cfg.AWS.SESEmail); err != nil {
		log.Warnw("email sending disabled", "error", err)
	}

	r := routes.SetupRouter(cfg, log)

	log.Infow("server starting", "port", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}
