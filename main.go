package main

import (
	"flag"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/configs"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/middlewares"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/logger"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/mailer"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/repository"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/routes"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/services"
)

func main() {
	backfill := flag.Bool("backfill-earnings", false, "reconcile earnings for completed orders and exit")
	dryRun := flag.Bool("dry-run", false, "with -backfill-earnings: report counts without writing")
	flag.Parse()

	cfg := configs.LoadConfig()
	logger.Init(cfg.Env, cfg.LogLevel)

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		logger.L().Fatal("failed to connect database", zap.Error(err))
	}
	if err := configs.SetupDatabase(db); err != nil {
		logger.L().Fatal("migration failed", zap.Error(err))
	}

	if *backfill {
		res, err := services.BackfillEarnings(db, repository.NewEarningRepository(db), *dryRun)
		if err != nil {
			logger.L().Fatal("backfill failed", zap.Error(err))
		}
		logger.L().Info("earnings backfill finished",
			zap.Bool("dry_run", *dryRun),
			zap.Int("created", res.Created),
			zap.Int("updated", res.Updated))
		return
	}

	if err := configs.SeedAdmin(db, cfg); err != nil {
		logger.L().Fatal("seed admin failed", zap.Error(err))
	}

	var mail mailer.Mailer
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.EmailFrom)
	} else {
		mail = mailer.LogMailer{}
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestIDMiddleware())
	r.Use(logger.Middleware())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.MetricsMiddleware())

	routes.RegisterRoutes(r, db, cfg, mail)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.L().Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
