package main

import (
	"context"
	"log"
	_ "time/tzdata"

	"pomodoro-bot-be/internal/bootstrap"
	"pomodoro-bot-be/internal/config"
	"pomodoro-bot-be/internal/model"
	"pomodoro-bot-be/internal/server"
	"pomodoro-bot-be/internal/tracer"
	"pomodoro-bot-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.Note{}, &model.IngestionEntry{}); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Start Background Services
	if err := container.TimerConsumerService.Consume(context.Background()); err != nil {
		log.Panicf("Unable to start timer consumer: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
