package bootstrap

import (
	"context"
	"log"

	"pomodoro-bot-be/internal/config"
	"pomodoro-bot-be/internal/controller"
	"pomodoro-bot-be/internal/pkg/logger"
	"pomodoro-bot-be/internal/repository/contract"
	"pomodoro-bot-be/internal/repository/implementation"
	"pomodoro-bot-be/internal/repository/memory"
	"pomodoro-bot-be/internal/service"
	pktNats "pomodoro-bot-be/pkg/nats"
	"pomodoro-bot-be/pkg/telegram"
	"pomodoro-bot-be/pkg/timer"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	WebhookController controller.IWebhookController

	// Background Services (Exposed for main.go to run)
	TimerConsumerService service.ITimerConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus (timer-done delivery)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS (best-effort session.completed fan-out)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis session store; fall back to the in-memory store when unreachable
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)

	var sessionRepo contract.SessionRepository
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Sessions will not survive restarts", err)
		sessionRepo = memory.NewSessionRepository()
	} else {
		sessionRepo = implementation.NewSessionRepository(rdb)
	}

	noteRepo := implementation.NewNoteRepository(db)
	ingestionRepo := implementation.NewIngestionRepository(db)

	// 3. Services
	archiveService := service.NewNoteArchiveService(noteRepo)
	ingestionService := service.NewIngestionService(ingestionRepo)

	tgClient := telegram.NewClient(cfg.Telegram.BotToken)
	timerService := timer.NewScheduler(pubSub, cfg.Bot.TimerDoneTopic)

	var publisher service.IEventPublisher
	if natsPub != nil {
		publisher = natsPub
	}

	dispatcherService := service.NewDispatcherService(
		cfg.Bot.AdminChatID,
		tgClient,
		sessionRepo,
		timerService,
		archiveService,
		ingestionService,
		publisher,
		sysLogger,
	)

	timerConsumerService := service.NewTimerConsumerService(
		pubSub,
		cfg.Bot.TimerDoneTopic,
		dispatcherService,
		sysLogger,
	)

	// 4. Controllers
	webhookController := controller.NewWebhookController(
		dispatcherService,
		cfg.Telegram.WebhookSecret,
		sysLogger,
	)

	return &Container{
		WebhookController:    webhookController,
		TimerConsumerService: timerConsumerService,
		Logger:               sysLogger,
	}
}
