package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"regexp"
	"syscall"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"

	"github.com/dskvich/deepgram-telegram-bot/pkg/auth"
	"github.com/dskvich/deepgram-telegram-bot/pkg/database"
	"github.com/dskvich/deepgram-telegram-bot/pkg/deepgram"
	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
	"github.com/dskvich/deepgram-telegram-bot/pkg/logger"
	"github.com/dskvich/deepgram-telegram-bot/pkg/repository"
	"github.com/dskvich/deepgram-telegram-bot/pkg/services"
	"github.com/dskvich/deepgram-telegram-bot/pkg/telegram"
	"github.com/dskvich/deepgram-telegram-bot/pkg/telegram/command"
	"github.com/dskvich/deepgram-telegram-bot/pkg/workers"
)

type Config struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	DeepgramAPIKey   string `env:"DEEPGRAM_API_KEY"`
	AdminUserID      int64  `env:"ADMIN_USER_ID" envDefault:"1578783338"`
	DatabaseURL      string `env:"DATABASE_URL"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	workerGroup, err := setupWorkers()
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return workerGroup.Start(ctx)
}

func setupWorkers() (workers.Group, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	telegramClient, err := telegram.NewClient(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("creating telegram client: %w", err)
	}

	deepgramClient, err := deepgram.NewClient(cfg.DeepgramAPIKey)
	if err != nil {
		return nil, fmt.Errorf("creating deepgram client: %w", err)
	}

	authenticator := auth.NewAuthenticator(cfg.AdminUserID)
	settingsRepository := newSettingsRepository(cfg.DatabaseURL)

	responseCh := make(chan domain.Response)

	transcribeService := services.NewTranscribeService(
		telegramClient,
		telegramClient,
		deepgramClient,
		settingsRepository,
		responseCh,
	)

	analyzeService := services.NewAnalyzeService(
		telegramClient,
		telegramClient,
		deepgramClient,
		settingsRepository,
		responseCh,
	)

	commands := []telegram.Command{
		command.NewStart(settingsRepository, responseCh),
		command.NewHelp(settingsRepository, responseCh),
		command.NewStatus(settingsRepository, responseCh),
		command.NewLang(settingsRepository, responseCh),
		command.NewDetect(settingsRepository, responseCh),
		command.NewModel(settingsRepository, responseCh),
		command.NewSpeechLang(settingsRepository, responseCh),
		command.NewUILanguage(settingsRepository, responseCh),
		command.NewAnStatus(settingsRepository, responseCh),
		command.NewSummarize(settingsRepository, responseCh),
		command.NewTopics(settingsRepository, responseCh),
		command.NewIntents(settingsRepository, responseCh),
		command.NewSentiment(settingsRepository, responseCh),
		command.NewAnLang(settingsRepository, responseCh),
		command.NewAnalyze(settingsRepository, analyzeService, responseCh),
		command.NewAdmin(authenticator, responseCh),
		command.NewAdminStatus(authenticator, settingsRepository, responseCh),
		command.NewAdminGet(authenticator, settingsRepository, responseCh),
		command.NewAdminSet(authenticator, settingsRepository, responseCh),
	}

	handler := telegram.NewHandler(
		telegram.NewCommandHandler(commands),
		transcribeService,
		analyzeService,
		settingsRepository,
		responseCh,
	)

	listener, err := workers.NewTelegramUpdateListener(telegramClient, handler, responseCh)
	if err != nil {
		return nil, fmt.Errorf("creating telegram update listener: %w", err)
	}

	return workers.Group{listener}, nil
}

// SettingsRepository is the storage surface the rest of the bot relies on;
// both the Postgres and the in-memory store satisfy it.
type SettingsRepository interface {
	Get(ctx context.Context, chatID int64) (domain.UserSettings, error)
	Save(ctx context.Context, settings domain.UserSettings) error
	Count(ctx context.Context) (int, error)
	Kind() string
}

// newSettingsRepository picks the backend once at startup: Postgres when a
// reachable DATABASE_URL is configured, in-memory otherwise. An unreachable
// database degrades to in-memory instead of refusing to start.
func newSettingsRepository(databaseURL string) SettingsRepository {
	if databaseURL == "" {
		slog.Info("database not configured; settings will be in-memory only")
		return repository.NewMemorySettingsRepository()
	}

	db, err := database.NewPostgres(databaseURL)
	if err != nil {
		slog.Error("database unavailable; falling back to in-memory settings", logger.Err(err))
		return repository.NewMemorySettingsRepository()
	}

	slog.Info("database connected; settings will be persisted")
	return repository.NewSettingsRepository(db)
}

func loadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing env config: %w", err)
	}

	// Legacy deployments keep both tokens in an info.txt next to the binary.
	if cfg.TelegramBotToken == "" || cfg.DeepgramAPIKey == "" {
		if data, err := os.ReadFile("info.txt"); err == nil {
			tg, dg := parseInfoFile(string(data))
			if cfg.TelegramBotToken == "" {
				cfg.TelegramBotToken = tg
			}
			if cfg.DeepgramAPIKey == "" {
				cfg.DeepgramAPIKey = dg
			}
		}
	}

	var missing []string
	if cfg.TelegramBotToken == "" {
		missing = append(missing, "TELEGRAM_BOT_TOKEN")
	}
	if cfg.DeepgramAPIKey == "" {
		missing = append(missing, "DEEPGRAM_API_KEY")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required configuration: %v", missing)
	}

	return cfg, nil
}

var (
	botTokenRe      = regexp.MustCompile(`(?im)^\s*Bot token:\s*(\S+)\s*$`)
	deepgramTokenRe = regexp.MustCompile(`(?im)^\s*Deepgram token:\s*(\S+)\s*$`)
)

// parseInfoFile extracts "Bot token:" and "Deepgram token:" lines from the
// credentials file. Missing lines yield empty strings.
func parseInfoFile(text string) (telegramToken, deepgramKey string) {
	if m := botTokenRe.FindStringSubmatch(text); m != nil {
		telegramToken = m[1]
	}
	if m := deepgramTokenRe.FindStringSubmatch(text); m != nil {
		deepgramKey = m[1]
	}
	return telegramToken, deepgramKey
}
