package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/points-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/points-bot/internal/domain/usecase/authorization"
	"github.com/amirhossein-jamali/points-bot/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/points-bot/internal/domain/usecase/points"
	"github.com/amirhossein-jamali/points-bot/internal/domain/usecase/validation"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/discord"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production || cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		File:       cfg.Logger.File,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	// The store is opened once and injected everywhere below
	dbManager := database.NewManager(databaseConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	if err := dbManager.Migrate(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	ledgerService := ledger.NewService(dbManager.CreateUnitOfWork(), appLogger)
	admins := authorization.NewAdminChecker(cfg.Discord.AdminIDs)
	if admins.Count() == 0 {
		appLogger.Warn("Admin allow-list is empty; every points command will be refused", nil)
	}
	pointsUseCase := points.NewUseCase(
		ledgerService,
		validation.NewPointsValidator(ledgerService),
		admins,
		appLogger,
	)

	session, err := discord.NewSession(cfg.Discord.Token)
	if err != nil {
		appLogger.Error("Failed to create discord session", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	interactionHandler := discord.NewHandler(
		discord.NewSessionGateway(session),
		pointsUseCase,
		tp,
		appLogger,
		discord.HandlerConfig{
			LogsChannelID: cfg.Discord.LogsChannelID,
			Embed: discord.EmbedOptions{
				Footer: cfg.Discord.EmbedFooter,
				Image:  cfg.Discord.EmbedImage,
			},
			MentionDeleteDelay: cfg.Discord.MentionDeleteDelay,
			CommandTimeout:     cfg.Discord.CommandTimeout,
		},
	)

	bot := discord.NewBot(ctx, session, interactionHandler, cfg.Discord.GuildID, appLogger)
	if err := bot.Start(); err != nil {
		appLogger.Error("Failed to start bot", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	var server *http.Server
	if cfg.Server.Enabled {
		server = newOpsServer(cfg, dbManager, ledgerService, tp, appLogger)
		go func() {
			appLogger.Info("Starting ops server", map[string]any{
				"addr": server.Addr,
				"env":  cfg.Environment,
			})
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				appLogger.Error("Ops server stopped", map[string]any{
					"error": err.Error(),
				})
			}
		}()
	}

	appLogger.Info("Bot is running", map[string]any{
		"admins":   admins.Count(),
		"guild_id": cfg.Discord.GuildID,
	})

	<-ctx.Done()
	appLogger.Info("Shutting down...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Running commands finish before the deferred store close
	if err := bot.Stop(shutdownCtx); err != nil {
		appLogger.Error("Failed to stop bot cleanly", map[string]any{
			"error": err.Error(),
		})
	}

	if server != nil {
		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Ops server forced to shutdown", map[string]any{
				"error": err.Error(),
			})
		}
	}

	appLogger.Info("Bot exited gracefully", nil)
}

func databaseConfig(cfg *config.Config) *database.Config {
	dbConfig := database.DefaultConfig()
	dbConfig.Driver = cfg.Database.Driver
	dbConfig.Path = cfg.Database.Path
	dbConfig.Host = cfg.Database.Host
	dbConfig.Port = cfg.Database.Port
	dbConfig.Username = cfg.Database.Username
	dbConfig.Password = cfg.Database.Password
	dbConfig.Database = cfg.Database.Database
	dbConfig.SSLMode = cfg.Database.SSLMode
	dbConfig.MaxOpenConns = cfg.Database.MaxOpenConns
	dbConfig.MaxIdleConns = cfg.Database.MaxOpenConns
	dbConfig.BusyTimeout = cfg.Database.BusyTimeout
	dbConfig.QueryTimeout = cfg.Database.QueryTimeout
	dbConfig.RetryAttempts = cfg.Database.RetryAttempts
	dbConfig.RetryDelay = cfg.Database.RetryDelay
	dbConfig.LogLevel = cfg.Database.LogLevel
	return dbConfig
}

func newOpsServer(
	cfg *config.Config,
	dbManager *database.Manager,
	ledgerService *ledger.Service,
	clock coreport.TimeProvider,
	appLogger coreport.Logger,
) *http.Server {
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.NewRouter(
		appLogger,
		clock,
		handler.NewHealthHandler(dbManager, appLogger),
		handler.NewAccountHandler(ledgerService, appLogger),
	)

	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Discord.Token == "" {
		missingConfigs = append(missingConfigs, "DISCORD_TOKEN")
	}
	if cfg.Discord.LogsChannelID == "" {
		missingConfigs = append(missingConfigs, "POINTS_LOGS_CHANNEL")
	}

	if cfg.Database.Driver == database.DriverPostgres {
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Server.Enabled && cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	switch cfg.Environment {
	case config.Development, config.Production, config.Test:
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
