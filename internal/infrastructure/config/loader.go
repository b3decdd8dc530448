package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. PB_LOGGER_LEVEL
const EnvPrefix = "PB"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from the environment's YAML file, the
// .env file and environment variables, in increasing order of precedence
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return load(getEnvironment(), ConfigPaths)
}

func load(env string, paths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	// The YAML file is optional; defaults and env vars are enough to run
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindEnvAliases(v); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	adminIDs, err := parseAdminIDs(v.GetStringSlice("discord.adminIds"))
	if err != nil {
		return nil, err
	}
	config.Discord.AdminIDs = adminIDs

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("discord.embedFooter", "Furnihome")
	v.SetDefault("discord.embedImage", "https://imgur.com/QVmQXpn.png")
	v.SetDefault("discord.mentionDeleteDelay", 1000) // milliseconds
	v.SetDefault("discord.commandTimeout", 10)       // seconds
	v.SetDefault("discord.adminIds", []string{})

	v.SetDefault("server.enabled", false)
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)    // seconds
	v.SetDefault("server.writeTimeout", 15)   // seconds
	v.SetDefault("server.shutdownTimeout", 5) // seconds

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "db/buma.db")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 1)
	v.SetDefault("database.busyTimeout", 5000) // milliseconds
	v.SetDefault("database.queryTimeout", 5)   // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.logLevel", "warn")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.file", "debug.log")
}

// bindEnvAliases lets the unprefixed variables of a plain bot .env file
// stand in for their PB_ counterparts
func bindEnvAliases(v *viper.Viper) error {
	aliases := map[string][]string{
		"discord.token":       {EnvPrefix + "_DISCORD_TOKEN", "DISCORD_TOKEN"},
		"discord.logsChannel": {EnvPrefix + "_DISCORD_LOGSCHANNEL", "POINTS_LOGS_CHANNEL"},
		"discord.adminIds":    {EnvPrefix + "_DISCORD_ADMINIDS", "ADMIN_IDS"},
	}

	for key, envs := range aliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}

// parseAdminIDs accepts YAML lists as well as comma or space separated env values
func parseAdminIDs(raw []string) ([]int64, error) {
	ids := make([]int64, 0, len(raw))
	for _, entry := range raw {
		for _, part := range strings.Split(entry, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid admin id %q: %w", part, err)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// getEnvironment determines the environment to use based on PB_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Discord.MentionDeleteDelay = time.Duration(config.Discord.MentionDeleteDelay) * time.Millisecond
	config.Discord.CommandTimeout = time.Duration(config.Discord.CommandTimeout) * time.Second

	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.BusyTimeout = time.Duration(config.Database.BusyTimeout) * time.Millisecond
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
}
