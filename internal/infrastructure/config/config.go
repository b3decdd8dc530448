package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Discord     DiscordConfig  `mapstructure:"discord"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
}

// DiscordConfig contains gateway and command settings
type DiscordConfig struct {
	Token              string        `mapstructure:"token"`
	LogsChannelID      string        `mapstructure:"logsChannel"`
	GuildID            string        `mapstructure:"guildId"` // empty registers commands globally
	AdminIDs           []int64       `mapstructure:"-"`
	EmbedFooter        string        `mapstructure:"embedFooter"`
	EmbedImage         string        `mapstructure:"embedImage"`
	MentionDeleteDelay time.Duration `mapstructure:"mentionDeleteDelay"` // milliseconds
	CommandTimeout     time.Duration `mapstructure:"commandTimeout"`     // seconds
}

// ServerConfig contains the ops HTTP server settings
type ServerConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"readTimeout"`     // seconds
	WriteTimeout    time.Duration `mapstructure:"writeTimeout"`    // seconds
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"` // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver        string        `mapstructure:"driver"`
	Path          string        `mapstructure:"path"`
	Host          string        `mapstructure:"host"`
	Port          int           `mapstructure:"port"`
	Username      string        `mapstructure:"username"`
	Password      string        `mapstructure:"password"`
	Database      string        `mapstructure:"database"`
	SSLMode       string        `mapstructure:"sslMode"`
	MaxOpenConns  int           `mapstructure:"maxOpenConns"`
	BusyTimeout   time.Duration `mapstructure:"busyTimeout"`   // milliseconds
	QueryTimeout  time.Duration `mapstructure:"queryTimeout"`  // seconds
	RetryAttempts int           `mapstructure:"retryAttempts"`
	RetryDelay    time.Duration `mapstructure:"retryDelay"`    // seconds
	LogLevel      string        `mapstructure:"logLevel"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
	File   string `mapstructure:"file"`   // empty disables file output
}
