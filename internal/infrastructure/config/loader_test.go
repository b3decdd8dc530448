package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-from-dotenv")
	t.Setenv("POINTS_LOGS_CHANNEL", "123456789")
	t.Setenv("ADMIN_IDS", "1257797619078660096, 772531685438783539")

	cfg, err := load(Test, []string{t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, "token-from-dotenv", cfg.Discord.Token)
	assert.Equal(t, "123456789", cfg.Discord.LogsChannelID)
	assert.Equal(t, []int64{1257797619078660096, 772531685438783539}, cfg.Discord.AdminIDs)
	assert.Equal(t, time.Second, cfg.Discord.MentionDeleteDelay)
	assert.Equal(t, "Furnihome", cfg.Discord.EmbedFooter)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "db/buma.db", cfg.Database.Path)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Second, cfg.Database.BusyTimeout)
	assert.Equal(t, time.Second, cfg.Database.RetryDelay)

	assert.Equal(t, "debug.log", cfg.Logger.File)
	assert.False(t, cfg.Server.Enabled)
}

func TestLoad_YAMLAndPrefixedOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
discord:
  logsChannel: "999"
  adminIds:
    - 11
    - 22
  mentionDeleteDelay: 250
server:
  enabled: true
  port: 9090
logger:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "staging.yaml"), []byte(yaml), 0o600))

	t.Setenv("PB_DISCORD_TOKEN", "prefixed-token")
	t.Setenv("PB_LOGGER_LEVEL", "warn")
	t.Setenv("PB_DATABASE_PATH", "/var/lib/points/points.db")

	cfg, err := load("staging", []string{dir})
	require.NoError(t, err)

	assert.Equal(t, "prefixed-token", cfg.Discord.Token)
	assert.Equal(t, "999", cfg.Discord.LogsChannelID)
	assert.Equal(t, []int64{11, 22}, cfg.Discord.AdminIDs)
	assert.Equal(t, 250*time.Millisecond, cfg.Discord.MentionDeleteDelay)
	assert.True(t, cfg.Server.Enabled)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logger.Level, "environment wins over the file")
	assert.Equal(t, "/var/lib/points/points.db", cfg.Database.Path)
}

func TestLoad_InvalidAdminID(t *testing.T) {
	t.Setenv("ADMIN_IDS", "12,not-a-number")

	_, err := load(Test, []string{t.TempDir()})

	assert.ErrorContains(t, err, `invalid admin id "not-a-number"`)
}

func TestParseAdminIDs(t *testing.T) {
	ids, err := parseAdminIDs([]string{"1,2", "3", " ", ""})

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
}
