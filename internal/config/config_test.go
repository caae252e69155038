package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFlags(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "")

	cfg, err := Load([]string{
		"--env", filepath.Join(t.TempDir(), "missing.env"),
		"--token", "abc",
		"--timezone", "UTC",
		"--reminder-offset", "-12h",
		"--debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.Token)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, -12*time.Hour, cfg.ReminderOffset)
	assert.Equal(t, "vxtwitter.com", cfg.MirrorDomain)
}

func TestLoadFromEnvFile(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "")
	os.Unsetenv("DISCORD_BOT_TOKEN")
	t.Setenv("MIRROR_DOMAIN", "")
	os.Unsetenv("MIRROR_DOMAIN")

	envFile := filepath.Join(t.TempDir(), "bot.env")
	require.NoError(t, os.WriteFile(envFile, []byte("DISCORD_BOT_TOKEN=from-file\nMIRROR_DOMAIN=fixupx.com\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("DISCORD_BOT_TOKEN")
		os.Unsetenv("MIRROR_DOMAIN")
	})

	cfg, err := Load([]string{"--env", envFile})
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Token)
	assert.Equal(t, "fixupx.com", cfg.MirrorDomain)
	assert.Equal(t, "Asia/Tokyo", cfg.Location.String())
	assert.Zero(t, cfg.ReminderOffset)
}

func TestLoadErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Run("missing token", func(t *testing.T) {
		t.Setenv("DISCORD_BOT_TOKEN", "")
		_, err := Load([]string{"--env", missing})
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("unknown timezone", func(t *testing.T) {
		_, err := Load([]string{"--env", missing, "--token", "x", "--timezone", "Mars/Olympus"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Mars/Olympus")
	})

	t.Run("help", func(t *testing.T) {
		_, err := Load([]string{"--help"})
		var flagsErr *flags.Error
		require.ErrorAs(t, err, &flagsErr)
		assert.Equal(t, flags.ErrHelp, flagsErr.Type)
	})
}
