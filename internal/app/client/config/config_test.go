package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("config_dir", "/tmp/contenthub")

	cfg, err := load(v)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "localhost:8080", cfg.ServerAddress)
	assert.False(t, cfg.EnableTLS)
	assert.Equal(t, 50, cfg.ActivityLimit)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, filepath.Join("/tmp/contenthub", "session.db"), cfg.SessionPath)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL())
	assert.True(t, cfg.IsLocal())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "hub.example.com")
	t.Setenv("ENABLE_TLS", "true")
	t.Setenv("ACTIVITY_LIMIT", "20")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("CONFIG_DIR", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://hub.example.com", cfg.BaseURL())
	assert.Equal(t, 20, cfg.ActivityLimit)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "client.yaml")
	data := "server_address: files.example.com:9000\nactivity_limit: 10\napp_env: prod\n"
	require.NoError(t, os.WriteFile(file, []byte(data), 0o600))
	t.Setenv("CONFIG_DIR", dir)

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "files.example.com:9000", cfg.ServerAddress)
	assert.Equal(t, 10, cfg.ActivityLimit)
	assert.Equal(t, "prod", cfg.Env)
	assert.False(t, cfg.IsLocal())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{name: "empty server", key: "server_address", val: ""},
		{name: "negative limit", key: "activity_limit", val: -1},
		{name: "zero timeout", key: "request_timeout", val: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			setDefaults(v)
			v.Set("config_dir", t.TempDir())
			v.Set(tt.key, tt.val)

			_, err := load(v)
			assert.Error(t, err)
		})
	}
}
