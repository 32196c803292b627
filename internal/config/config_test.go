package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseConfig(t *testing.T) {
	t.Run("GetDSN returns correct connection string", func(t *testing.T) {
		dbConfig := &DatabaseConfig{
			Host:     "localhost",
			Port:     3306,
			User:     "portal",
			Password: "secret",
			Name:     "dentaldesk",
		}

		assert.Equal(t, "portal:secret@tcp(localhost:3306)/dentaldesk?parseTime=true", dbConfig.GetDSN())
	})
}

func TestServerConfig(t *testing.T) {
	t.Run("GetServerAddr returns correct address", func(t *testing.T) {
		serverConfig := &ServerConfig{Host: "0.0.0.0", Port: 8080}
		assert.Equal(t, "0.0.0.0:8080", serverConfig.GetServerAddr())
	})
}

func TestRedisConfig(t *testing.T) {
	t.Run("GetRedisAddr returns correct address", func(t *testing.T) {
		redisConfig := &RedisConfig{Host: "127.0.0.1", Port: 6379}
		assert.Equal(t, "127.0.0.1:6379", redisConfig.GetRedisAddr())
	})
}

func TestAppConfig(t *testing.T) {
	t.Run("IsProduction checks the env name", func(t *testing.T) {
		assert.True(t, (&AppConfig{Env: "production"}).IsProduction())
		assert.False(t, (&AppConfig{Env: "development"}).IsProduction())
		assert.False(t, (&AppConfig{}).IsProduction())
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("Load valid YAML config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "test-config.yaml")

		configContent := `
app:
  name: DentalDesk Test
  version: 1.0.0
  env: test
  debug: true

server:
  host: localhost
  port: 8080

database:
  host: localhost
  port: 3306
  name: dentaldesk_test
  user: test_user
  password: test_pass

auth:
  jwt:
    secret: test-secret
    access_token_ttl: 8h

pto:
  default_allotment: 20

seed:
  clinic_ids:
    - clinic-1
    - clinic-2
`
		err := os.WriteFile(configFile, []byte(configContent), 0644)
		require.NoError(t, err)

		mu.Lock()
		cfg = nil
		once = sync.Once{}
		mu.Unlock()

		err = LoadFromFile(configFile)
		require.NoError(t, err)

		loadedCfg := Get()
		require.NotNil(t, loadedCfg)
		assert.Equal(t, "DentalDesk Test", loadedCfg.App.Name)
		assert.True(t, loadedCfg.App.Debug)
		assert.Equal(t, 8080, loadedCfg.Server.Port)
		assert.Equal(t, "dentaldesk_test", loadedCfg.Database.Name)
		assert.Equal(t, "test-secret", loadedCfg.Auth.JWT.Secret)
		assert.Equal(t, 20, loadedCfg.PTO.DefaultAllotment)
		assert.Equal(t, []string{"clinic-1", "clinic-2"}, loadedCfg.Seed.ClinicIDs)
	})

	t.Run("Error on non-existent file", func(t *testing.T) {
		err := LoadFromFile("/non/existent/config.yaml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("MustLoad panics on error", func(t *testing.T) {
		defer func() {
			r := recover()
			assert.NotNil(t, r)
			assert.Contains(t, r.(string), "Failed to load configuration")
		}()

		mu.Lock()
		cfg = nil
		once = sync.Once{}
		mu.Unlock()

		MustLoad("/non/existent/path")
	})
}
