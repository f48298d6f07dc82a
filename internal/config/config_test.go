package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("STORAGE_DRIVER", "")
	t.Chdir(t.TempDir())

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, StorageDriverFile, cfg.Storage.Driver)
	assert.Equal(t, "./data/products.json", cfg.Storage.Path)
	assert.Equal(t, "INR", cfg.App.Currency)
	assert.False(t, cfg.InsightRefresh.Enabled)
	assert.False(t, cfg.HasGemini())
}

func TestNewConfig_VariaveisDeAmbiente(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("STORAGE_PATH", "/tmp/profitpilot.db")
	t.Setenv("GEMINI_API_KEY", "chave")
	t.Setenv("INSIGHT_REFRESH_ENABLED", "true")
	t.Setenv("CURRENCY", "usd")
	t.Setenv("CORS_ALLOWED_ORIGINS", "*")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, StorageDriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/profitpilot.db", cfg.Storage.Path)
	assert.Equal(t, "USD", cfg.App.Currency)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.InsightRefresh.Enabled)
	assert.True(t, cfg.HasGemini())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "válida",
			cfg:  Config{Storage: Storage{Driver: StorageDriverFile, Path: "x.json"}},
		},
		{
			name:    "driver desconhecido",
			cfg:     Config{Storage: Storage{Driver: "postgres", Path: "x"}},
			wantErr: "driver de armazenamento inválido 'postgres'",
		},
		{
			name:    "caminho vazio",
			cfg:     Config{Storage: Storage{Driver: StorageDriverSQLite}},
			wantErr: "STORAGE_PATH",
		},
		{
			name: "cron vazio com atualização habilitada",
			cfg: Config{
				Storage:        Storage{Driver: StorageDriverFile, Path: "x.json"},
				InsightRefresh: InsightRefresh{Enabled: true},
			},
			wantErr: "INSIGHT_REFRESH_CRON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
