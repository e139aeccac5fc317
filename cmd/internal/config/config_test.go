package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("значения по умолчанию подставляются", func(t *testing.T) {
		path := writeConfig(t, "is_debug: false\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		require.NotNil(t, cfg.IsDebug)
		assert.False(t, *cfg.IsDebug)
		assert.Equal(t, "8080", cfg.Listen.Port)
		assert.Equal(t, "csv", cfg.Dataset.Source)
		assert.Equal(t, ";", cfg.Dataset.CSVSeparator)
		assert.Equal(t, 8, cfg.Calculation.Workers)
		assert.Equal(t, "de", cfg.Calculation.DefaultLocale)
	})

	t.Run("переменные окружения переопределяют файл", func(t *testing.T) {
		path := writeConfig(t, "is_debug: true\ndataset:\n  source: csv\n")
		t.Setenv("DATASET_SOURCE", "postgres")
		t.Setenv("CALC_WORKERS", "2")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "postgres", cfg.Dataset.Source)
		assert.Equal(t, 2, cfg.Calculation.Workers)
	})

	t.Run("без обязательного is_debug ошибка", func(t *testing.T) {
		path := writeConfig(t, "listen:\n  port: \"9000\"\n")

		_, err := Load(path)

		assert.Error(t, err)
	})
}
