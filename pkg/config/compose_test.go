package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCompose = `
services:
  postgres:
    image: postgres:16
    ports:
      - "5433:5432"
    environment:
      POSTGRES_USER: shop
      POSTGRES_PASSWORD: secret
      POSTGRES_DB: shopdb
  cache:
    image: redis:7
`

func writeCompose(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docker-compose.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadComposeDatabase(t *testing.T) {
	path := writeCompose(t, sampleCompose)

	cfg, err := LoadComposeDatabase(path, "postgres")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5433, cfg.Port)
	assert.Equal(t, "shop", cfg.User)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, "shopdb", cfg.Database)
}

func TestLoadComposeDatabase_MissingService(t *testing.T) {
	path := writeCompose(t, sampleCompose)

	_, err := LoadComposeDatabase(path, "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadComposeDatabase_NoPorts(t *testing.T) {
	path := writeCompose(t, `
services:
  postgres:
    environment:
      POSTGRES_USER: shop
      POSTGRES_DB: shopdb
`)

	_, err := LoadComposeDatabase(path, "postgres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publishes no ports")
}

func TestLoadComposeDatabase_MissingCredentials(t *testing.T) {
	path := writeCompose(t, `
services:
  postgres:
    ports:
      - "5432:5432"
    environment:
      POSTGRES_PASSWORD: secret
`)

	_, err := LoadComposeDatabase(path, "postgres")
	require.Error(t, err)
}

func TestLoadComposeDatabase_FileMissing(t *testing.T) {
	_, err := LoadComposeDatabase(filepath.Join(t.TempDir(), "nope.yml"), "postgres")
	require.Error(t, err)
}
