package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
api:
  environment: test
  port: "9000"
  base_url: localhost:9000
  jwt_signing_key: a-very-long-signing-key
  allowed_cors_domains:
    - http://localhost:3000
gin:
  mode: test
postgres:
  host: db
  port: "5433"
  user: arena
  password: secret
  db: arena
notification:
  buffer_size: 4
  reviewer_ids:
    - admin-1
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, EnvTest, conf.API.Environment)
	assert.Equal(t, "9000", conf.API.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "test", conf.Gin.Mode)
	assert.Equal(t, "db", conf.Postgres.Host)
	assert.Equal(t, "disable", conf.Postgres.SSLMode)
	assert.Equal(t, 10, conf.Postgres.MaxOpenConns)
	assert.Equal(t, 4, conf.Notification.BufferSize)
	assert.Equal(t, []string{"admin-1"}, conf.Notification.ReviewerIDs)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("API_PORT", "7000")
	t.Setenv("POSTGRES_HOST", "pg.internal")

	conf, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "7000", conf.API.Port)
	assert.Equal(t, "pg.internal", conf.Postgres.Host)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "short signing key",
			content: `
api:
  environment: test
  jwt_signing_key: short
`,
		},
		{
			name: "unknown environment",
			content: `
api:
  environment: staging
  jwt_signing_key: a-very-long-signing-key
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestPostgresConfig_DSN(t *testing.T) {
	c := PostgresConfig{Host: "h", Port: "1", User: "u", Password: "p", DB: "d"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=d sslmode=disable", c.DSN())
}
