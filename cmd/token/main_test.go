package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusarena/competition-api/internal/pkg/jwthelper"
)

const signingKey = "0123456789abcdef0123456789abcdef"

func writeConfig(t *testing.T, env string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	content := "api:\n  environment: " + env + "\n  port: \"8080\"\n  jwt_signing_key: " + signingKey + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMint(t *testing.T) {
	token, err := mint(writeConfig(t, "development"), "teacher-1", " teacher, admin ,", time.Hour)
	require.NoError(t, err)

	claims, err := jwthelper.ParseToken([]byte(signingKey), token)
	require.NoError(t, err)
	assert.Equal(t, "teacher-1", claims.Subject)
	assert.Equal(t, []string{"TEACHER", "ADMIN"}, claims.Roles)
}

func TestMint_Rejected(t *testing.T) {
	_, err := mint(writeConfig(t, "development"), "", "STUDENT", time.Hour)
	assert.Error(t, err)

	_, err = mint(writeConfig(t, "production"), "s1", "STUDENT", time.Hour)
	assert.Error(t, err)
}
