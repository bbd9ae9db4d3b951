package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_defaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("DEV_CONFIGDIR", t.TempDir())

	conf := NewConfig()
	assert.Equal(t, "DEV", conf.Env)
	assert.True(t, conf.Debug)
	assert.False(t, conf.TestMode)
	assert.Equal(t, ":8000", conf.Server.Addr)
	assert.Equal(t, 5*time.Second, conf.Server.ShutdownTimeout)
	assert.Equal(t, "activities@mergington.edu", conf.DefaultFromEmail.Address)
	assert.False(t, conf.Activities.EnforceCapacity)
	assert.True(t, conf.Activities.SignupEmails)
}

func TestNewConfig_env(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("TEST_CONFIGDIR", t.TempDir())
	t.Setenv("TEST_DEBUG", "false")
	t.Setenv("TEST_SERVER_ADDR", ":9999")
	t.Setenv("TEST_SERVER_SHUTDOWNTIMEOUT", "30s")
	t.Setenv("TEST_ACTIVITIES_ENFORCECAPACITY", "true")

	conf := NewConfig()
	assert.Equal(t, "TEST", conf.Env)
	assert.True(t, conf.TestMode)
	assert.False(t, conf.Debug)
	assert.Equal(t, ":9999", conf.Server.Addr)
	assert.Equal(t, 30*time.Second, conf.Server.ShutdownTimeout)
	assert.True(t, conf.Activities.EnforceCapacity)
}

func TestNewConfig_dotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENV", "QA")
	t.Setenv("QA_CONFIGDIR", dir)
	t.Cleanup(func() {
		_ = os.Unsetenv("QA_APPNAME")
		_ = os.Unsetenv("QA_ACTIVITIES_SIGNUPEMAILS")
	})

	dotEnv := "QA_APPNAME=Mergington QA\nQA_ACTIVITIES_SIGNUPEMAILS=false\n"
	if err := os.WriteFile(filepath.Join(dir, ".env.qa"), []byte(dotEnv), 0o600); err != nil {
		t.Fatalf("writing .env.qa: %v", err)
	}

	conf := NewConfig()
	assert.Equal(t, "QA", conf.Env)
	assert.Equal(t, "Mergington QA", conf.AppName)
	assert.False(t, conf.Activities.SignupEmails)
}
