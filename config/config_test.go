package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "操作失败"
	testErr := errors.New("internal database error")
	defer func() { GlobalConfig = nil }()

	// nil err 返回 fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// 未加载配置时同样不暴露
	GlobalConfig = nil
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// debug 模式本身不足以暴露错误详情
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// 显式开启后返回 err.Error()
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug", ExposeErrors: true}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.False(t, cfg.Server.ExposeErrors)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpireTime)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshExpireTime)
	assert.False(t, cfg.JWT.RotateRefresh)
	assert.Equal(t, 10, cfg.Security.LoginMaxAttempts)
	assert.Same(t, cfg, GlobalConfig)
}

func TestLoadConfig_ExternalFileAndEnv(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "database:\n  driver: postgres\njwt:\n  access_ttl_minutes: 30\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("MONVISO_JWT_SECRET", "from-env")
	t.Setenv("MONVISO_SERVER_EXPOSE_ERRORS", "true")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpireTime)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.True(t, cfg.Server.ExposeErrors)
}
