package calculator

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

func TestLoadConfig_Missing(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "config.ini"))
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, MethodAdaptive, cfg.Method)
	assert.Equal(t, 10, cfg.Points)
	assert.Equal(t, 1.49e-8, cfg.AbsTolerance)
	assert.Equal(t, 50, cfg.MaxDepth)
}

func TestLoadCfg(t *testing.T) {
	file, err := ini.Load([]byte(`
[log]
Level = debug

[calculator]
Method       = legendre
Points       = 64
AbsTolerance = 1e-10
RelTolerance = 1e-9
MaxDepth     = 12
`))
	require.NoError(t, err)

	cfg := loadCfg(file)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, MethodLegendre, cfg.Method)
	assert.Equal(t, 64, cfg.Points)
	assert.Equal(t, 1e-10, cfg.AbsTolerance)
	assert.Equal(t, 1e-9, cfg.RelTolerance)
	assert.Equal(t, 12, cfg.MaxDepth)
}

// 非法取值回落到默认值或下限
func TestLoadCfg_Invalid(t *testing.T) {
	file, err := ini.Load([]byte(`
[calculator]
Method   = simpson
Points   = 0
MaxDepth = -3
`))
	require.NoError(t, err)

	cfg := loadCfg(file)
	assert.Equal(t, MethodAdaptive, cfg.Method)
	assert.Equal(t, 1, cfg.Points)
	assert.Equal(t, 0, cfg.MaxDepth)
}

func TestLoadConfig_RepoFile(t *testing.T) {
	cfg := LoadConfig("../conf/config.ini")
	assert.Equal(t, DefaultConfig(), cfg)
}
