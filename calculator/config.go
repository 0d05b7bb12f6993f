package calculator

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

const (
	MethodAdaptive = "adaptive" // 自适应 Gauss-Legendre
	MethodLegendre = "legendre" // 固定节点 Gauss-Legendre
)

type Config struct {
	LogLevel string

	Method       string
	Points       int
	AbsTolerance float64
	RelTolerance float64
	MaxDepth     int
}

// 读取配置文件，文件不存在时使用默认值
func LoadConfig(path string) Config {
	file, err := ini.Load(path)
	if err != nil {
		log.WithField("path", path).Warn("配置文件读取错误，使用默认配置: ", err)
		file = ini.Empty()
	}

	return loadCfg(file)
}

func DefaultConfig() Config {
	return loadCfg(ini.Empty())
}

func loadCfg(file *ini.File) Config {
	cfg := Config{
		LogLevel:     file.Section("log").Key("Level").MustString("info"),
		Method:       file.Section("calculator").Key("Method").In(MethodAdaptive, []string{MethodAdaptive, MethodLegendre}),
		Points:       file.Section("calculator").Key("Points").MustInt(10),
		AbsTolerance: file.Section("calculator").Key("AbsTolerance").MustFloat64(1.49e-8),
		RelTolerance: file.Section("calculator").Key("RelTolerance").MustFloat64(1.49e-8),
		MaxDepth:     file.Section("calculator").Key("MaxDepth").MustInt(50),
	}
	if cfg.Points < 1 {
		cfg.Points = 1
	}
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = 0
	}
	return cfg
}
