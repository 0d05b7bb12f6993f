package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"ocular/calculator"
	"ocular/model"
)

const configPath = "conf/config.ini"

func main() {
	cfg := calculator.LoadConfig(configPath)
	setupLog(cfg.LogLevel)

	log.WithFields(log.Fields{
		"method":   cfg.Method,
		"points":   cfg.Points,
		"absTol":   cfg.AbsTolerance,
		"relTol":   cfg.RelTolerance,
		"maxDepth": cfg.MaxDepth,
	}).Info("积分参数")

	e := calculator.NewExecutor(calculator.NewCalculator(cfg), os.Stdout)
	if _, err := e.Run(model.Organs); err != nil {
		log.Fatal("err: ", err)
	}
}

// 日志输出到 stderr，stdout 只保留计算结果
func setupLog(level string) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	l, err := log.ParseLevel(level)
	if err != nil {
		log.Warn("日志级别错误，使用 info: ", err)
		l = log.InfoLevel
	}
	log.SetLevel(l)
}
