package main

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/moonwalker/tsgen"
)

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		cfg.DisableStacktrace = true
		cfg.DisableCaller = true
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func logRequest(log *zap.Logger) func(c *tsgen.Client, req *http.Request, elapsed time.Duration) {
	return func(c *tsgen.Client, req *http.Request, elapsed time.Duration) {
		log.Debug("request", zap.String("method", req.Method), zap.String("url", req.URL.String()), zap.Duration("elapsed", elapsed))
	}
}
