// Package logger builds the zap sugared logger used by the service adapters.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NOOPLogger discards everything. It is the default for adapters built
// without a logger.
var NOOPLogger = zap.NewNop().Sugar()

// New returns a production JSON logger, or a development console logger when
// appEnv is "local" or "test". An unparsable level falls back to info.
func New(appEnv, level string) (*zap.SugaredLogger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	switch strings.ToLower(appEnv) {
	case "local", "test":
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logger: build: %w", err)
	}
	return l.Sugar(), nil
}

// MaskEmail keeps the domain and the edges of the local part of an email.
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return mask(email, 2, 2)
	}
	return mask(local, 2, 1) + "@" + domain
}

func mask(s string, prefixLen, suffixLen int) string {
	// short values are fully hidden so their length does not leak
	if len(s) < prefixLen+suffixLen+3 {
		return strings.Repeat("*", len(s))
	}
	return s[:prefixLen] + "..." + s[len(s)-suffixLen:]
}
