package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cidian/internal/config"
)

// ServiceName 每条日志携带的服务名
const ServiceName = "cidian"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New 按配置构造 logger，返回的 Closer 在写文件时负责关闭文件
func New(cfg *config.LogConfig) (zerolog.Logger, io.Closer, error) {
	var closer io.Closer = nopCloser{}

	var output io.Writer
	switch cfg.Output {
	case "stderr":
		output = os.Stderr
	case "file":
		if cfg.FilePath == "" {
			output = os.Stdout
			break
		}
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return zerolog.Nop(), closer, err
		}
		file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, err
		}
		output, closer = file, file
	default:
		output = os.Stdout
	}

	// Console 格式 (开发环境友好)
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.DateTime}
	}

	l := zerolog.New(output).With().
		Timestamp().
		Str("service", ServiceName).
		Caller().
		Logger()
	return l, closer, nil
}

// ParseLevel 解析日志级别，空值或非法值回退到 info
func ParseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return level
}

// Init 初始化全局日志
func Init(cfg *config.LogConfig) (io.Closer, error) {
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))

	switch cfg.TimeFormat {
	case "Unix":
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	case "UnixMs":
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	default:
		zerolog.TimeFieldFormat = time.RFC3339
	}

	l, closer, err := New(cfg)
	if err != nil {
		return closer, err
	}
	log.Logger = l
	return closer, nil
}
