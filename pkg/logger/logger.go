// Package logger 基于zap的结构化日志
//
// 设计说明：
// 1. 日志级别使用zap.AtomicLevel，运行时可通过SetLevel调整（配合配置热重载）
// 2. format=console 适合本地开发，format=json 适合采集到ELK/Loki
// 3. output支持stdout、stderr或文件路径
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 日志配置
type Options struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool
}

// Logger 包装zap.Logger，附带可动态调整的日志级别
type Logger struct {
	*zap.Logger
	level zap.AtomicLevel
}

// New 创建日志实例
func New(opts Options) (*Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	atom := zap.NewAtomicLevelAt(lvl)

	sink, err := openSink(opts.Output)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch strings.ToLower(opts.Format) {
	case "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	case "", "console":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("不支持的日志格式: %s", opts.Format)
	}

	zopts := []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}
	if opts.EnableCaller {
		zopts = append(zopts, zap.AddCaller())
	}

	core := zapcore.NewCore(encoder, sink, atom)
	return &Logger{
		Logger: zap.New(core, zopts...),
		level:  atom,
	}, nil
}

// NewNop 返回丢弃所有输出的日志实例（测试使用）
func NewNop() *Logger {
	return &Logger{
		Logger: zap.NewNop(),
		level:  zap.NewAtomicLevel(),
	}
}

// SetLevel 运行时调整日志级别
func (l *Logger) SetLevel(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	l.level.SetLevel(lvl)
	return nil
}

// Level 当前日志级别
func (l *Logger) Level() zapcore.Level {
	return l.level.Level()
}

// ParseLevel 解析日志级别，空字符串视为info
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("无效的日志级别: %s", level)
	}
	return lvl, nil
}

func openSink(output string) (zapcore.WriteSyncer, error) {
	switch output {
	case "", "stdout":
		return zapcore.Lock(os.Stdout), nil
	case "stderr":
		return zapcore.Lock(os.Stderr), nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		return zapcore.Lock(f), nil
	}
}
