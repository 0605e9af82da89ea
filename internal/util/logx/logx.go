// Package logx is the application logger. Lines always go to an in-memory
// ring shown by the TUI; stderr and a log file are optional sinks because
// writing to the terminal would corrupt the interface.
package logx

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	Level    string // debug|info|warn|error
	Stderr   bool
	File     string
	MaxLines int
}

var (
	mu     sync.Mutex
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	ring   = newRing(500)
	sugar  *zap.SugaredLogger
	closer func()
)

func init() {
	sugar = build(nil)
}

// lineRing keeps the most recent lines; it is the zap sink behind Dump and Lines.
type lineRing struct {
	mu    sync.Mutex
	lines []string
	max   int
}

func newRing(max int) *lineRing { return &lineRing{lines: make([]string, 0, max), max: max} }

func (r *lineRing) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if len(r.lines) >= r.max {
			// drop oldest
			copy(r.lines[0:], r.lines[1:])
			r.lines = r.lines[:len(r.lines)-1]
		}
		r.lines = append(r.lines, l)
	}
	return len(p), nil
}

func (r *lineRing) Sync() error { return nil }

func (r *lineRing) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.CallerKey = ""
	return cfg
}

func build(extra []zapcore.WriteSyncer) *zap.SugaredLogger {
	enc := zapcore.NewConsoleEncoder(encoderConfig())
	cores := []zapcore.Core{zapcore.NewCore(enc, ring, level)}
	for _, ws := range extra {
		cores = append(cores, zapcore.NewCore(enc, ws, level))
	}
	return zap.New(zapcore.NewTee(cores...)).Sugar()
}

// Init configures level and sinks. Calling it again replaces the sinks but
// keeps the lines already in the ring.
func Init(opt Options) error {
	mu.Lock()
	defer mu.Unlock()
	if opt.Level != "" {
		SetLevel(opt.Level)
	}
	if opt.MaxLines > 0 {
		ring.mu.Lock()
		ring.max = opt.MaxLines
		ring.mu.Unlock()
	}
	if closer != nil {
		closer()
		closer = nil
	}
	var extra []zapcore.WriteSyncer
	if opt.Stderr {
		extra = append(extra, zapcore.Lock(os.Stderr))
	}
	if opt.File != "" {
		f, err := os.OpenFile(opt.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		extra = append(extra, zapcore.Lock(f))
		closer = func() { _ = f.Close() }
	}
	sugar = build(extra)
	return nil
}

// InitFromEnv reads WORLDCOUNTRIES_LOG_LEVEL and WORLDCOUNTRIES_LOG_STDERR.
func InitFromEnv() {
	opt := Options{Level: os.Getenv("WORLDCOUNTRIES_LOG_LEVEL")}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("WORLDCOUNTRIES_LOG_STDERR"))); v != "" {
		opt.Stderr = v != "0" && v != "false" && v != "no"
	}
	_ = Init(opt)
}

// SetLevel accepts debug, info, warn/warning and error; other values are ignored.
func SetLevel(s string) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		level.SetLevel(zapcore.DebugLevel)
	case "info":
		level.SetLevel(zapcore.InfoLevel)
	case "warn", "warning":
		level.SetLevel(zapcore.WarnLevel)
	case "error":
		level.SetLevel(zapcore.ErrorLevel)
	}
}

func logger() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	return sugar
}

func Debugf(format string, a ...any) { logger().Debugf(format, a...) }
func Infof(format string, a ...any)  { logger().Infof(format, a...) }
func Warnf(format string, a ...any)  { logger().Warnf(format, a...) }
func Errorf(format string, a ...any) { logger().Errorf(format, a...) }

// Sync flushes the optional sinks.
func Sync() { _ = logger().Sync() }

func Dump() string { return strings.Join(ring.snapshot(), "\n") }

func Lines() []string { return ring.snapshot() }
