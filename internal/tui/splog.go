package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/possible-bj/gitscript/internal/config"
)

// simpleHandler prints the bare message, one per line. Warnings and errors go to errWriter.
type simpleHandler struct {
	writer    io.Writer
	errWriter io.Writer
	debugMode bool
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	w := h.writer
	if record.Level >= slog.LevelWarn {
		w = h.errWriter
	}
	_, err := fmt.Fprintln(w, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

func newRotatingFile(cfg config.LogConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   false,
	}
}

// multiHandler sends each record to the console and, when configured, the log file
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// Options configures a Splog
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Debug  bool
	Log    config.LogConfig
	// RunID is attached to every file log record
	RunID string
}

// Splog provides structured logging and output
type Splog struct {
	logger    *slog.Logger
	logWriter io.WriteCloser // rotating file, nil when file logging is off
}

// NewSplogWithOptions creates a new splog instance with optional file logging
func NewSplogWithOptions(opts Options) (*Splog, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	splog := &Splog{}

	handlers := []slog.Handler{&simpleHandler{
		writer:    opts.Stdout,
		errWriter: opts.Stderr,
		debugMode: opts.Debug,
	}}

	if logFilePath := ResolveLogFilePath(opts.Log.File); logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		logCfg := opts.Log
		logCfg.File = logFilePath
		lumberjackLogger := newRotatingFile(logCfg)
		splog.logWriter = lumberjackLogger

		var fileHandler slog.Handler = slog.NewTextHandler(lumberjackLogger, &slog.HandlerOptions{
			Level: slog.LevelDebug, // Always log everything to file
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		})
		if opts.RunID != "" {
			fileHandler = fileHandler.WithAttrs([]slog.Attr{slog.String("run", opts.RunID)})
		}
		handlers = append(handlers, fileHandler)
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

func (s *Splog) logMessage(level slog.Level, msg string) {
	s.logger.Log(context.Background(), level, msg)
}

func sprintf(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Info writes a message to stdout. Args are optional; a bare message is printed as is.
func (s *Splog) Info(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, sprintf(format, args))
}

// Warn writes a yellow warning to stderr
func (s *Splog) Warn(format string, args ...interface{}) {
	s.logMessage(slog.LevelWarn, ColorYellow("⚠️  "+sprintf(format, args)))
}

// Error writes a red error line to stderr
func (s *Splog) Error(format string, args ...interface{}) {
	s.logMessage(slog.LevelError, ColorRed("❌ "+sprintf(format, args)))
}

// Debug is dropped on the console unless Options.Debug is set
func (s *Splog) Debug(format string, args ...interface{}) {
	s.logMessage(slog.LevelDebug, sprintf(format, args))
}

// Command echoes a command before it runs
func (s *Splog) Command(command string) {
	s.logMessage(slog.LevelInfo, "\n"+ColorCommand(command))
}

// Output echoes the captured output of a successful command. The output is
// left unstyled so multi-line text is not padded.
func (s *Splog) Output(command, output string) {
	s.logMessage(slog.LevelInfo, fmt.Sprintf("%s %s %s", ColorDim(command), ColorGreen("command output:"), output))
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
