package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	dirName  = ".pizzadough/logs"
	fileName = "pizzadough.log"
)

type Config struct {
	Root  string
	Debug bool
}

type sink struct {
	log  *slog.Logger
	file *os.File
	path string
}

var (
	mu      sync.RWMutex
	current = discard()
)

func discard() sink {
	return sink{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Setup sends the process logger to <root>/.pizzadough/logs/pizzadough.log.
// Before Setup succeeds, and after cleanup, records are dropped.
func Setup(cfg Config) (func() error, error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	dir := filepath.Join(filepath.Clean(root), filepath.FromSlash(dirName))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		swap(discard())
		return nil, err
	}

	path := filepath.Join(dir, fileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		swap(discard())
		return nil, err
	}

	l := slog.New(newHandler(f, cfg.Debug))
	swap(sink{log: l, file: f, path: path})
	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	return func() error {
		old := swap(discard())
		if old.file == nil {
			return nil
		}
		return old.file.Close()
	}, nil
}

func newHandler(w io.Writer, debug bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	opts.ReplaceAttr = func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
			a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
		}
		return a
	}
	return slog.NewJSONHandler(w, opts)
}

func swap(s sink) sink {
	mu.Lock()
	defer mu.Unlock()
	old := current
	current = s
	return old
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current.log
}

// Named returns the process logger tagged with a component attribute.
func Named(component string) *slog.Logger {
	return L().With("component", component)
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return current.path
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if current.file == nil {
		return errors.New("logger not initialized")
	}
	return nil
}
