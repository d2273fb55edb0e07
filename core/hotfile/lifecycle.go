package hotfile

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"
)

// Lifecycle removes the hot file when the process is asked to stop.
//
// Install is idempotent: the first call registers the signal handlers and later
// calls return the same context.
type Lifecycle struct {
	mu          sync.Mutex
	initialized bool
	ctx         context.Context
	cancel      context.CancelFunc
	done        chan struct{}

	hot     File
	logger  *zap.Logger
	signals []os.Signal
}

// NewLifecycle creates a lifecycle for hot.
func NewLifecycle(hot File, logger *zap.Logger) *Lifecycle {
	return &Lifecycle{
		hot:     hot,
		logger:  logger,
		signals: []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP},
	}
}

// Initialized reports whether Install has run.
func (l *Lifecycle) Initialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.initialized
}

// Install registers the signal handlers and returns a context that is cancelled
// once a termination signal arrives or Close is called. The hot file is removed
// before the context is cancelled.
func (l *Lifecycle) Install(parent context.Context) context.Context {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.initialized {
		return l.ctx
	}

	ctx, cancel := context.WithCancel(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, l.signals...)

	l.ctx, l.cancel = ctx, cancel
	l.done = make(chan struct{})
	l.initialized = true

	go func() {
		defer close(l.done)
		defer signal.Stop(sigCh)

		select {
		case sig := <-sigCh:
			l.logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
			l.Cleanup()
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx
}

// Cleanup removes the hot file if present. Errors are logged, not returned.
func (l *Lifecycle) Cleanup() {
	removed, err := l.hot.Remove()
	if err != nil {
		l.logger.Warn("Failed to remove hot file", zap.String("path", l.hot.Path), zap.Error(err))
		return
	}
	if removed {
		l.logger.Debug("Removed hot file", zap.String("path", l.hot.Path))
	}
}

// Close removes the hot file, cancels the context and waits for the signal
// goroutine to exit. It is safe to call without Install.
func (l *Lifecycle) Close() {
	l.Cleanup()

	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}
