package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/xqrs/gridview"
	"github.com/xqrs/gridview/internal/demo"
)

// runApp runs the interactive demo until the user quits or ctx is done.
func runApp(ctx context.Context, s *session) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	page := demo.NewPage(s.cfg.Grid, s.logger)
	defer page.Close()

	app := gridview.NewApplication().SetLogger(s.logger).SetRoot(page)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info("stopping on signal")
			app.Stop()
		case <-done:
		}
	}()

	if err := app.Run(); err != nil {
		s.logger.Error("application failed", zap.Error(err))
		return err
	}
	return nil
}
