package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/timetable/internal/agenda"
	"github.com/llehouerou/timetable/internal/app"
	"github.com/llehouerou/timetable/internal/config"
	"github.com/llehouerou/timetable/internal/errmsg"
	"github.com/llehouerou/timetable/internal/logging"
	"github.com/llehouerou/timetable/internal/nowindicator"
	"github.com/llehouerou/timetable/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logger, closeLog := logging.New(cfg.GetLogConfig())
	defer func() {
		_ = logger.Sync()
		_ = closeLog()
	}()

	stateMgr, err := state.Open(cfg.Database)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	stateMgr.SetLogger(logger)
	defer func() {
		if err := stateMgr.Close(); err != nil {
			logger.Error("close state", zap.Error(err))
		}
	}()

	store, err := agenda.New(stateMgr.DB(), time.Local)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	var painter *nowindicator.Painter
	if cfg.NowIndicatorEnabled() {
		painter = nowindicator.NewPainter(nowindicator.Options{
			Resolution: cfg.GetNowIndicatorResolution(),
		})
		defer painter.Close()
	}

	m := app.New(app.Deps{
		Config:  cfg,
		State:   stateMgr,
		Events:  store,
		Painter: painter,
		Logger:  logger,
	})
	defer m.Close()

	logger.Info("starting",
		zap.Int("visible_days", cfg.GetVisibleDays()),
		zap.String("range", cfg.GetRange()))

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
