// Command tsheet is a terminal spreadsheet: a Bubbletea presenter over an
// in-memory grid engine with formulas, CSV import/export, and charting.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/cellgrid/tsheet/internal/config"
	"github.com/cellgrid/tsheet/internal/csvio"
	"github.com/cellgrid/tsheet/internal/engine"
	"github.com/cellgrid/tsheet/internal/tui"
)

func main() {
	app := &cli.App{
		Name:  "tsheet",
		Usage: "a terminal spreadsheet",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "open",
				Usage: "load a CSV file on startup",
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "CSV load mode: flatten or preserve",
			},
			&cli.BoolFlag{
				Name:  "resume",
				Usage: "resume the last saved session",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "panic, fatal, error, warn, info, debug, trace",
				Value: "warn",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "tsheet:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger := newLogger(c.String("log-level"))
	sessionID := uuid.New().String()
	log := logger.WithField("session", sessionID)

	cfg := config.Load()
	log.WithFields(logrus.Fields{
		"rows": cfg.Rows, "cols": cfg.Cols, "theme": cfg.Theme,
	}).Info("config loaded")

	eng := engine.New(cfg.Rows, cfg.Cols, cfg.UndoCapacity, logger)

	model := tui.New(cfg, eng, logger)

	path := c.String("open")
	mode := cfg.CSVModeValue()
	if c.String("mode") == "preserve" {
		mode = csvio.ModePreserve
	} else if c.String("mode") == "flatten" {
		mode = csvio.ModeFlatten
	}

	var resumeCursor *config.SessionState
	if path == "" && c.Bool("resume") {
		if sess := config.LoadSession(); sess != nil {
			path = sess.LastFile
			resumeCursor = sess
		}
	}

	if path != "" {
		if err := loadStartupFile(eng, path, mode, log); err != nil {
			log.WithError(err).Warn("failed to load startup file")
		} else {
			model = model.WithFile(path, mode)
			if resumeCursor != nil {
				eng.SetCursor(resumeCursor.CursorR, resumeCursor.CursorC)
			}
		}
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("running presenter: %w", err)
	}

	if m, ok := finalModel.(tui.Model); ok {
		m.SaveSession()
	}

	return nil
}

func loadStartupFile(eng *engine.Sheet, path string, mode csvio.Mode, log *logrus.Entry) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	result, err := csvio.Load(eng, f, mode)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"path": path, "rows": result.Rows, "truncated": result.TruncatedLines,
	}).Info("loaded startup file")
	return nil
}

func newLogger(levelName string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	if f, err := os.OpenFile(logPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		logger.SetOutput(f)
	}
	return logger
}

func logPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tsheet.log"
	}
	return home + "/.tsheet.log"
}
