package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/xando-series/internal/config"
	"github.com/rocketscienceinc/xando-series/internal/entity"
	"github.com/rocketscienceinc/xando-series/internal/service"
	"github.com/rocketscienceinc/xando-series/internal/tictactoe"
	"github.com/rocketscienceinc/xando-series/internal/tui"
)

// main - plays a local series in the terminal.
func main() {
	configPath := flag.String("config", "", "path to config.yml, environment and defaults when empty")
	nameA := flag.String("a", "Player 1", "name of side A (X)")
	nameB := flag.String("b", "Player 2", "name of side B (O), ignored against the AI")
	ai := flag.Bool("ai", false, "play against the computer")
	tier := flag.String("tier", "medium", "AI difficulty: easy, medium or hard")
	bestOf := flag.Int("best-of", 0, "rounds in the series, odd; config default when 0")
	logPath := flag.String("log", "", "write JSON logs to this file")
	flag.Parse()

	if err := run(*configPath, *logPath, *nameA, *nameB, *ai, *tier, *bestOf); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, logPath, nameA, nameB string, ai bool, tierName string, bestOf int) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return err
	}

	var logOutput io.Writer = io.Discard
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()

		logOutput = logFile
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{Level: config.ParseLogLevel(conf.LogLevel)}))

	if bestOf == 0 {
		bestOf = conf.Series.DefaultBestOf
	}

	roundsToWin, err := entity.RoundsToWinForBestOf(bestOf)
	if err != nil {
		return err
	}

	cfg := tictactoe.SeriesConfig{
		SideAName:    nameA,
		SideBName:    nameB,
		IsAIOpponent: ai,
		RoundsToWin:  roundsToWin,
	}

	if ai {
		cfg.SideBName = ""
		if cfg.Tier, err = entity.ParseTier(tierName); err != nil {
			return err
		}
	}

	rnd := service.NewRand(conf.Bot.Seed)

	controller, err := tictactoe.NewSeries(cfg, service.NewBotService(rnd), rnd)
	if err != nil {
		return err
	}

	if _, _, err = controller.StartRound(); err != nil {
		return err
	}

	logger.Info("series started", "ai", ai, "tier", cfg.Tier.String(), "roundsToWin", roundsToWin)

	return tui.New(logger, controller, conf.TUI.AIDelay).Run()
}
