package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dominionfree/dominion-engine-go/internal/config"
	"github.com/dominionfree/dominion-engine-go/internal/game"
	"github.com/dominionfree/dominion-engine-go/internal/game/cards"
)

var (
	configPath = flag.String("config", "", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting simulator",
		zap.String("version", version),
		zap.Int("matches", cfg.Simulator.Matches),
		zap.Int64("base_seed", cfg.Game.Seed),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	catalog, err := cards.NewCatalog(cards.BaseSet())
	if err != nil {
		logger.Fatal("failed to build catalog", zap.Error(err))
	}

	engine := game.NewDominionEngine(logger)
	provider := game.NewFirstOptionProvider()

	for match := 0; match < cfg.Simulator.Matches; match++ {
		select {
		case sig := <-sigChan:
			logger.Info("received shutdown signal", zap.String("signal", sig.String()))
			return
		default:
		}

		opts := game.Options{
			Seed:           cfg.Game.Seed + int64(match),
			EmptyPileLimit: cfg.Game.EmptyPileLimit,
			ProvincePile:   cfg.Game.ProvincePile,
			MaxTurns:       cfg.Game.MaxTurns,
			HandSize:       cfg.Game.HandSize,
			Piles:          cfg.Game.Piles,
		}
		if err := runMatch(engine, catalog, provider, cfg.Game.Players, opts, logger); err != nil {
			logger.Error("match failed", zap.Int("match", match), zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("simulator finished")
}

// runMatch plays one seeded match to completion and logs the result.
func runMatch(engine *game.DominionEngine, catalog *cards.Catalog, provider game.DecisionProvider, players []string, opts game.Options, logger *zap.Logger) error {
	gameID, err := engine.NewGame(players, catalog, provider, opts)
	if err != nil {
		return err
	}
	defer engine.RemoveGame(gameID)

	for {
		summary, err := engine.PlayTurn(gameID)
		if err != nil {
			return err
		}
		if summary.GameEnded {
			break
		}
	}

	result, err := engine.Result(gameID)
	if err != nil {
		return err
	}
	scores, err := engine.Scores(gameID)
	if err != nil {
		return err
	}

	fields := []zap.Field{
		zap.String("game_id", gameID),
		zap.Int64("seed", opts.Seed),
		zap.Any("scores", scores),
		zap.Ints("cards_gained", result.CardsGained),
		zap.Strings("emptied_piles", result.EmptiedPiles),
	}
	if result.Tie {
		fields = append(fields, zap.Bool("tie", true))
	} else {
		fields = append(fields, zap.String("winner", players[result.WinnerSeat]))
	}
	logger.Info("match finished", fields...)
	return nil
}

// initLogger initializes the zap logger based on configuration.
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
