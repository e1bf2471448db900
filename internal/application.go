package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-selfplay/internal/config"
	"github.com/rocketscienceinc/tictactoe-selfplay/internal/entity"
	"github.com/rocketscienceinc/tictactoe-selfplay/internal/repository"
	"github.com/rocketscienceinc/tictactoe-selfplay/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-selfplay/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-selfplay/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-selfplay/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - plays a single game and returns once both players are done.
// A canceled context or a SIGINT/SIGTERM stops the game and is not an error.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var results repository.ResultRepository
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		results = repository.NewResultRepository(redisStorage.Connection, conf.Redis.ResultTTL)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixMicro())) //nolint: gosec // fairness only

	match := usecase.NewMatch(logger, console.New(os.Stdout), tictactoe.NewRandomChooser(rng), conf.PollInterval, results)

	game, err := match.Play(ctx, entity.RandomMark(rng))
	if errors.Is(err, context.Canceled) {
		log.Info("Application context canceled, shutting down")
		return nil
	}

	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	log.Info("Game finished", "game_id", game.ID, "result", string(game.Result()), "moves", game.Moves)

	return nil
}
