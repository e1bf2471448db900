package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-selfplay/internal/entity"
	"github.com/rocketscienceinc/tictactoe-selfplay/internal/tictactoe"
)

//go:generate mockery --name resultRepo --output ../../mocks/usecase --outpkg usecase --with-expecter

// recentGames is how many stored game ids are logged after a save.
const recentGames = 10

type resultRepo interface {
	Save(ctx context.Context, game *entity.Game) error
	ListRecent(ctx context.Context, limit int64) ([]string, error)
}

// Match plays one game between two concurrent players.
type Match struct {
	logger       *slog.Logger
	renderer     tictactoe.Renderer
	chooser      tictactoe.Chooser
	pollInterval time.Duration

	// results is optional
	results resultRepo
}

func NewMatch(logger *slog.Logger, renderer tictactoe.Renderer, chooser tictactoe.Chooser, pollInterval time.Duration, results resultRepo) *Match {
	return &Match{
		logger:       logger,
		renderer:     renderer,
		chooser:      chooser,
		pollInterval: pollInterval,
		results:      results,
	}
}

// Play - runs both players until the game is over and returns the final state.
func (that *Match) Play(ctx context.Context, first entity.Mark) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString(), first)

	log := that.logger.With("method", "Play", "game_id", game.ID)
	log.Info("game started", "first", first)

	coordinator := tictactoe.NewCoordinator(that.logger, game, tictactoe.NewResolver(that.chooser), that.renderer)

	group, groupCtx := errgroup.WithContext(ctx)
	for _, mark := range []entity.Mark{entity.PlayerO, entity.PlayerX} {
		player := tictactoe.NewPlayer(that.logger, mark, coordinator, that.pollInterval)
		log.Debug("player joined", "player", player.Mark())
		group.Go(func() error {
			return player.Run(groupCtx)
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("game %s interrupted: %w", game.ID, err)
	}

	final := coordinator.Snapshot()

	if that.results != nil {
		if err := that.saveResult(ctx, &final); err != nil {
			return &final, err
		}
	}

	return &final, nil
}

// saveResult - stores the finished game and logs the most recent stored games.
// A failing listing is only logged, the result is already stored by then.
func (that *Match) saveResult(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "saveResult", "game_id", game.ID)

	if err := that.results.Save(ctx, game); err != nil {
		return fmt.Errorf("failed to save game result: %w", err)
	}

	recent, err := that.results.ListRecent(ctx, recentGames)
	if err != nil {
		log.Error("failed to list recent games", "error", err)
		return nil
	}

	log.Info("game result saved", "recent_games", recent)

	return nil
}
