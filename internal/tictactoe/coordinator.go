package tictactoe

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-selfplay/internal/entity"
)

// Renderer is the observability hook the coordinator writes to.
type Renderer interface {
	RenderBoard(board entity.Board) error
	RenderResult(result entity.Result) error
}

// Coordinator is the only gate to the shared game. Every read and write of
// the game happens with mu held.
type Coordinator struct {
	logger   *slog.Logger
	resolver *Resolver
	renderer Renderer

	mu   sync.Mutex
	game *entity.Game
}

func NewCoordinator(logger *slog.Logger, game *entity.Game, resolver *Resolver, renderer Renderer) *Coordinator {
	return &Coordinator{
		logger:   logger.With("component", "coordinator", "game_id", game.ID),
		resolver: resolver,
		renderer: renderer,
		game:     game,
	}
}

// TakeTurn - plays one turn for mark if the game is live and it is mark's turn.
// It reports whether a turn was taken.
func (that *Coordinator) TakeTurn(mark entity.Mark) (bool, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game.IsFinished() || that.game.Turn != mark {
		return false, nil
	}

	if err := that.renderer.RenderBoard(that.game.Board); err != nil {
		return false, fmt.Errorf("failed to render board: %w", err)
	}

	move := that.resolver.Resolve(that.game, mark)

	that.logger.Debug("turn taken",
		"player", mark,
		"cell", move.Cell,
		"outcome", move.Outcome.String(),
		"moves", that.game.Moves,
	)

	var err error
	switch move.Outcome {
	case OutcomeWin:
		err = that.finish(true)
	case OutcomeTie:
		err = that.finish(false)
	case OutcomePlaced:
	}

	// the turn passes even once the game is over
	that.game.Turn = entity.NextMark(mark)

	return true, err
}

func (that *Coordinator) finish(renderBoard bool) error {
	if renderBoard {
		if err := that.renderer.RenderBoard(that.game.Board); err != nil {
			return fmt.Errorf("failed to render final board: %w", err)
		}
	}

	result := that.game.Result()
	if err := that.renderer.RenderResult(result); err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}

	that.logger.Info("game over", "result", string(result), "moves", that.game.Moves)

	return nil
}

func (that *Coordinator) IsOver() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.IsFinished()
}

// Snapshot - returns a copy of the game taken under the lock.
func (that *Coordinator) Snapshot() entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	return *that.game
}
