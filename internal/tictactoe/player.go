package tictactoe

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-selfplay/internal/entity"
)

// DefaultPollInterval is how long a player idles between two checks.
const DefaultPollInterval = 500 * time.Millisecond

type turnTaker interface {
	TakeTurn(mark entity.Mark) (bool, error)
	IsOver() bool
}

// Player is one actor of the game. Its mark never changes.
type Player struct {
	logger      *slog.Logger
	mark        entity.Mark
	coordinator turnTaker
	interval    time.Duration
}

func NewPlayer(logger *slog.Logger, mark entity.Mark, coordinator turnTaker, interval time.Duration) *Player {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &Player{
		logger:      logger.With("component", "player", "player", mark),
		mark:        mark,
		coordinator: coordinator,
		interval:    interval,
	}
}

func (that *Player) Mark() entity.Mark {
	return that.mark
}

// Run - polls the game until it is over, taking a turn whenever it is ours.
func (that *Player) Run(ctx context.Context) error {
	that.logger.Debug("player started")

	for !that.coordinator.IsOver() {
		if _, err := that.coordinator.TakeTurn(that.mark); err != nil {
			return fmt.Errorf("player %s failed to take turn: %w", that.mark, err)
		}

		timer := time.NewTimer(that.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("player %s stopped: %w", that.mark, ctx.Err())
		case <-timer.C:
		}
	}

	that.logger.Debug("player finished")

	return nil
}
