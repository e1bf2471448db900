package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-selfplay/internal/entity"
)

const (
	gameKeyPrefix = "game:"
	recentKey     = "games:recent"
	recentLimit   = 100
)

var ErrGameNotFinished = errors.New("game is not finished")

// ResultRepository stores finished games.
type ResultRepository interface {
	Save(ctx context.Context, game *entity.Game) error
	ListRecent(ctx context.Context, limit int64) ([]string, error)
}

type dbResult struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResultRepository(client *redis.Client, ttl time.Duration) ResultRepository {
	return &dbResult{
		client: client,
		ttl:    ttl,
	}
}

// Save - stores the finished game and pushes its id onto the recent list.
func (that *dbResult) Save(ctx context.Context, game *entity.Game) error {
	if !game.IsFinished() {
		return fmt.Errorf("%w: %s", ErrGameNotFinished, game.ID)
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKeyPrefix+game.ID, gameJSON, that.ttl)
		pipe.LPush(ctx, recentKey, game.ID)
		pipe.LTrim(ctx, recentKey, 0, recentLimit-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// ListRecent - returns up to limit game ids, newest first.
func (that *dbResult) ListRecent(ctx context.Context, limit int64) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	ids, err := that.client.LRange(ctx, recentKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent games: %w", err)
	}

	return ids, nil
}
