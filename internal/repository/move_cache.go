package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const moveKeyPrefix = "move:"

var ErrCorruptedMove = errors.New("cached move is not a valid cell")

// MoveCache remembers the computer's best move per board. The search is
// deterministic, so an entry never goes stale.
type MoveCache interface {
	Get(ctx context.Context, board entity.Board) (int, bool, error)
	Set(ctx context.Context, board entity.Board, cell int) error
}

type dbMoveCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMoveCache(client *redis.Client, ttl time.Duration) MoveCache {
	return &dbMoveCache{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMoveCache) Get(ctx context.Context, board entity.Board) (int, bool, error) {
	cell, err := that.client.Get(ctx, moveKeyPrefix+board.Key()).Int()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("failed to get cached move: %w", err)
	}

	if cell < 0 || cell >= entity.BoardSize || board[cell] != entity.EmptyCell {
		return 0, false, fmt.Errorf("%w: %d for board %s", ErrCorruptedMove, cell, board.Key())
	}

	return cell, true, nil
}

func (that *dbMoveCache) Set(ctx context.Context, board entity.Board, cell int) error {
	if err := that.client.Set(ctx, moveKeyPrefix+board.Key(), cell, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache move: %w", err)
	}

	return nil
}
